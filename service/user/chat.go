package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/llm"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/prompt"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrValidation    = errors.New(string(enum.MsgMissingMessage))
	ErrConfiguration = errors.New(string(enum.MsgKeysNotConfigured))
)

const maxLoggedQuestion = 500

type IChatService interface {
	Health() *common.HealthResponse
	// Reply 依次尝试 FAQ、文档列表、检索增强的模型回答
	Reply(ctx context.Context, requestId string, req *common.ChatRequest) (*common.ChatResponse, error)
}

type ChatService struct {
	log           *logrus.Logger
	kb            *knowledge.Base
	retriever     retriever.Service
	gateway       *llm.Gateway
	chatLogs      ChatLogStore
	validator     IValidator
	excerptLength int
	now           func() time.Time
}

func NewChatService(d Deps, validator IValidator) *ChatService {
	return &ChatService{
		log:           d.Log,
		kb:            d.Knowledge,
		retriever:     d.Retriever,
		gateway:       d.Gateway,
		chatLogs:      d.ChatLogs,
		validator:     validator,
		excerptLength: d.DocsExcerptLength,
		now:           time.Now,
	}
}

func (s *ChatService) Health() *common.HealthResponse {
	return &common.HealthResponse{
		Message:         enum.MsgHealthy,
		Status:          "ok",
		Timestamp:       utils.IsoTime(s.now()),
		HasPrimaryKey:   s.gateway.IsConfigured(enum.ProviderGemini),
		HasSecondaryKey: s.gateway.IsConfigured(enum.ProviderOpenRouter),
	}
}

func (s *ChatService) Reply(ctx context.Context, requestId string, req *common.ChatRequest) (res *common.ChatResponse, err error) {
	start := s.now()
	entry := &db.ChatLog{RequestId: requestId}
	if req != nil {
		entry.Question = utils.Truncate(req.Message, maxLoggedQuestion, "")
	}
	defer func() {
		s.record(entry, res, err, start)
	}()

	if err = s.validator.ValidatorChatRequest(req); err != nil {
		return nil, err
	}
	if !s.gateway.HasProvider() {
		return nil, ErrConfiguration
	}

	intent := extractIntent(req.Message)

	if m, ok := s.kb.Match(req.Message); ok {
		res = assemble(m.Answer(), intent, enum.SourceFaq, s.now())
		res.Confidence = m.Confidence
		return res, nil
	}

	if body, ok := s.kb.Docs(req.Message); ok {
		res = assemble(body, intent, enum.SourceDocs, s.now())
		res.Confidence = enum.ConfidenceMedium
		return res, nil
	}

	return s.aiReply(ctx, req, intent, entry)
}

func (s *ChatService) aiReply(ctx context.Context, req *common.ChatRequest, intent enum.Intent, entry *db.ChatLog) (*common.ChatResponse, error) {
	rc := s.retriever.Fetch(ctx, req.Message)

	log := s.log.WithField("request_id", entry.RequestId)
	if rc.HasText() {
		log.WithField("length", len(rc.Text)).Debug("使用检索到的文档")
	} else {
		log.Debug("没有检索到文档, 直接调用模型")
	}

	system := prompt.Compose(enum.SystemPromptMigration, rc)
	conversation := prompt.Conversation(system, req.ConversationHistory, req.Message)

	preferred := req.Provider
	if preferred == "" {
		preferred = req.Model
	}

	result, err := s.gateway.Call(ctx, conversation, preferred)
	if err != nil {
		return nil, err
	}
	entry.Provider = string(result.Provider)
	entry.FellBack = result.FellBack

	res := assemble(result.Answer, intent, enum.SourceAiRag, s.now())
	res.DocsContext = docsContext(rc, s.excerptLength)
	return res, nil
}

// StatusOf 错误对应的http状态码
func StatusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// record 写日志并异步保存对话记录
func (s *ChatService) record(entry *db.ChatLog, res *common.ChatResponse, err error, start time.Time) {
	entry.Status = StatusOf(err)
	entry.LatencyMs = s.now().Sub(start).Milliseconds()
	if res != nil {
		entry.Source = string(res.Source)
		entry.Confidence = string(res.Confidence)
	}

	fields := logrus.Fields{
		"request_id": entry.RequestId,
		"source":     entry.Source,
		"confidence": entry.Confidence,
		"provider":   entry.Provider,
		"status":     entry.Status,
		"latency_ms": entry.LatencyMs,
		"fell_back":  entry.FellBack,
	}
	switch {
	case err == nil:
		s.log.WithFields(fields).Info("回复完成")
	case entry.Status == http.StatusBadRequest:
		s.log.WithFields(fields).Warnf("请求无效: %v", err)
	case llm.IsRateLimited(err):
		// 限流是上游配额问题, 不算服务故障
		s.log.WithFields(fields).Warnf("模型供应商限流: %v", err)
	default:
		fields["query"] = entry.Question
		s.log.WithFields(fields).Errorf("回复失败: %v", err)
	}

	if s.chatLogs == nil {
		return
	}
	go func() {
		defer func() {
			if p := recover(); p != nil {
				s.log.Errorf("[record] 保存对话记录panic: %v", p)
			}
		}()
		if err := s.chatLogs.Insert(entry); err != nil {
			s.log.Warnf("保存对话记录失败: %v", err)
		}
	}()
}
