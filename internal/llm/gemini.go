package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/config"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	maxErrorBody    = 2048
	geminiKeyHeader = "x-goog-api-key"
)

// Gemini generateContent 接口, 整段对话拼成一个prompt
type Gemini struct {
	baseUrl    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        *logrus.Logger
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func NewGemini(cfg config.Llm, log *logrus.Logger) *Gemini {
	return &Gemini{
		baseUrl:    strings.TrimRight(cfg.Url, "/"),
		model:      cfg.Model,
		apiKey:     cfg.Auth,
		httpClient: &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		log:        log,
	}
}

func (g *Gemini) Name() enum.Provider {
	return enum.ProviderGemini
}

func (g *Gemini) Configured() bool {
	return g.apiKey != ""
}

// flatten 系统提示词在前, 其余消息按 "User: "/"Assistant: " 逐条拼接
func flatten(messages []common.LlmMessage) string {
	system := string(enum.SystemPromptMigration)
	for _, m := range messages {
		if m.Role == openai.ChatMessageRoleSystem {
			system = m.Content
			break
		}
	}

	turns := make([]string, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case openai.ChatMessageRoleSystem:
			continue
		case openai.ChatMessageRoleUser:
			turns = append(turns, "User: "+m.Content)
		default:
			turns = append(turns, "Assistant: "+m.Content)
		}
	}
	return system + "\n\n" + strings.Join(turns, "\n\n")
}

func (g *Gemini) Chat(ctx context.Context, messages []common.LlmMessage) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: flatten(messages)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("序列化请求体失败: %w", err)
	}

	// 密钥放在请求头, 地址会出现在错误信息里
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseUrl, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(geminiKeyHeader, g.apiKey)

	g.log.WithFields(logrus.Fields{"provider": g.Name(), "body_length": len(body)}).Debug("调用Gemini")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("调用Gemini被取消: %w", ctx.Err())
		}
		return "", &ProviderError{Provider: g.Name(), Kind: KindTransport, Err: transportCause(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", statusError(g.Name(), resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var data geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", &ProviderError{Provider: g.Name(), Kind: KindUpstream, Status: resp.StatusCode, Message: "invalid JSON response", Err: err}
	}

	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 || data.Candidates[0].Content.Parts[0].Text == "" {
		g.log.WithField("provider", g.Name()).Warn("Gemini返回中没有回答字段")
		return string(enum.MsgNoAnswer), nil
	}
	return filterContent(data.Candidates[0].Content.Parts[0].Text), nil
}

// transportCause 去掉*url.Error里的请求地址, 只保留底层错误
func transportCause(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) && uErr.Err != nil {
		return uErr.Err
	}
	return err
}
