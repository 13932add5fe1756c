package llm

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/config"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// OpenRouter 兼容OpenAI的chat/completions接口
type OpenRouter struct {
	client      *openai.Client
	model       string
	temperature float32
	maxTokens   int
	configured  bool
	log         *logrus.Logger
}

func NewOpenRouter(cfg config.Llm, log *logrus.Logger) *OpenRouter {
	c := openai.DefaultConfig(cfg.Auth)
	c.BaseURL = cfg.Url
	c.HTTPClient = &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second}

	return &OpenRouter{
		client:      openai.NewClientWithConfig(c),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		configured:  cfg.Auth != "",
		log:         log,
	}
}

func (o *OpenRouter) Name() enum.Provider {
	return enum.ProviderOpenRouter
}

func (o *OpenRouter) Configured() bool {
	return o.configured
}

func (o *OpenRouter) Chat(ctx context.Context, messages []common.LlmMessage) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    msgs,
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}

	o.log.WithFields(logrus.Fields{"provider": o.Name(), "model": o.model}).Debug("调用OpenRouter")

	resp, err := o.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", o.classify(ctx, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		o.log.WithField("provider", o.Name()).Warn("OpenRouter返回中没有回答字段")
		return string(enum.MsgNoAnswer), nil
	}
	return filterContent(resp.Choices[0].Message.Content), nil
}

func (o *OpenRouter) classify(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		pe := statusError(o.Name(), apiErr.HTTPStatusCode, "")
		pe.Err = err
		return pe
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		pe := statusError(o.Name(), reqErr.HTTPStatusCode, "")
		pe.Err = err
		return pe
	}
	return &ProviderError{Provider: o.Name(), Kind: KindTransport, Err: transportCause(err)}
}
