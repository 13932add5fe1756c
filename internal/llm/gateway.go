package llm

import (
	"context"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/sirupsen/logrus"
)

// 失败后最多切换一次供应商
const maxFallbacks = 1

// Gateway 按声明顺序尝试已配置的供应商
type Gateway struct {
	providers []Provider
	log       *logrus.Logger
}

// Result 网关调用结果
type Result struct {
	Answer   string
	Provider enum.Provider
	FellBack bool
}

// NewGateway providers 的顺序即优先级
func NewGateway(log *logrus.Logger, providers ...Provider) *Gateway {
	return &Gateway{providers: providers, log: log}
}

// HasProvider 至少有一个供应商配置了凭证
func (g *Gateway) HasProvider() bool {
	return len(g.candidates()) > 0
}

// IsConfigured 指定供应商是否配置了凭证
func (g *Gateway) IsConfigured(name enum.Provider) bool {
	for _, p := range g.providers {
		if p.Name() == name {
			return p.Configured()
		}
	}
	return false
}

func (g *Gateway) candidates() []Provider {
	list := make([]Provider, 0, len(g.providers))
	for _, p := range g.providers {
		if p.Configured() {
			list = append(list, p)
		}
	}
	return list
}

// Call 调用第一个已配置的供应商; 只有当错误来自该供应商本身时才切换到下一个
// preferred 仅记录日志, 不影响选择顺序
func (g *Gateway) Call(ctx context.Context, conversation []common.LlmMessage, preferred string) (*Result, error) {
	candidates := g.candidates()
	if len(candidates) == 0 {
		return nil, ErrNoProvider
	}

	fallbacks := 0
	for i, p := range candidates {
		log := g.log.WithFields(logrus.Fields{
			"provider":  p.Name(),
			"preferred": preferred,
			"messages":  len(conversation),
		})

		answer, err := p.Chat(ctx, conversation)
		if err == nil {
			log.Debug("模型调用成功")
			return &Result{Answer: answer, Provider: p.Name(), FellBack: fallbacks > 0}, nil
		}

		log.Errorf("模型调用失败: %v", err)

		if i+1 < len(candidates) && fallbacks < maxFallbacks && OriginatedFrom(err, p.Name()) {
			fallbacks++
			log.Warnf("%s 调用失败, 切换到 %s", p.Name().Title(), candidates[i+1].Name().Title())
			continue
		}
		return nil, err
	}

	return nil, ErrNoProvider
}
