package llm

import (
	"context"
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
)

// Provider 一个对话补全供应商
type Provider interface {
	Name() enum.Provider
	// 是否配置了凭证
	Configured() bool
	// 返回模型回答; 成功但没有回答字段时返回固定的占位文本
	Chat(ctx context.Context, messages []common.LlmMessage) (string, error)
}

// filterContent 从LLM的原始响应中剥离思考过程标签
func filterContent(rawAnswer string) string {
	if parts := strings.SplitN(rawAnswer, "</think>", 2); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(rawAnswer)
}
