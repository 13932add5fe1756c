package prompt

import (
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/sashabaranov/go-openai"
)

// Compose 有检索内容时把文档段落拼接到系统提示词之后
func Compose(base enum.SystemPrompt, rc *retriever.Context) string {
	if !rc.HasText() {
		return string(base)
	}
	return string(base) + fmt.Sprintf(string(enum.SystemPromptRagSection), rc.Text)
}

// Conversation 系统提示词 + 历史消息 + 本次提问
// 历史消息只保留user和assistant, 客户端不能覆盖系统提示词
func Conversation(system string, history []common.LlmMessage, message string) []common.LlmMessage {
	messages := make([]common.LlmMessage, 0, len(history)+2)
	messages = append(messages, common.LlmMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	for _, h := range history {
		if h.Role != openai.ChatMessageRoleUser && h.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		messages = append(messages, common.LlmMessage{Role: h.Role, Content: h.Content})
	}
	messages = append(messages, common.LlmMessage{Role: openai.ChatMessageRoleUser, Content: message})
	return messages
}
