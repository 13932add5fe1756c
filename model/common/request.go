package common

// ChatRequest 前端聊天组件发送过来的消息体
type ChatRequest struct {
	Message             string       `json:"message"`
	ConversationHistory []LlmMessage `json:"conversationHistory"`
	Model               string       `json:"model"`
	Provider            string       `json:"provider"`
}
