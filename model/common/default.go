package common

// LlmMessage 结构体定义了发送给LLM的聊天消息格式
type LlmMessage struct {
	Role    string `json:"role"`    // 消息角色，例如 "user", "assistant", "system"
	Content string `json:"content"` // 消息内容
}

// SourceCount 按回复来源聚合的请求数
type SourceCount struct {
	Source string `db:"source" json:"source"`
	Total  int64  `db:"total" json:"total"`
}
