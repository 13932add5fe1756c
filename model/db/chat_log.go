package db

// ChatLog 每次对话请求的结果, 仅用于统计
type ChatLog struct {
	BaseField
	RequestId  string `db:"request_id" json:"request_id" info:"请求id"`
	Source     string `db:"source" json:"source" info:"回复来源"`
	Confidence string `db:"confidence" json:"confidence" info:"置信度"`
	Provider   string `db:"provider" json:"provider" info:"模型供应商"`
	Question   string `db:"question" json:"question" info:"用户问题"`
	Status     int    `db:"status" json:"status" info:"http状态码"`
	LatencyMs  int64  `db:"latency_ms" json:"latency_ms" info:"耗时"`
	FellBack   bool   `db:"fell_back" json:"fell_back" info:"是否切换了供应商"`
}

func (ChatLog) TableName() string {
	return `chat_logs`
}
