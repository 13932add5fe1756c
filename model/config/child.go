package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Enable     bool   `json:"enable" mapstructure:"enable" yaml:"enable"`
	Addr       string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password   string `json:"password" mapstructure:"password" yaml:"password"`
	Db         int    `json:"db" mapstructure:"db" yaml:"db"`
	KeyPrefix  string `json:"key_prefix" mapstructure:"key_prefix" yaml:"key_prefix"`
	ContextTtl int64  `json:"context_ttl" mapstructure:"context_ttl" yaml:"context_ttl"`
}

type Llm struct {
	Url         string  `json:"url" mapstructure:"url" yaml:"url"`
	Model       string  `json:"model" mapstructure:"model" yaml:"model"`
	Auth        string  `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout     int64   `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	Temperature float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
	MaxTokens   int     `json:"max_tokens" mapstructure:"max_tokens" yaml:"max_tokens"`
}

type Retriever struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Path    string `json:"path" mapstructure:"path" yaml:"path"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

type Knowledge struct {
	File string `json:"file" mapstructure:"file" yaml:"file"`
}

type RateLimit struct {
	Requests      int   `json:"requests" mapstructure:"requests" yaml:"requests"`
	WindowSeconds int64 `json:"window_seconds" mapstructure:"window_seconds" yaml:"window_seconds"`
}

type Ai struct {
	DocsExcerptLength    int  `json:"docs_excerpt_length" mapstructure:"docs_excerpt_length" yaml:"docs_excerpt_length"`
	ChatLogRetentionDays uint `json:"chat_log_retention_days" mapstructure:"chat_log_retention_days" yaml:"chat_log_retention_days"`
}
