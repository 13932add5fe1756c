package config

type Config struct {
	Debug            bool      `mapstructure:"debug" json:"debug" yaml:"debug"`
	ProjectName      string    `mapstructure:"project_name" json:"project_name" yaml:"project_name"`
	GinAddr          string    `mapstructure:"gin_addr" json:"gin_addr" yaml:"gin_addr"`
	GinLogPath       string    `mapstructure:"gin_log_path" json:"gin_log_path" yaml:"gin_log_path"`
	RunLogPath       string    `mapstructure:"run_log_path" json:"run_log_path" yaml:"run_log_path"`
	LogRetentionDays uint      `mapstructure:"log_retention_days" json:"log_retention_days" yaml:"log_retention_days"`
	Tz               string    `mapstructure:"tz" json:"tz" yaml:"tz"`
	Cors             []string  `mapstructure:"cors" json:"cors" yaml:"cors"`
	RateLimit        RateLimit `mapstructure:"rate_limit" json:"rate_limit" yaml:"rate_limit"`
	Database         Database  `mapstructure:"database" json:"database" yaml:"database"`
	Redis            Redis     `mapstructure:"redis" json:"redis" yaml:"redis"`
	Gemini           Llm       `mapstructure:"gemini" json:"gemini" yaml:"gemini"`
	OpenRouter       Llm       `mapstructure:"open_router" json:"open_router" yaml:"open_router"`
	Retriever        Retriever `mapstructure:"retriever" json:"retriever" yaml:"retriever"`
	Knowledge        Knowledge `mapstructure:"knowledge" json:"knowledge" yaml:"knowledge"`
	Ai               Ai        `mapstructure:"ai" json:"ai" yaml:"ai"`
}
