package initialize

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/config"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "seed": 知识库写入数据库; "clean": 清理过期日志和对话记录;`)
}

// 环境变量, 靠前的优先
var envBindings = map[string][]string{
	"gemini.auth":      {"GEMINI_API_KEY", "VITE_GEMINI_API_KEY"},
	"open_router.auth": {"OPENROUTER_API_KEY"},
	"retriever.url":    {"RAG_URL", "URL"},
	"gin_addr":         {"GIN_ADDR"},
	"debug":            {"DEBUG"},
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	configPath := `config.yaml`
	explicit := false
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
			explicit = true
		}
	}

	// .env 不覆盖已存在的环境变量
	_ = godotenv.Load()

	if err := loadConfig(configPath, explicit, global.Config); err != nil {
		panic(err.Error())
	}

	return &Initializer{}
}

// loadConfig 读取配置文件和环境变量; 默认配置文件不存在时只用环境变量
func loadConfig(configPath string, explicit bool, c *config.Config) error {
	v := viper.New()
	v.SetConfigType("yaml")

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("绑定环境变量失败[vb7ek2]: %w", err)
		}
	}

	if explicit || utils.FileExist(configPath) {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("读取配置失败[u9ij]: %s %w", configPath, err)
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("出错[dhfal]: %w", err)
	}

	handleConfig(c)
	return nil
}

// handleConfig 处理和设置配置的默认值
// 各个timeout保持原值, 0 表示不限制
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "Migration Assistant"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":8080"
		if port := os.Getenv("PORT"); port != "" {
			c.GinAddr = ":" + port
		}
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "UTC"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.RateLimit.Requests == 0 && c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.Requests = 100
		c.RateLimit.WindowSeconds = 900
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 900
	}

	if c.Database.Type == "" || c.Database.Type == "sqlite" {
		c.Database.Type = string(enum.SQLITE)
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "migrate:"
	}
	if c.Redis.ContextTtl == 0 {
		c.Redis.ContextTtl = 3600
	}

	if c.Gemini.Url == "" {
		c.Gemini.Url = "https://generativelanguage.googleapis.com/v1beta"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash-exp"
	}
	if c.OpenRouter.Url == "" {
		c.OpenRouter.Url = "https://openrouter.ai/api/v1"
	}
	if c.OpenRouter.Model == "" {
		c.OpenRouter.Model = "qwen/qwen3-coder:free"
	}
	if c.OpenRouter.Temperature == 0 {
		c.OpenRouter.Temperature = 0.7
	}
	if c.OpenRouter.MaxTokens == 0 {
		c.OpenRouter.MaxTokens = 500
	}
	c.Gemini.Auth = strings.TrimSpace(c.Gemini.Auth)
	c.OpenRouter.Auth = strings.TrimSpace(c.OpenRouter.Auth)

	if c.Retriever.Url == "" {
		c.Retriever.Url = "http://localhost:8888"
	}
	if c.Retriever.Path == "" {
		c.Retriever.Path = "/retrieve"
	}

	for _, t := range []*int64{&c.Gemini.Timeout, &c.OpenRouter.Timeout, &c.Retriever.Timeout} {
		if *t < 0 {
			*t = 0
		}
	}

	if c.Ai.DocsExcerptLength == 0 {
		c.Ai.DocsExcerptLength = 500
	}
}
