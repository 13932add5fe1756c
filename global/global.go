package global

import (
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/llm"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/redis"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/config"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config      *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log         *logrus.Logger
	Tz          *time.Location
	RedisClient redis.Service
	LlmGateway  *llm.Gateway
	Retriever   retriever.Service
)
