package initialize

import (
	"fmt"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/llm"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/redis"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
)

// initRedis 初始化Redis客户端, 只用于缓存检索结果
func (i *Initializer) initRedis() error {
	if !global.Config.Redis.Enable {
		return nil
	}

	client, err := redis.NewClient(
		global.Config.Redis.Addr,
		global.Config.Redis.Password,
		global.Config.Redis.Db,
		global.Config.Redis.KeyPrefix,
	)
	if err != nil {
		global.Log.Warnf("初始化Redis客户端失败, 检索缓存不可用: %v", err)
		return fmt.Errorf("初始化Redis客户端失败: %w", err)
	}
	global.RedisClient = client
	global.Log.Info("初始化Redis服务成功")
	return nil
}

// redisClose 关闭Redis客户端连接
func (i *Initializer) redisClose() error {
	if global.RedisClient != nil {
		return global.RedisClient.Close()
	}
	return nil
}

// initLlm 按主备顺序注册模型供应商, 未配置密钥的供应商会被网关跳过
func (i *Initializer) initLlm() error {
	global.LlmGateway = llm.NewGateway(
		global.Log,
		llm.NewGemini(global.Config.Gemini, global.Log),
		llm.NewOpenRouter(global.Config.OpenRouter, global.Log),
	)

	if !global.LlmGateway.HasProvider() {
		global.Log.Warn("未配置任何模型密钥, AI回复不可用")
		return nil
	}
	global.Log.Infof("初始化LLM服务成功, gemini: %t, openrouter: %t",
		global.Config.Gemini.Auth != "", global.Config.OpenRouter.Auth != "")
	return nil
}

func (i *Initializer) initRetriever() {
	var cache retriever.Cache
	if global.RedisClient != nil {
		cache = retriever.NewRedisCache(global.RedisClient, global.Config.Redis.ContextTtl, global.Log)
	}

	global.Retriever = retriever.NewClient(
		global.Config.Retriever.Url,
		global.Config.Retriever.Path,
		time.Duration(global.Config.Retriever.Timeout)*time.Second,
		global.Log,
		cache,
	)
	global.Log.Infof("检索服务地址: %s, 缓存: %t", global.Config.Retriever.Url, cache != nil)
}
