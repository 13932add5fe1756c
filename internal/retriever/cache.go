package retriever

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/redis"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "retriever:"

type redisCache struct {
	rdb redis.Service
	ttl int64
	log *logrus.Logger
}

// NewRedisCache ttl 单位秒
func NewRedisCache(rdb redis.Service, ttl int64, log *logrus.Logger) Cache {
	return &redisCache{rdb: rdb, ttl: ttl, log: log}
}

func cacheKey(query string) string {
	return cacheKeyPrefix + utils.Hash(strings.ToLower(strings.TrimSpace(query)))
}

func (r *redisCache) Get(ctx context.Context, query string) (*Context, bool) {
	b, err := r.rdb.Get(ctx, cacheKey(query))
	if err != nil {
		if !errors.Is(err, redis.ErrNil) {
			r.log.Warnf("读取检索缓存失败: %v", err)
		}
		return nil, false
	}

	var rc Context
	if err := json.Unmarshal(b, &rc); err != nil {
		r.log.Warnf("检索缓存数据损坏: %v", err)
		return nil, false
	}
	return &rc, true
}

func (r *redisCache) Set(ctx context.Context, query string, rc *Context) {
	b, err := json.Marshal(rc)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, cacheKey(query), b, utils.GetTTLWithJitter(r.ttl)); err != nil {
		r.log.Warnf("写入检索缓存失败: %v", err)
	}
}
