package retriever

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Context 检索服务返回的文档片段
// nil 表示检索失败, Text为空表示没有找到相关内容
type Context struct {
	Text    string `json:"text"`
	Matches *int   `json:"matches,omitempty"`
	Debug   any    `json:"debug,omitempty"`
}

func (c *Context) HasText() bool {
	return c != nil && c.Text != ""
}

// Service 检索服务, Fetch 不返回错误, 失败时返回nil
type Service interface {
	Fetch(ctx context.Context, query string) *Context
}

// Cache 检索结果缓存
type Cache interface {
	Get(ctx context.Context, query string) (*Context, bool)
	Set(ctx context.Context, query string, rc *Context)
}

type client struct {
	endpoint   string
	httpClient *http.Client
	log        *logrus.Logger
	cache      Cache
}

type fetchRequest struct {
	Query string `json:"query"`
}

type fetchResponse struct {
	Context *string         `json:"context"`
	Matches json.RawMessage `json:"matches"`
	Debug   any             `json:"debug"`
}

// NewClient cache 可以为nil
func NewClient(baseUrl, path string, timeout time.Duration, log *logrus.Logger, cache Cache) Service {
	return &client{
		endpoint:   strings.TrimRight(baseUrl, "/") + "/" + strings.TrimLeft(path, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		cache:      cache,
	}
}

func (c *client) Fetch(ctx context.Context, query string) *Context {
	if c.cache != nil {
		if rc, ok := c.cache.Get(ctx, query); ok {
			c.log.WithField("query", query).Debug("检索命中缓存")
			return rc
		}
	}

	rc, err := c.fetch(ctx, query)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"query":    query,
			"endpoint": c.endpoint,
		}).Warnf("检索服务调用失败, 将不带文档继续: %v", err)
		return nil
	}

	c.log.WithFields(logrus.Fields{
		"query":   query,
		"length":  len(rc.Text),
		"matches": rc.Matches,
	}).Debug("检索完成")

	if c.cache != nil && rc.HasText() {
		c.cache.Set(ctx, query, rc)
	}
	return rc
}

func (c *client) fetch(ctx context.Context, query string) (*Context, error) {
	body, err := json.Marshal(fetchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("序列化请求体失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("检索服务返回错误状态码 %d: %s", resp.StatusCode, string(b))
	}

	var data fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("解析响应失败: %w", err)
	}

	rc := &Context{Debug: data.Debug}
	if data.Context != nil {
		rc.Text = *data.Context
	}
	if len(data.Matches) > 0 {
		var n int
		if json.Unmarshal(data.Matches, &n) == nil {
			rc.Matches = &n
		}
	}
	return rc, nil
}
