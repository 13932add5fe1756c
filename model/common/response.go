package common

import (
	"net/http"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/gin-gonic/gin"
)

type ChatResponse struct {
	Message     string          `json:"message"`
	Intent      enum.Intent     `json:"intent"`
	Suggestions []string        `json:"suggestions"`
	Timestamp   string          `json:"timestamp"`
	Source      enum.Source     `json:"source"`
	Confidence  enum.Confidence `json:"confidence,omitempty"`
	// nil 时不输出该字段; 指向nil切片时输出null
	DocsContext *[]DocsFile `json:"docsContext,omitempty"`
}

type DocsFile struct {
	File        string        `json:"file"`
	Description string        `json:"description"`
	Sections    []DocsSection `json:"sections"`
}

type DocsSection struct {
	Section    string `json:"section"`
	Content    string `json:"content"`
	LineNumber int    `json:"lineNumber"`
}

type HealthResponse struct {
	Message         enum.Msg `json:"message"`
	Status          string   `json:"status"`
	Timestamp       string   `json:"timestamp"`
	HasPrimaryKey   bool     `json:"hasPrimaryKey"`
	HasSecondaryKey bool     `json:"hasSecondaryKey"`
}

type ErrorResponse struct {
	Error   enum.Msg `json:"error"`
	Details string   `json:"details,omitempty"`
}

type StatsResponse struct {
	Days    int           `json:"days"`
	Total   int64         `json:"total"`
	Sources []SourceCount `json:"sources"`
}

func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// 预检请求, 不带body
func SuccessEmpty(ctx *gin.Context) {
	ctx.Status(http.StatusOK)
}

func Fail(ctx *gin.Context, status int, msg enum.Msg, details ...string) {
	res := ErrorResponse{Error: msg}
	if len(details) > 0 {
		res.Details = details[0]
	}
	ctx.AbortWithStatusJSON(status, res)
}

func FailNotFound(ctx *gin.Context) {
	Fail(ctx, http.StatusNotFound, enum.MsgNotFound)
}
