package user

import (
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
)

const defaultExcerptLength = 500

func extractIntent(string) enum.Intent {
	return enum.IntentGeneralQuestion
}

// 通用的追问建议, 不带任何项目知识
func suggestions(enum.Intent) []string {
	return []string{
		"Can you help me with this?",
		"What should I know about this?",
		"Tell me more about this topic",
	}
}

func assemble(message string, intent enum.Intent, source enum.Source, now time.Time) *common.ChatResponse {
	return &common.ChatResponse{
		Message:     message,
		Intent:      intent,
		Suggestions: suggestions(intent),
		Timestamp:   utils.IsoTime(now),
		Source:      source,
	}
}

// docsContext 只在AI路径使用: 没有检索内容时指向nil切片, 输出null
func docsContext(rc *retriever.Context, limit int) *[]common.DocsFile {
	if !rc.HasText() {
		var none []common.DocsFile
		return &none
	}
	if limit <= 0 {
		limit = defaultExcerptLength
	}

	files := []common.DocsFile{{
		File:        "Project Documentation",
		Description: "Relevant documentation retrieved from RAG system",
		Sections: []common.DocsSection{{
			Section:    "Retrieved Context",
			Content:    utils.Truncate(rc.Text, limit, "..."),
			LineNumber: 1,
		}},
	}}
	return &files
}
