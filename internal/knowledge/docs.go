package knowledge

import (
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
)

var docsKeywords = []string{"documentation", "docs", "guide"}

// Docs 消息询问文档时, 列出全部分类和路径
func (b *Base) Docs(message string) (string, bool) {
	if !utils.ContainsAny(strings.ToLower(message), docsKeywords) {
		return "", false
	}

	lines := make([]string, 0, len(b.docs))
	for _, d := range b.docs {
		lines = append(lines, "- "+d.Category+": "+d.Path)
	}
	return string(enum.MsgDocsHeader) + "\n" + strings.Join(lines, "\n"), true
}
