package knowledge

import (
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
)

// Match FAQ命中结果
type Match struct {
	Entry      Entry
	Confidence enum.Confidence
	DocPath    string
}

// Answer 回答正文, 分类有对应文档时附上链接
func (m *Match) Answer() string {
	if m.DocPath == "" {
		return m.Entry.Answer
	}
	return m.Entry.Answer + "\n\n" + string(enum.MsgDocLinkPrefix) + m.DocPath
}

// Match 先做子串精确匹配, 再做分词模糊匹配, 按声明顺序先到先得
func (b *Base) Match(message string) (*Match, bool) {
	msg := strings.ToLower(message)

	for _, e := range b.entries {
		if strings.Contains(msg, strings.ToLower(e.Trigger)) {
			return b.newMatch(e, enum.ConfidenceHigh), true
		}
	}

	words := strings.Fields(msg)
	if len(words) == 0 {
		return nil, false
	}
	for _, e := range b.entries {
		if fuzzyMatch(strings.Fields(strings.ToLower(e.Trigger)), words) {
			return b.newMatch(e, enum.ConfidenceMedium), true
		}
	}

	return nil, false
}

func (b *Base) newMatch(e Entry, c enum.Confidence) *Match {
	path, _ := b.DocPath(e.Category)
	return &Match{Entry: e, Confidence: c, DocPath: path}
}

// 每个触发词都要与消息中的某个词互相包含
func fuzzyMatch(keyWords, msgWords []string) bool {
	for _, kw := range keyWords {
		found := false
		for _, mw := range msgWords {
			if strings.Contains(mw, kw) || strings.Contains(kw, mw) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
