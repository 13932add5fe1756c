package enum

import (
	"strings"
	"testing"
)

// TestMigrationPromptConsistency 确保系统提示词和检索段落的措辞保持一致,
// 模型在资料不足时需要给出同一句明确的拒答。
func TestMigrationPromptConsistency(t *testing.T) {
	prompt := string(SystemPromptMigration)

	if !strings.Contains(prompt, `"I don't have information about that specific aspect of the project."`) {
		t.Errorf("SystemPromptMigration应包含固定的拒答语句")
	}
	if !strings.Contains(prompt, "ONLY") {
		t.Errorf("SystemPromptMigration应限制模型只使用项目知识")
	}

	section := string(SystemPromptRagSection)
	if strings.Count(section, "%s") != 1 {
		t.Fatalf("SystemPromptRagSection应只有一个占位符")
	}
	if !strings.HasPrefix(section, "\n\nRELEVANT PROJECT DOCUMENTATION:\n") {
		t.Errorf("SystemPromptRagSection应以空行和标题开头")
	}
}

func TestProviderTitle(t *testing.T) {
	cases := map[Provider]string{
		ProviderGemini:     "Gemini",
		ProviderOpenRouter: "OpenRouter",
		Provider("other"):  "other",
	}
	for p, want := range cases {
		if got := p.Title(); got != want {
			t.Errorf("Provider(%s).Title() = %s, want %s", p, got, want)
		}
	}
}
