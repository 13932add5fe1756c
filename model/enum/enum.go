package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	MsgHealthy           Msg = `Chatbot function is running!`
	MsgMethodNotAllowed  Msg = `Method not allowed`
	MsgMissingMessage    Msg = `Missing message`
	MsgKeysNotConfigured Msg = `API keys not configured. Please set OPENROUTER_API_KEY or GEMINI_API_KEY environment variables.`
	MsgProcessFailed     Msg = `Failed to process message`
	MsgTooManyRequests   Msg = `Too many requests, please try again later.`
	MsgNotFound          Msg = `Not found`
	MsgNoAnswer          Msg = `Sorry, I couldn't generate a response.`
	MsgDocsHeader        Msg = `Here are the available documentation links:`
	MsgDocLinkPrefix     Msg = `For more details, check: `
)

// Source 标识哪一种策略产生了回复
type Source string

const (
	SourceFaq   Source = "hardcoded_faq"
	SourceDocs  Source = "docs"
	SourceAiRag Source = "ai_with_rag"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)

type Intent string

const (
	IntentGeneralQuestion Intent = "general_question"
)

// Provider 模型供应商
type Provider string

const (
	ProviderGemini     Provider = "gemini"
	ProviderOpenRouter Provider = "openrouter"
)

// Title 用于日志和错误信息中的展示名
func (p Provider) Title() string {
	switch p {
	case ProviderGemini:
		return "Gemini"
	case ProviderOpenRouter:
		return "OpenRouter"
	}
	return string(p)
}

type SystemPrompt string

const (
	SystemPromptMigration SystemPrompt = `You are an AI assistant for a Sybase to Oracle migration project.

IMPORTANT: You can ONLY use the provided project knowledge to answer questions. If no relevant knowledge is provided, say "I don't have information about that specific aspect of the project."

RESPONSE GUIDELINES:
- Use ONLY the provided project knowledge
- If no knowledge is provided, clearly state you don't have information
- Be concise and direct
- Do not use any external knowledge or general information`

	// SystemPromptRagSection 拼接在系统提示词之后, %s 为检索到的文档
	SystemPromptRagSection SystemPrompt = `

RELEVANT PROJECT DOCUMENTATION:
%s

Use the above documentation to provide accurate and specific answers about the project. If the documentation doesn't contain relevant information, clearly state that you don't have specific information about that aspect.`
)
