package user

import (
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/llm"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/retriever"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/sirupsen/logrus"
)

// ChatLogStore 对话记录持久化, 由dao实现
type ChatLogStore interface {
	Insert(l *db.ChatLog) error
	CountBySource(since int64, list *[]common.SourceCount) error
}

// Deps 服务依赖, 由initialize注入
type Deps struct {
	Log               *logrus.Logger
	Knowledge         *knowledge.Base
	Retriever         retriever.Service
	Gateway           *llm.Gateway
	ChatLogs          ChatLogStore // 可以为nil
	DocsExcerptLength int
}

type ServiceGroup struct {
	ChatService  IChatService
	StatsService IStatsService
	Validator    IValidator
}

func NewServiceGroup(d Deps) ServiceGroup {
	validator := &Validator{}
	return ServiceGroup{
		ChatService:  NewChatService(d, validator),
		StatsService: NewStatsService(d.ChatLogs),
		Validator:    validator,
	}
}
