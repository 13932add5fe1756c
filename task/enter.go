package task

// Manager 定时任务和一次性任务
type Manager struct {
	knowledgeFile string
}

// NewManager knowledgeFile 为空时只使用内置知识库
func NewManager(knowledgeFile string) *Manager {
	return &Manager{
		knowledgeFile: knowledgeFile,
	}
}
