package initialize

import (
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	base, err := taskManager.LoadKnowledge()
	if err != nil {
		global.Log.Errorln("启动时加载知识库失败, 使用内置知识库:", err)
		base = knowledge.Default()
	}
	i.knowledge = base
}
