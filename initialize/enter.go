package initialize

import (
	"context"
	"io"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	knowledge      *knowledge.Base
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务，失败会终止程序
	eg.Go(i.dbStart)
	eg.Go(i.initLlm)

	// 非关键任务，失败只打印日志，不影响启动
	eg.Go(func() error {
		i.initRedis()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	// 检索缓存依赖redis, 放在最后
	i.initRetriever()
	return nil
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	i.timerStop()
	if err := i.redisClose(); err != nil {
		global.Log.Warnf("关闭Redis失败: %v", err)
	}
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库失败: %v", err)
	}
	for _, c := range i.logFileClosers {
		_ = c.Close()
	}
}

// StartSystem 启动系统级服务，如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}
