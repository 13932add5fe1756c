package initialize

import (
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/task"
	"github.com/robfig/cron/v3"
)

func (i *Initializer) timerStart(taskManager *task.Manager) error {
	i.cron = cron.New([]cron.Option{
		cron.WithLocation(global.Tz),
	}...)

	if err := i.startCronJob(taskManager.CleanUpLogs, "0 3 * * *"); err != nil {
		return err
	}
	if err := i.startCronJob(taskManager.PruneChatLogs, "30 3 * * *"); err != nil {
		return err
	}

	i.cron.Start() //已含协程
	global.Log.Infoln("定时器启动成功")
	return nil
}

func (i *Initializer) timerStop() {
	if i.cron == nil {
		return
	}
	<-i.cron.Stop().Done()
	global.Log.Infoln("定时器停止成功")
}

// 启动一个新的定时任务, 任务出错只记录日志
func (i *Initializer) startCronJob(task func() error, schedule string) error {
	_, err := i.cron.AddFunc(schedule, func() {
		if err := task(); err != nil {
			global.Log.Errorf("定时任务执行失败: %v", err)
		}
	})
	return err
}
