package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/dao"
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
)

var errNoDb = errors.New("数据库未初始化")

// PruneChatLogs 删除超过保留天数的对话记录
func (m *Manager) PruneChatLogs() error {
	retentionDays := global.Config.Ai.ChatLogRetentionDays
	if retentionDays == 0 {
		global.Log.Info("对话记录清理已禁用 (chat_log_retention_days = 0)")
		return nil
	}
	if dao.DB == nil {
		return errNoDb
	}

	cutoff := time.Now().AddDate(0, 0, -int(retentionDays)).Unix()
	n, err := dao.App.ChatLogDb.DeleteBefore(cutoff)
	if err != nil {
		return fmt.Errorf("清理对话记录失败: %w", err)
	}

	global.Log.Infof("对话记录清理完成，删除 %s 之前的记录共 %d 条", utils.TimeFormat(cutoff, global.Tz), n)
	return nil
}
