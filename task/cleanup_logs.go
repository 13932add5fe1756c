package task

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/utils"
)

// CleanUpLogs 删除超过保留天数的日志文件
func (m *Manager) CleanUpLogs() error {
	retentionDays := global.Config.LogRetentionDays
	if retentionDays == 0 {
		global.Log.Info("日志清理功能已禁用 (log_retention_days = 0)")
		return nil
	}

	global.Log.Info("开始执行日志清理任务...")

	now := time.Now().In(global.Tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, global.Tz)
	cutoffDate := today.AddDate(0, 0, -int(retentionDays))

	dirs := []string{filepath.Dir(global.Config.RunLogPath)}
	if ginDir := filepath.Dir(global.Config.GinLogPath); ginDir != dirs[0] {
		dirs = append(dirs, ginDir)
	}

	deletedCount := 0
	var errs []string

	for _, logDir := range dirs {
		err := filepath.WalkDir(logDir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			fileDate, ok := utils.ParseDateFromLogFileName(d.Name(), global.Tz)
			if !ok || !fileDate.Before(cutoffDate) {
				return nil
			}

			if err := os.Remove(path); err != nil {
				errMsg := fmt.Sprintf("删除旧日志文件 %s 失败: %v", path, err)
				global.Log.Error(errMsg)
				errs = append(errs, errMsg)
				return nil
			}
			global.Log.Infof("已删除旧日志文件: %s", path)
			deletedCount++
			return nil
		})
		if err != nil {
			return fmt.Errorf("遍历日志目录 '%s' 失败: %w", logDir, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("日志清理过程中发生错误: %s", strings.Join(errs, "; "))
	}

	global.Log.Infof("日志清理任务完成，共删除 %d 个文件", deletedCount)
	return nil
}
