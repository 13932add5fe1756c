package dao

import (
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/common"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
)

type ChatLogDb struct{}

func (d *ChatLogDb) Insert(l *db.ChatLog) error {
	row := map[string]interface{}{
		"request_id": l.RequestId,
		"source":     l.Source,
		"confidence": l.Confidence,
		"provider":   l.Provider,
		"question":   l.Question,
		"status":     l.Status,
		"latency_ms": l.LatencyMs,
		"fell_back":  l.FellBack,
	}
	if l.CreatedAt > 0 {
		row["created_at"] = l.CreatedAt
		row["updated_at"] = l.CreatedAt
	}

	sql, args, err := dbu.getBatchInsertSql(db.ChatLog{}, []map[string]interface{}{row})
	if err != nil {
		return fmt.Errorf("构建插入SQL失败: %w", err)
	}
	_, err = DB.Exec(DB.Rebind(sql), args...)
	return err
}

// CountBySource 统计since(unix秒)之后各来源的请求数
func (d *ChatLogDb) CountBySource(since int64, list *[]common.SourceCount) error {
	sql := fmt.Sprintf("SELECT `source`, COUNT(*) AS `total` FROM `%s` WHERE `created_at` >= ? GROUP BY `source` ORDER BY `total` DESC, `source` ASC", db.ChatLog{}.TableName())
	return DB.Select(list, DB.Rebind(sql), since)
}

// DeleteBefore 删除before(unix秒)之前的记录
func (d *ChatLogDb) DeleteBefore(before int64) (int64, error) {
	sql := fmt.Sprintf("DELETE FROM `%s` WHERE `created_at` < ?", db.ChatLog{}.TableName())
	result, err := DB.Exec(DB.Rebind(sql), before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
