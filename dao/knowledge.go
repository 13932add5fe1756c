package dao

import (
	"fmt"
	"strings"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/jmoiron/sqlx"
)

type KnowledgeDb struct{}

func (d *KnowledgeDb) GetFaqEntries(list *[]db.FaqEntry, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `sort` ASC, `id` ASC", db.FaqEntry{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

func (d *KnowledgeDb) GetDocLinks(list *[]db.DocLink, tx ...*sqlx.Tx) error {
	sql := fmt.Sprintf("SELECT * FROM `%s` ORDER BY `sort` ASC, `id` ASC", db.DocLink{}.TableName())

	if len(tx) > 0 && tx[0] != nil {
		return tx[0].Select(list, sql)
	}
	return DB.Select(list, sql)
}

// ReplaceAll 清空后重新写入问答和文档链接, sort取切片下标
func (d *KnowledgeDb) ReplaceAll(entries []db.FaqEntry, links []db.DocLink, tx *sqlx.Tx) (int64, error) {
	if tx == nil {
		return 0, errNeedTx
	}

	if err := cleanTable(tx, db.FaqEntry{}); err != nil {
		return 0, fmt.Errorf("清空问答表失败: %w", err)
	}
	if err := cleanTable(tx, db.DocLink{}); err != nil {
		return 0, fmt.Errorf("清空文档链接表失败: %w", err)
	}

	var faqData []map[string]interface{}
	for i, e := range entries {
		e.Trigger = strings.TrimSpace(e.Trigger)
		if e.Trigger == "" || e.Answer == "" {
			continue // 跳过无效数据
		}
		faqData = append(faqData, map[string]interface{}{
			"sort":           i,
			"trigger_phrase": e.Trigger,
			"answer":         e.Answer,
			"category":       e.Category,
		})
	}

	var linkData []map[string]interface{}
	for i, l := range links {
		if l.Category == "" || l.Path == "" {
			continue
		}
		linkData = append(linkData, map[string]interface{}{
			"sort":     i,
			"category": l.Category,
			"path":     l.Path,
		})
	}

	var total int64
	for _, item := range []struct {
		table db.Dbfunc
		data  []map[string]interface{}
	}{{db.FaqEntry{}, faqData}, {db.DocLink{}, linkData}} {
		n, err := batchInsert(tx, item.table, item.data)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

func batchInsert(tx *sqlx.Tx, d db.Dbfunc, data []map[string]interface{}) (int64, error) {
	if len(data) == 0 {
		return 0, nil
	}

	sql, args, err := dbu.getBatchInsertSql(d, data)
	if err != nil {
		return 0, fmt.Errorf("构建批量插入SQL失败: %w", err)
	}

	result, err := tx.Exec(tx.Rebind(sql), args...)
	if err != nil {
		return 0, fmt.Errorf("批量插入数据失败: %w", err)
	}
	return result.RowsAffected()
}
