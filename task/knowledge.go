package task

import (
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/dao"
	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/internal/knowledge"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/jmoiron/sqlx"
)

// LoadKnowledge 依次尝试数据库, 知识库文件, 内置数据, 第一个有问答的来源生效
// 来源没有文档链接时使用内置的文档链接
func (m *Manager) LoadKnowledge() (*knowledge.Base, error) {
	if dao.DB != nil {
		entries, links, err := m.knowledgeFromDb()
		if err != nil {
			global.Log.Warnf("从数据库读取知识库失败: %v", err)
		} else if len(entries) > 0 {
			global.Log.Infof("知识库来源: 数据库, 问答 %d 条", len(entries))
			return newBase(entries, links)
		}
	}

	entries, links, err := m.knowledgeFromFile()
	if err != nil {
		return nil, err
	}
	if len(entries) > 0 {
		global.Log.Infof("知识库来源: %s, 问答 %d 条", m.knowledgeFile, len(entries))
		return newBase(entries, links)
	}

	global.Log.Info("知识库来源: 内置")
	return knowledge.Default(), nil
}

// SeedKnowledge 把知识库文件(没有则用内置数据)写入数据库
func (m *Manager) SeedKnowledge() error {
	if dao.DB == nil {
		return errNoDb
	}

	entries, links, err := m.knowledgeFromFile()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		entries = knowledge.DefaultEntries()
	}
	if len(links) == 0 {
		links = knowledge.DefaultDocLinks()
	}

	// 写入前先校验, 避免把重复的触发短语写进数据库
	if _, err := knowledge.NewBase(entries, links); err != nil {
		return fmt.Errorf("知识库数据无效: %w", err)
	}

	faqRows := make([]db.FaqEntry, 0, len(entries))
	for _, e := range entries {
		faqRows = append(faqRows, db.FaqEntry{Trigger: e.Trigger, Answer: e.Answer, Category: e.Category})
	}
	linkRows := make([]db.DocLink, 0, len(links))
	for _, l := range links {
		linkRows = append(linkRows, db.DocLink{Category: l.Category, Path: l.Path})
	}

	var n int64
	err = dao.Tx(func(tx *sqlx.Tx) (err error) {
		n, err = dao.App.KnowledgeDb.ReplaceAll(faqRows, linkRows, tx)
		return
	})
	if err != nil {
		return fmt.Errorf("写入知识库失败: %w", err)
	}

	global.Log.Infof("知识库写入完成, 共 %d 条", n)
	return nil
}

func (m *Manager) knowledgeFromFile() ([]knowledge.Entry, []knowledge.DocLink, error) {
	if m.knowledgeFile == "" {
		return nil, nil, nil
	}
	return knowledge.LoadFile(m.knowledgeFile)
}

func (m *Manager) knowledgeFromDb() ([]knowledge.Entry, []knowledge.DocLink, error) {
	var faqRows []db.FaqEntry
	if err := dao.App.KnowledgeDb.GetFaqEntries(&faqRows); err != nil {
		return nil, nil, err
	}
	var linkRows []db.DocLink
	if err := dao.App.KnowledgeDb.GetDocLinks(&linkRows); err != nil {
		return nil, nil, err
	}

	entries := make([]knowledge.Entry, 0, len(faqRows))
	for _, r := range faqRows {
		entries = append(entries, knowledge.Entry{Trigger: r.Trigger, Answer: r.Answer, Category: r.Category})
	}
	links := make([]knowledge.DocLink, 0, len(linkRows))
	for _, r := range linkRows {
		links = append(links, knowledge.DocLink{Category: r.Category, Path: r.Path})
	}
	return entries, links, nil
}

func newBase(entries []knowledge.Entry, links []knowledge.DocLink) (*knowledge.Base, error) {
	if len(links) == 0 {
		links = knowledge.DefaultDocLinks()
	}
	return knowledge.NewBase(entries, links)
}
