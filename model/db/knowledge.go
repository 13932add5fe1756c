package db

// FaqEntry 固定问答, sort 决定匹配优先级
type FaqEntry struct {
	BaseField
	Sort     int    `db:"sort" json:"sort" info:"排序"`
	Trigger  string `db:"trigger_phrase" json:"trigger" info:"触发短语"`
	Answer   string `db:"answer" json:"answer" info:"回答"`
	Category string `db:"category" json:"category" info:"分类"`
}

func (FaqEntry) TableName() string {
	return `faq_entries`
}

type DocLink struct {
	BaseField
	Sort     int    `db:"sort" json:"sort" info:"排序"`
	Category string `db:"category" json:"category" info:"分类"`
	Path     string `db:"path" json:"path" info:"文档路径"`
}

func (DocLink) TableName() string {
	return `doc_links`
}
