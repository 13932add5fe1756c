package knowledge

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry 一条固定问答, 声明顺序即匹配优先级
type Entry struct {
	Trigger  string `yaml:"trigger" json:"trigger"`
	Answer   string `yaml:"answer" json:"answer"`
	Category string `yaml:"category" json:"category"`
}

// DocLink 分类到文档路径的映射
type DocLink struct {
	Category string `yaml:"category" json:"category"`
	Path     string `yaml:"path" json:"path"`
}

// Base 知识库, 初始化后只读, 可被并发访问
type Base struct {
	entries []Entry
	docs    []DocLink
	paths   map[string]string
}

var ErrEmptyTrigger = errors.New("knowledge: empty trigger phrase")

func NewBase(entries []Entry, docs []DocLink) (*Base, error) {
	b := &Base{
		entries: make([]Entry, 0, len(entries)),
		docs:    make([]DocLink, 0, len(docs)),
		paths:   make(map[string]string, len(docs)),
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Trigger))
		if key == "" {
			return nil, ErrEmptyTrigger
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("knowledge: duplicate trigger %q", e.Trigger)
		}
		seen[key] = struct{}{}
		b.entries = append(b.entries, e)
	}

	for _, d := range docs {
		if d.Category == "" || d.Path == "" {
			return nil, fmt.Errorf("knowledge: incomplete doc link %+v", d)
		}
		if _, ok := b.paths[d.Category]; ok {
			return nil, fmt.Errorf("knowledge: duplicate doc category %q", d.Category)
		}
		b.paths[d.Category] = d.Path
		b.docs = append(b.docs, d)
	}

	return b, nil
}

func (b *Base) Entries() []Entry {
	return append([]Entry(nil), b.entries...)
}

func (b *Base) DocLinks() []DocLink {
	return append([]DocLink(nil), b.docs...)
}

func (b *Base) DocPath(category string) (string, bool) {
	p, ok := b.paths[category]
	return p, ok
}

type file struct {
	Faq  []Entry   `yaml:"faq"`
	Docs []DocLink `yaml:"docs"`
}

// LoadFile 从yaml文件读取问答和文档链接
func LoadFile(path string) ([]Entry, []DocLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("读取知识库文件失败: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("解析知识库文件失败: %w", err)
	}
	return f.Faq, f.Docs, nil
}
