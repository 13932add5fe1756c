package knowledge

// DefaultEntries 内置问答, 数据库和文件都没有配置时使用
func DefaultEntries() []Entry {
	return []Entry{
		{
			Trigger:  "admin panel",
			Answer:   "The admin panel provides comprehensive management capabilities for the Oracle migration tool. It includes user management, migration monitoring, performance analytics, and system configuration. Administrators can view all user activities, manage migration projects, and access detailed reports. The panel features a dashboard with real-time metrics, user activity logs, and system health monitoring.",
			Category: "administration",
		},
		{
			Trigger:  "history page",
			Answer:   "The history page tracks migration history, conversion results, and user activities. It shows completed migrations, conversion statistics, and detailed reports. Users can review past migrations, download conversion results, and analyze performance metrics. The page includes filtering options and export capabilities for comprehensive migration tracking.",
			Category: "tracking",
		},
		{
			Trigger:  "dev review",
			Answer:   "The dev review tab allows developers to review and approve migration changes. It shows pending conversions that need review, code quality metrics, and suggested improvements. Developers can approve, reject, or request changes to converted code. The review process ensures code quality and maintains standards across the migration project.",
			Category: "development",
		},
		{
			Trigger:  "code quality metrics",
			Answer:   "Code quality metrics include cyclomatic complexity, lines of code (LOC), comment ratio, maintainability index, performance score, modern features usage, bulk operations, scalability indicators, and overall performance score. These metrics help evaluate the quality of converted Oracle code and ensure it meets high standards.",
			Category: "quality",
		},
		{
			Trigger:  "migration process",
			Answer:   "The migration process involves uploading Sybase code, converting it to Oracle syntax, analyzing code quality, and generating reports. The system supports stored procedures, functions, triggers, and data type conversions. Users can review conversions, download results, and track migration progress through the dashboard.",
			Category: "process",
		},
		{
			Trigger:  "conversion process",
			Answer:   "The conversion process automatically transforms Sybase code to Oracle-compatible syntax. It handles data type mappings, function conversions, and syntax adjustments. The system provides real-time conversion status, quality metrics, and detailed reports. Users can review and approve conversions before deployment.",
			Category: "process",
		},
	}
}

func DefaultDocLinks() []DocLink {
	return []DocLink{
		{Category: "admin", Path: "/docs/admin-panel.md"},
		{Category: "history", Path: "/docs/history-page.md"},
		{Category: "migration", Path: "/docs/migration-process.md"},
		{Category: "quality", Path: "/docs/code-quality.md"},
		{Category: "conversion", Path: "/docs/conversion-guide.md"},
	}
}

// Default 内置知识库
func Default() *Base {
	b, err := NewBase(DefaultEntries(), DefaultDocLinks())
	if err != nil {
		panic(err)
	}
	return b
}
