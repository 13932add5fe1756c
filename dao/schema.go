package dao

import (
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
)

var sqliteSchema = []string{
	"CREATE TABLE IF NOT EXISTS `faq_entries` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT," +
		"`sort` INTEGER NOT NULL DEFAULT 0," +
		"`trigger_phrase` TEXT NOT NULL," +
		"`answer` TEXT NOT NULL," +
		"`category` TEXT NOT NULL DEFAULT ''," +
		"`created_at` INTEGER NOT NULL DEFAULT 0," +
		"`updated_at` INTEGER NOT NULL DEFAULT 0)",
	"CREATE TABLE IF NOT EXISTS `doc_links` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT," +
		"`sort` INTEGER NOT NULL DEFAULT 0," +
		"`category` TEXT NOT NULL," +
		"`path` TEXT NOT NULL," +
		"`created_at` INTEGER NOT NULL DEFAULT 0," +
		"`updated_at` INTEGER NOT NULL DEFAULT 0)",
	"CREATE TABLE IF NOT EXISTS `chat_logs` (" +
		"`id` INTEGER PRIMARY KEY AUTOINCREMENT," +
		"`request_id` TEXT NOT NULL DEFAULT ''," +
		"`source` TEXT NOT NULL DEFAULT ''," +
		"`confidence` TEXT NOT NULL DEFAULT ''," +
		"`provider` TEXT NOT NULL DEFAULT ''," +
		"`question` TEXT NOT NULL DEFAULT ''," +
		"`status` INTEGER NOT NULL DEFAULT 0," +
		"`latency_ms` INTEGER NOT NULL DEFAULT 0," +
		"`fell_back` INTEGER NOT NULL DEFAULT 0," +
		"`created_at` INTEGER NOT NULL DEFAULT 0," +
		"`updated_at` INTEGER NOT NULL DEFAULT 0)",
	"CREATE INDEX IF NOT EXISTS `idx_chat_logs_created_at` ON `chat_logs` (`created_at`)",
}

var mysqlSchema = []string{
	"CREATE TABLE IF NOT EXISTS `faq_entries` (" +
		"`id` INT UNSIGNED NOT NULL AUTO_INCREMENT," +
		"`sort` INT NOT NULL DEFAULT 0," +
		"`trigger_phrase` VARCHAR(255) NOT NULL," +
		"`answer` TEXT NOT NULL," +
		"`category` VARCHAR(64) NOT NULL DEFAULT ''," +
		"`created_at` BIGINT NOT NULL DEFAULT 0," +
		"`updated_at` BIGINT NOT NULL DEFAULT 0," +
		"PRIMARY KEY (`id`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	"CREATE TABLE IF NOT EXISTS `doc_links` (" +
		"`id` INT UNSIGNED NOT NULL AUTO_INCREMENT," +
		"`sort` INT NOT NULL DEFAULT 0," +
		"`category` VARCHAR(64) NOT NULL," +
		"`path` VARCHAR(255) NOT NULL," +
		"`created_at` BIGINT NOT NULL DEFAULT 0," +
		"`updated_at` BIGINT NOT NULL DEFAULT 0," +
		"PRIMARY KEY (`id`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
	"CREATE TABLE IF NOT EXISTS `chat_logs` (" +
		"`id` INT UNSIGNED NOT NULL AUTO_INCREMENT," +
		"`request_id` VARCHAR(64) NOT NULL DEFAULT ''," +
		"`source` VARCHAR(32) NOT NULL DEFAULT ''," +
		"`confidence` VARCHAR(16) NOT NULL DEFAULT ''," +
		"`provider` VARCHAR(32) NOT NULL DEFAULT ''," +
		"`question` VARCHAR(512) NOT NULL DEFAULT ''," +
		"`status` INT NOT NULL DEFAULT 0," +
		"`latency_ms` BIGINT NOT NULL DEFAULT 0," +
		"`fell_back` TINYINT(1) NOT NULL DEFAULT 0," +
		"`created_at` BIGINT NOT NULL DEFAULT 0," +
		"`updated_at` BIGINT NOT NULL DEFAULT 0," +
		"PRIMARY KEY (`id`), KEY `idx_created_at` (`created_at`)) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
}

// CreateTables 建表, 已存在的表不受影响
func CreateTables(dbType string) error {
	schema := sqliteSchema
	if dbType == string(enum.MYSQL) {
		schema = mysqlSchema
	}

	for _, stmt := range schema {
		if _, err := DB.Exec(stmt); err != nil {
			return fmt.Errorf("建表失败: %w", err)
		}
	}
	return nil
}
