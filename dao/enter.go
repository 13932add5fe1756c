package dao

import (
	"errors"
	"fmt"

	"github.com/Kbc981/oracle-ai-migrate-gcp/global"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/db"
	"github.com/Kbc981/oracle-ai-migrate-gcp/model/enum"
	"github.com/jmoiron/sqlx"
)

type Group struct {
	KnowledgeDb
	ChatLogDb
}

var (
	DB  *sqlx.DB
	App = new(Group)

	dbu = &dbUtils{}

	errNeedTx = errors.New("请使用事务[ioddfsaa]")
)

// Tx 在事务中执行fc, fc返回错误或panic时回滚
func Tx(fc func(tx *sqlx.Tx) error) (err error) {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fc(tx)
}

// 清空表并重置自增id
func cleanTable(tx *sqlx.Tx, d db.Dbfunc) error {
	if tx == nil {
		return errNeedTx
	}

	switch global.Config.Database.Type {
	case string(enum.SQLITE), "":
		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM `%s`", d.TableName())); err != nil {
			return err
		}
		// 重置自增ID
		_, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = ?", d.TableName())
		return err
	case string(enum.MYSQL):
		// TRUNCATE会隐式提交事务, 这里只能用DELETE
		_, err := tx.Exec(fmt.Sprintf("DELETE FROM `%s`", d.TableName()))
		return err
	}

	return errors.New("数据库类型错误[rjfsos]")
}
