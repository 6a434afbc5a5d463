package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx, so a repository
// built on gorm can join a transaction begun on the underlying *sql.DB.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	// A Context forces gorm to clone the statement, so the parent handle keeps its pool.
	session := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
