package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Open はユーザーストア用のPostgreSQL接続を開く。
// databaseURLは環境変数DATABASE_URLの値をそのまま渡す
// （例: "postgres://gatehouse:gatehouse@db:5432/gatehouse?sslmode=disable"）。
// sql.Openは接続を試行しないため、起動時の到達確認はdb.Ping()で行うこと。
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}
