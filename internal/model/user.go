// Package model はドメインモデルを定義する。
package model

import "time"

// User は登録済みユーザーを表す。
// IDは登録順に1から採番され、再利用されない。
// PasswordHashにはbcryptハッシュのみを保持し、平文は保持しない。
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
