// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"

	"github.com/hitoshi/gatehouse/internal/model"
)

// UserRepository はユーザーデータの永続化インターフェース。
type UserRepository interface {
	// FindByEmail は指定メールアドレスのユーザーを取得する。
	// 大文字小文字は区別する完全一致。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// Create はユーザーを作成し、user.IDとuser.CreatedAtを設定する。
	// 挿入は不在時のみのアトミック操作であり、同一メールアドレスが
	// 既に存在する場合はmodel.ErrEmailTakenを返す。
	// 事前のFindByEmailによる存在チェックは競合を防げないため行わないこと。
	Create(ctx context.Context, user *model.User) error
}
