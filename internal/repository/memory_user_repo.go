package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hitoshi/gatehouse/internal/model"
)

// MemoryUserRepo はプロセス内メモリのみを使用するユーザーリポジトリ。
// DATABASE_URL未設定時のデフォルト実装で、プロセス終了とともに全データを失う。
// IDは1から順に採番し、再利用しない。
type MemoryUserRepo struct {
	mu     sync.RWMutex
	users  []*model.User
	byMail map[string]*model.User
	nextID int64
}

// NewMemoryUserRepo はMemoryUserRepoを生成する。
func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		byMail: make(map[string]*model.User),
		nextID: 1,
	}
}

// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byMail[email]
	if !ok {
		return nil, nil
	}
	u := *user
	return &u, nil
}

// FindByID は指定IDのユーザーを取得する。見つからない場合はnilを返す。
func (r *MemoryUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			u := *user
			return &u, nil
		}
	}
	return nil, nil
}

// Create はユーザーを作成する。
// 存在チェックと挿入を同一ロック内で行い、同時登録の競合でも
// 同一メールアドレスのユーザーが二重に作られないことを保証する。
func (r *MemoryUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byMail[user.Email]; ok {
		return model.ErrEmailTaken
	}

	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++

	stored := *user
	r.users = append(r.users, &stored)
	r.byMail[stored.Email] = &stored
	return nil
}

// compile-time interface check
var _ UserRepository = (*MemoryUserRepo)(nil)
