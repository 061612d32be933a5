// Package auth はパスワード認証とセッショントークンの発行・検証を提供する。
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/hitoshi/gatehouse/internal/model"
	"github.com/hitoshi/gatehouse/internal/repository"
	"github.com/hitoshi/gatehouse/internal/security"
)

// DefaultBcryptCost はパスワードハッシュのデフォルトコスト係数。
// 意図的に遅く（数百ms程度）してオフライン攻撃を困難にする。
const DefaultBcryptCost = 12

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	// BcryptCost はbcryptのコスト係数。0以下の場合はDefaultBcryptCostを使う。
	// テストでは速度のためbcrypt.MinCostを指定できる。
	BcryptCost int
}

// Service は登録・ログインのビジネスロジックを提供する。
type Service struct {
	userRepo   repository.UserRepository
	tokens     *TokenIssuer
	bcryptCost int
}

// NewService はServiceを生成する。
func NewService(userRepo repository.UserRepository, tokens *TokenIssuer, config ServiceConfig) *Service {
	cost := config.BcryptCost
	if cost <= 0 {
		cost = DefaultBcryptCost
	}
	return &Service{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: cost,
	}
}

// Register は新規ユーザーを登録する。
// 検証は必須項目 → メール形式 → パスワードポリシー → 一意性の固定順で行い、
// 最初に失敗した検証の*model.FormErrorを返す（複数エラーの集約はしない）。
// 成功してもログイン状態にはしない。
func (s *Service) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, model.NewMissingFieldsError()
	}
	if !security.ValidEmail(email) {
		return nil, model.NewInvalidEmailError()
	}
	if !security.ValidPassword(password) {
		return nil, model.NewWeakPasswordError()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		// ハッシュ失敗の詳細はログのみに残し、ユーザーには汎用メッセージを返す
		slog.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, model.NewRegistrationFailedError()
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrEmailTaken) {
			return nil, model.NewDuplicateEmailError()
		}
		slog.Error("failed to create user", slog.String("error", err.Error()))
		return nil, model.NewRegistrationFailedError()
	}

	slog.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login は資格情報を検証し、セッショントークンを発行する。
// ユーザー不在とパスワード不一致はどちらも同一の*model.FormErrorになる。
// メールアドレスの存在有無を外部から観測させないため、両者を区別しないこと。
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", model.NewMissingFieldsError()
	}
	if !security.ValidEmail(email) {
		return "", model.NewInvalidEmailError()
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		slog.Error("failed to find user by email", slog.String("error", err.Error()))
		return "", model.NewLoginFailedError()
	}
	if user == nil {
		return "", model.NewBadCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.NewBadCredentialsError()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("failed to issue token",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()),
		)
		return "", model.NewLoginFailedError()
	}

	slog.Info("user logged in", slog.Int64("user_id", user.ID))

	return token, nil
}

// UserByID は指定IDのユーザーを取得する。
// 見つからない場合はmodel.ErrUserNotFoundを返す。
func (s *Service) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// VerifyToken はセッショントークンを検証してユーザーIDを返す。
// 失敗時は理由によらずErrInvalidTokenを返す。
func (s *Service) VerifyToken(token string) (int64, error) {
	return s.tokens.Verify(token)
}
