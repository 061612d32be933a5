// Package model はドメインモデルを定義する。
package model

import (
	"errors"
	"fmt"
)

// ErrEmailTaken は同一メールアドレスのユーザーが既に存在することを示す。
// 一意性はリポジトリ層が担保し、重複時にこのエラーを返す。
var ErrEmailTaken = errors.New("email already taken")

// ErrUserNotFound は指定条件のユーザーが存在しないことを示す。
var ErrUserNotFound = errors.New("user not found")

// FormError はフォームに表示するユーザー向けエラーを表す。
// 原因カテゴリを含み、ハンドラーはMessageのみをそのまま画面に出す。
type FormError struct {
	Code     string // エラーコード
	Message  string // 画面に表示するメッセージ
	Category string // カテゴリ: validation, conflict, auth, system
}

// Error はerrorインターフェースを実装する。
func (e *FormError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeMissingFields      = "MISSING_FIELDS"
	ErrCodeInvalidEmail       = "INVALID_EMAIL"
	ErrCodeWeakPassword       = "WEAK_PASSWORD"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeBadCredentials     = "BAD_CREDENTIALS"
	ErrCodeRegistrationFailed = "REGISTRATION_FAILED"
	ErrCodeLoginFailed        = "LOGIN_FAILED"
)

// NewMissingFieldsError は必須項目が欠けている場合のエラーを生成する。
func NewMissingFieldsError() *FormError {
	return &FormError{
		Code:     ErrCodeMissingFields,
		Message:  "All fields are required",
		Category: "validation",
	}
}

// NewInvalidEmailError はメールアドレスの形式が不正な場合のエラーを生成する。
func NewInvalidEmailError() *FormError {
	return &FormError{
		Code:     ErrCodeInvalidEmail,
		Message:  "Please enter a valid email address",
		Category: "validation",
	}
}

// NewWeakPasswordError はパスワードポリシーを満たさない場合のエラーを生成する。
func NewWeakPasswordError() *FormError {
	return &FormError{
		Code:     ErrCodeWeakPassword,
		Message:  "Password must be at least 6 characters with uppercase, lowercase, and number",
		Category: "validation",
	}
}

// NewDuplicateEmailError はメールアドレスが登録済みの場合のエラーを生成する。
func NewDuplicateEmailError() *FormError {
	return &FormError{
		Code:     ErrCodeDuplicateEmail,
		Message:  "User with this email already exists",
		Category: "conflict",
	}
}

// NewBadCredentialsError は認証失敗時のエラーを生成する。
// メールアドレスの存在有無を区別させないため、原因によらず同一メッセージを返す。
func NewBadCredentialsError() *FormError {
	return &FormError{
		Code:     ErrCodeBadCredentials,
		Message:  "Invalid email or password",
		Category: "auth",
	}
}

// NewRegistrationFailedError は登録処理の内部エラーを生成する。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func NewRegistrationFailedError() *FormError {
	return &FormError{
		Code:     ErrCodeRegistrationFailed,
		Message:  "Registration failed. Please try again.",
		Category: "system",
	}
}

// NewLoginFailedError はログイン処理の内部エラーを生成する。
func NewLoginFailedError() *FormError {
	return &FormError{
		Code:     ErrCodeLoginFailed,
		Message:  "Login failed. Please try again.",
		Category: "system",
	}
}
