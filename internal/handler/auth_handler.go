// Package handler はHTTPハンドラーを提供する。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/gatehouse/internal/middleware"
	"github.com/hitoshi/gatehouse/internal/model"
	"github.com/hitoshi/gatehouse/internal/view"
)

// AuthServiceInterface は認証ハンドラーが必要とするサービスインターフェース。
type AuthServiceInterface interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandlerConfig は認証ハンドラーの設定。
type AuthHandlerConfig struct {
	CookieSecure bool
	TokenMaxAge  int // セッションCookieの有効期間（秒）
}

// AuthRecorder は認証イベントのメトリクス記録インターフェース。
// metrics.Recorderの別名だが、ハンドラーが必要とする分だけをここで定義する。
type AuthRecorder interface {
	RecordRegistration()
	RecordLogin()
}

// AuthHandler は登録・ログイン・ログアウトのHTTPハンドラー。
type AuthHandler struct {
	service  AuthServiceInterface
	renderer *view.Renderer
	recorder AuthRecorder
	config   AuthHandlerConfig
}

// NewAuthHandler はAuthHandlerを生成する。recorderはnil可。
func NewAuthHandler(service AuthServiceInterface, renderer *view.Renderer, recorder AuthRecorder, config AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		service:  service,
		renderer: renderer,
		recorder: recorder,
		config:   config,
	}
}

// ShowRegister は登録フォームを表示する。
// GET /register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "register.page.html", &view.PageData{
		Title: "Register",
	})
}

// Register は新規ユーザーを登録する。
// POST /register
// 検証失敗時は同じフォームをエラーメッセージ付きで再表示し、状態は変更しない。
// 成功時は成功メッセージを表示する（自動ログインはしない）。
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	form := decodeRegisterForm(r)

	_, err := h.service.Register(r.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		h.renderer.Render(w, http.StatusOK, "register.page.html", &view.PageData{
			Title: "Register",
			Error: formMessage(err),
			Form: map[string]string{
				"name":  form.Name,
				"email": form.Email,
			},
		})
		return
	}

	if h.recorder != nil {
		h.recorder.RecordRegistration()
	}

	h.renderer.Render(w, http.StatusOK, "register.page.html", &view.PageData{
		Title:   "Register",
		Success: "Registration successful! Please login.",
	})
}

// ShowLogin はログインフォームを表示する。
// GET /login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "login.page.html", &view.PageData{
		Title: "Login",
	})
}

// Login は資格情報を検証し、セッションCookieを設定してダッシュボードへ遷移させる。
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form := decodeLoginForm(r)

	token, err := h.service.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		h.renderer.Render(w, http.StatusOK, "login.page.html", &view.PageData{
			Title: "Login",
			Error: formMessage(err),
			Form: map[string]string{
				"email": form.Email,
			},
		})
		return
	}

	if h.recorder != nil {
		h.recorder.RecordLogin()
	}

	middleware.SetTokenCookie(w, token, h.config.TokenMaxAge, h.config.CookieSecure)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// Logout はセッションCookieを無条件に削除してログイン画面へ戻す。
// POST /logout
// トークン自体の無効化は行わないため、発行済みトークンは自然失効まで有効なまま。
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearTokenCookie(w, h.config.CookieSecure)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// formMessage はサービス層のエラーから画面表示用メッセージを取り出す。
// 想定外のエラー型はログに残し、汎用メッセージに落とす。
func formMessage(err error) string {
	var formErr *model.FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	slog.Error("unexpected service error", slog.String("error", err.Error()))
	return "Something went wrong. Please try again."
}
