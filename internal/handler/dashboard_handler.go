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

// UserServiceInterface はダッシュボードハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// UserByID は指定IDのユーザーを取得する。
	// 見つからない場合はmodel.ErrUserNotFoundを返す。
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// DashboardHandler は認証済みユーザー向けページのHTTPハンドラー。
type DashboardHandler struct {
	service      UserServiceInterface
	renderer     *view.Renderer
	cookieSecure bool
}

// NewDashboardHandler はDashboardHandlerを生成する。
func NewDashboardHandler(service UserServiceInterface, renderer *view.Renderer, cookieSecure bool) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		renderer:     renderer,
		cookieSecure: cookieSecure,
	}
}

// Dashboard はユーザーのプロフィールページを表示する。
// GET /dashboard（認証ミドルウェアの内側）
// トークンは有効でもユーザーが解決できない場合（ストア初期化後など）は
// Cookieを破棄してログイン画面へ戻す。
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		// ミドルウェアを通らずに到達することはない想定
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.service.UserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			middleware.ClearTokenCookie(w, h.cookieSecure)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		slog.Error("failed to load user for dashboard",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Something went wrong!", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "dashboard.page.html", &view.PageData{
		Title: "Dashboard",
		User:  user,
	})
}
