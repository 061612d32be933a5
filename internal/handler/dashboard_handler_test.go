package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hitoshi/gatehouse/internal/middleware"
	"github.com/hitoshi/gatehouse/internal/model"
)

// --- モック定義 ---

type mockUserService struct {
	userByIDFn func(ctx context.Context, id int64) (*model.User, error)
}

func (m *mockUserService) UserByID(ctx context.Context, id int64) (*model.User, error) {
	if m.userByIDFn != nil {
		return m.userByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

// --- テスト ---

func TestDashboardHandler_RendersUserProfile(t *testing.T) {
	service := &mockUserService{
		userByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{
				ID:        id,
				Name:      "Taro",
				Email:     "taro@example.com",
				CreatedAt: time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewDashboardHandler(service, newTestRenderer(t), false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	h.Dashboard(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Taro") {
		t.Error("dashboard should show the user name")
	}
	if !strings.Contains(body, "taro@example.com") {
		t.Error("dashboard should show the user email")
	}
	if !strings.Contains(body, "15 Mar 2026") {
		t.Error("dashboard should show the formatted registration date")
	}
}

func TestDashboardHandler_UserNotFound_ClearsCookieAndRedirects(t *testing.T) {
	service := &mockUserService{
		userByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, model.ErrUserNotFound
		},
	}
	h := NewDashboardHandler(service, newTestRenderer(t), false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 999))
	w := httptest.NewRecorder()

	h.Dashboard(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}

	// 有効なトークンでもユーザーが消えていればCookieは破棄する
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == middleware.TokenCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("stale session cookie should be cleared")
	}
}

func TestDashboardHandler_ServiceError_Returns500(t *testing.T) {
	service := &mockUserService{
		userByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return nil, errors.New("store unavailable")
		},
	}
	h := NewDashboardHandler(service, newTestRenderer(t), false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), 1))
	w := httptest.NewRecorder()

	h.Dashboard(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestDashboardHandler_NoUserIDInContext_RedirectsToLogin(t *testing.T) {
	h := NewDashboardHandler(&mockUserService{}, newTestRenderer(t), false)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	h.Dashboard(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}
}
