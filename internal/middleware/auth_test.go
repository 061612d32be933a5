package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

var errVerifyFailed = errors.New("verify failed")

// --- モック定義 ---

type mockTokenVerifier struct {
	verifyFn func(token string) (int64, error)
}

func (m *mockTokenVerifier) VerifyToken(token string) (int64, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return 0, nil
}

// --- テスト ---

func TestAuthMiddleware_ValidToken_InjectsUserID(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(token string) (int64, error) {
			if token == "valid-token" {
				return 42, nil
			}
			return 0, errVerifyFailed
		},
	}

	mw := NewAuthMiddleware(verifier, false)

	var capturedUserID int64
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := UserIDFromContext(r.Context())
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		capturedUserID = userID
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "valid-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if capturedUserID != 42 {
		t.Errorf("userID = %d, want %d", capturedUserID, 42)
	}
}

func TestAuthMiddleware_NoCookie_RedirectsToLogin(t *testing.T) {
	verifier := &mockTokenVerifier{}
	mw := NewAuthMiddleware(verifier, false)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}
}

func TestAuthMiddleware_EmptyCookie_RedirectsToLogin(t *testing.T) {
	verifier := &mockTokenVerifier{}
	mw := NewAuthMiddleware(verifier, false)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: ""})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
}

func TestAuthMiddleware_InvalidToken_ClearsCookieAndRedirects(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(token string) (int64, error) {
			return 0, errVerifyFailed
		},
	}
	mw := NewAuthMiddleware(verifier, false)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be called")
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "tampered-token"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want %q", loc, "/login")
	}

	// 無効なCookieは破棄される
	cleared := false
	for _, c := range resp.Cookies() {
		if c.Name == TokenCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("invalid token cookie should be cleared")
	}
}

func TestAuthMiddleware_SetsNoStoreCacheControl(t *testing.T) {
	verifier := &mockTokenVerifier{
		verifyFn: func(token string) (int64, error) { return 1, nil },
	}
	mw := NewAuthMiddleware(verifier, false)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "valid"})
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if cc := w.Result().Header.Get("Cache-Control"); cc == "" {
		t.Error("protected responses should carry a Cache-Control header")
	}
}

func TestUserIDFromContext_MissingUserID_ReturnsError(t *testing.T) {
	if _, err := UserIDFromContext(context.Background()); err == nil {
		t.Error("expected error for a context without a user ID")
	}
}

func TestContextWithUserID_RoundTrip(t *testing.T) {
	ctx := ContextWithUserID(context.Background(), 7)
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("UserIDFromContext() error = %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want %d", userID, 7)
	}
}
