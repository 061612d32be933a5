// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"context"
	"fmt"
	"net/http"
)

// contextKey はコンテキストに値を格納するための型安全なキー。
type contextKey string

// userIDContextKey はリクエストコンテキストにユーザーIDを格納するためのキー。
var userIDContextKey = contextKey("user_id")

// TokenVerifier はセッショントークンの検証に必要なインターフェース。
// auth.Serviceの部分集合として定義する。
type TokenVerifier interface {
	VerifyToken(token string) (int64, error)
}

// NewAuthMiddleware はCookieからセッショントークンを読み取り検証するミドルウェアを返す。
// 認証済みユーザーIDをリクエストコンテキストに注入する。
//
// 状態遷移は2つのみ:
//   - Cookieなし → /loginへリダイレクト（このリクエストはここで終了）
//   - Cookieあり → 検証。不正・期限切れならCookieを消して/loginへリダイレクト、
//     有効ならユーザーIDを注入して次のハンドラーへ進む。
//
// リクエストごとのステートレスな判定であり、サーバー側にセッション状態は持たない。
func NewAuthMiddleware(verifier TokenVerifier, cookieSecure bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 保護ページのキャッシュを禁止する
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")

			cookie, err := r.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			userID, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				// 期限切れか改ざんかは区別せず、Cookieを破棄してログインへ戻す
				ClearTokenCookie(w, cookieSecure)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext はリクエストコンテキストからユーザーIDを取得する。
// 認証ミドルウェアを通過したリクエストでのみ有効。
func UserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	if !ok || userID == 0 {
		return 0, fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// ContextWithUserID はコンテキストにユーザーIDを注入する。
// テストやミドルウェア以外のコンテキスト生成で使用する。
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}
