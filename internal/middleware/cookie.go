package middleware

import "net/http"

// TokenCookieName はセッショントークンを保持するCookie名。
const TokenCookieName = "token"

// SetTokenCookie はセッショントークンのCookieを設定する。
// HttpOnlyとSameSite=Strictを常に付与し、secureが真の場合はSecureも付与する。
// maxAgeは秒数で指定する。
func SetTokenCookie(w http.ResponseWriter, token string, maxAge int, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearTokenCookie はセッショントークンのCookieを削除する。
// トークン自体は自然失効までサーバー側では無効化されない（この設計の既知の制約）。
func ClearTokenCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}
