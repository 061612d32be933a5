package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// registerForm は登録フォームの入力値。
type registerForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginForm はログインフォームの入力値。
type loginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// isJSONRequest はリクエストボディがJSONかどうかを判定する。
func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// decodeRegisterForm はフォームまたはJSONボディから登録入力を読み取る。
// デコード不能なボディは空の入力として扱い、後段の必須項目チェックに落とす。
func decodeRegisterForm(r *http.Request) registerForm {
	var form registerForm
	if isJSONRequest(r) {
		_ = json.NewDecoder(r.Body).Decode(&form)
		return form
	}
	_ = r.ParseForm()
	form.Name = r.PostFormValue("name")
	form.Email = r.PostFormValue("email")
	form.Password = r.PostFormValue("password")
	return form
}

// decodeLoginForm はフォームまたはJSONボディからログイン入力を読み取る。
func decodeLoginForm(r *http.Request) loginForm {
	var form loginForm
	if isJSONRequest(r) {
		_ = json.NewDecoder(r.Body).Decode(&form)
		return form
	}
	_ = r.ParseForm()
	form.Email = r.PostFormValue("email")
	form.Password = r.PostFormValue("password")
	return form
}
