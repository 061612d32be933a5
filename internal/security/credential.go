// Package security は資格情報のポリシー検証を提供する。
package security

import (
	"regexp"
	"strings"
)

// emailPattern は最小限のメールアドレス形式。
// RFC準拠の完全な検証はせず、「何か@何か.何か」の形だけを見る。
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordCharset はパスワードに使用できる文字の全体集合。
// 記号集合は旧システムから引き継いだもので、これ以外の文字を含む
// パスワードは他の条件を満たしていても拒否する。
var passwordCharset = regexp.MustCompile(`^[a-zA-Z0-9@$!%*?&]{6,}$`)

// ValidEmail はメールアドレスが最小限の形式を満たすかを返す。
// 登録とログインの両方で同一の判定を使う。
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPassword はパスワードがポリシーを満たすかを返す。
// 条件: 6文字以上、小文字・大文字・数字を各1文字以上含み、
// かつ全体が許可された文字集合のみで構成されること。
func ValidPassword(s string) bool {
	if !passwordCharset.MatchString(s) {
		return false
	}
	return strings.ContainsFunc(s, isLower) &&
		strings.ContainsFunc(s, isUpper) &&
		strings.ContainsFunc(s, isDigit)
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
