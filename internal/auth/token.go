package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken はトークン検証に失敗したことを示す。
// 署名不正・形式不正・期限切れのいずれであっても同じエラーを返し、
// 呼び出し側が失敗理由を外部に区別して見せられないようにする。
var ErrInvalidToken = errors.New("invalid token")

// Claims はセッショントークンに埋め込む情報。
// 標準クレームに加えてユーザーIDのみを持つ。
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"userId"`
}

// TokenIssuer は共有秘密鍵によるセッショントークンの発行と検証を行う。
// トークンは自己完結型で、サーバー側に状態を持たない。
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer はTokenIssuerを生成する。
// ttlは発行するトークンの有効期間を指定する。
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue は指定ユーザーIDのHS256署名付きトークンを発行する。
// 有効期限は発行時点からttl後に設定する。
func (i *TokenIssuer) Issue(userID int64) (string, error) {
	return i.issueAt(userID, time.Now())
}

// issueAt は発行時刻を指定してトークンを生成する。期限切れトークンのテスト用。
func (i *TokenIssuer) issueAt(userID int64, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// Verify はトークンの署名と有効期限を検証し、ユーザーIDを返す。
// 失敗時は理由によらずErrInvalidTokenを返す。
func (i *TokenIssuer) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}
