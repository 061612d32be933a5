// Package config は環境変数から設定を読み込み、アプリケーション全体で使用する設定を提供する。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvProduction はAPP_ENVに設定する本番環境の値。
// 本番環境ではセッションCookieにSecure属性が付与される。
const EnvProduction = "production"

// minTokenSecretLength はトークン署名鍵に要求する最小バイト数。
// これより短い鍵は総当たりに弱いため起動を拒否する。
const minTokenSecretLength = 32

// Config はアプリケーション全体の設定を保持する。
// 環境変数から起動時に1回読み込み、イミュータブルとして扱う。
type Config struct {
	// Server
	ServerPort string
	AppEnv     string

	// Token
	TokenSecret string
	TokenTTL    time.Duration

	// Password hashing
	BcryptCost int

	// Database（空文字の場合はインメモリストアを使用する）
	DatabaseURL string
}

// Load は環境変数からConfigを読み込む。
// カレントディレクトリに.envがあれば先に読み込む（既存の環境変数は上書きしない）。
// TOKEN_SECRETが未設定または弱い場合はエラーを返す。
func Load() (*Config, error) {
	// .envは開発用の補助なので、存在しなくてもエラーにしない
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("required environment variable is not set: TOKEN_SECRET")
	}
	if len(cfg.TokenSecret) < minTokenSecretLength {
		return nil, fmt.Errorf("TOKEN_SECRET must be at least %d bytes, got %d", minTokenSecretLength, len(cfg.TokenSecret))
	}

	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.AppEnv = getEnvString("APP_ENV", "development")
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)
	cfg.BcryptCost = getEnvInt("BCRYPT_COST", 12)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	return cfg, nil
}

// IsProduction は本番環境向けの動作（Secure Cookie等）を有効にすべきかを返す。
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
