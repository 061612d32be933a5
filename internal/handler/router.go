package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/gatehouse/internal/metrics"
	"github.com/hitoshi/gatehouse/internal/middleware"
	"github.com/hitoshi/gatehouse/internal/view"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	AuthService   AuthServiceInterface
	UserService   UserServiceInterface
	TokenVerifier middleware.TokenVerifier
	Renderer      *view.Renderer
	Logger        *slog.Logger
	Metrics       *metrics.Collector
	Gatherer      prometheus.Gatherer

	CookieSecure bool
	TokenMaxAge  int // セッションCookieの有効期間（秒）
}

// NewRouter は全ルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → Logging → Metrics → SecurityHeaders
//
// 認証ミドルウェアは/dashboard配下にのみ適用する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	if deps.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	}
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}
	r.Use(middleware.NewSecurityHeadersMiddleware())

	// nilの*metrics.Collectorをそのままインターフェースに包むと
	// 非nilインターフェースになり、ハンドラー側のnilガードをすり抜ける
	var recorder AuthRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}

	authHandler := NewAuthHandler(deps.AuthService, deps.Renderer, recorder, AuthHandlerConfig{
		CookieSecure: deps.CookieSecure,
		TokenMaxAge:  deps.TokenMaxAge,
	})
	dashboardHandler := NewDashboardHandler(deps.UserService, deps.Renderer, deps.CookieSecure)

	// --- 認証不要のルート ---

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	})

	r.Get("/register", authHandler.ShowRegister)
	r.Post("/register", authHandler.Register)
	r.Get("/login", authHandler.ShowLogin)
	r.Post("/login", authHandler.Login)
	r.Post("/logout", authHandler.Logout)

	r.Get("/health", handleHealth)

	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	r.Handle("/static/*", view.StaticHandler())

	// --- 認証が必要なルート ---

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier, deps.CookieSecure))
		r.Get("/dashboard", dashboardHandler.Dashboard)
	})

	// 未定義のパスは404ページを返す
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		deps.Renderer.Render(w, http.StatusNotFound, "notfound.page.html", &view.PageData{
			Title: "Not Found",
		})
	})

	return r
}

// handleHealth はコンテナの死活監視用のヘルスチェックハンドラー。
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
