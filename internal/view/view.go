// Package view はHTMLテンプレートのレンダリングと静的アセットの配信を提供する。
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/hitoshi/gatehouse/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// ページテンプレートの一覧。起動時にすべてパースする。
var pages = []string{
	"register.page.html",
	"login.page.html",
	"dashboard.page.html",
	"notfound.page.html",
}

// PageData はテンプレートに渡すデータ。
type PageData struct {
	Title   string
	Error   string            // フォームエラーメッセージ（1件のみ）
	Success string            // 成功メッセージ
	Form    map[string]string // 再表示するフォーム入力値
	User    *model.User       // ダッシュボード表示用
}

var functions = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("02 Jan 2006")
	},
}

// Renderer はパース済みテンプレートを保持し、ページをレンダリングする。
type Renderer struct {
	templates map[string]*template.Template
}

// New は全ページテンプレートをパースしてRendererを生成する。
// テンプレートの構文エラーは起動時にここで検出される。
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))

	for _, page := range pages {
		ts, err := template.New(page).Funcs(functions).ParseFS(templatesFS,
			"templates/base.layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = ts
	}

	return &Renderer{templates: templates}, nil
}

// Render は指定ページをレンダリングしてレスポンスに書き込む。
// いったんバッファに描画してからステータスと本文を書き出すことで、
// レンダリング途中のエラーで中途半端なレスポンスが出るのを防ぐ。
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data *PageData) {
	ts, ok := r.templates[page]
	if !ok {
		slog.Error("unknown template", slog.String("page", page))
		http.Error(w, "Something went wrong!", http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = &PageData{}
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		slog.Error("failed to render template",
			slog.String("page", page),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Something went wrong!", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// StaticHandler は埋め込み静的アセットを配信するハンドラーを返す。
// /static/ プレフィックスで使用する。
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// embedの構成が壊れている場合のみ起こる
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
