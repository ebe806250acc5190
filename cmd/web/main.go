package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/tomz197/bossrush/internal/config"
)

//go:embed index.html
var htmlPage string

func main() {
	settings, err := config.LoadFromEnv()
	logger := config.NewLogger(os.Stderr, "bossrush-web", settings.LogLevel)
	if err != nil {
		logger.Fatal("failed to load settings", "err", err)
	}

	addr := settings.WebAddr()
	logger.Info("starting web server", "addr", "http://"+addr)
	err = http.ListenAndServe(addr, newRouter(settings, logger))
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

// newRouter serves the landing page with connection instructions.
func newRouter(settings config.Settings, logger *log.Logger) *mux.Router {
	page := renderPage(settings)

	r := mux.NewRouter()
	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Debug("request", "method", req.Method, "path", req.URL.Path, "remote", req.RemoteAddr)
			next.ServeHTTP(w, req)
		})
	})
	return r
}

func renderPage(settings config.Settings) string {
	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", settings.Web.DisplayHost)
	return strings.ReplaceAll(page, "{{.SSHPort}}", settings.SSH.Port)
}
