package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/service"
)

// LandingPath задаёт статическую страницу, на которую перенаправляется корень.
const LandingPath = "/static/index.html"

//go:generate mockery --name=ActivityService --output=mocks --outpkg=mocks

// ActivityService описывает операции сервиса активностей, нужные HTTP-слою.
type ActivityService interface {
	ListActivities(ctx context.Context) (model.Catalog, error)
	Signup(ctx context.Context, activityName, email string) (model.SignupResult, error)
	Unregister(ctx context.Context, activityName, email string) (model.SignupResult, error)
}

// Options задаёт параметры роутера, не относящиеся к бизнес-логике.
type Options struct {
	StaticDir          string
	CORSAllowedOrigins []string
}

type Handler struct {
	Activities ActivityService
	Log        *slog.Logger
	Opts       Options
}

func NewHandler(activities ActivityService, log *slog.Logger, opts Options) *Handler {
	return &Handler{
		Activities: activities,
		Log:        log,
		Opts:       opts,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.Log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.Opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/", h.handleRoot)
	r.Get("/health", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	if h.Opts.StaticDir != "" {
		// FileServer отвечает 301 на .../index.html, поэтому лендинг отдаётся явно
		r.Get(LandingPath, h.handleLanding)
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(h.Opts.StaticDir))))
	}

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.handleActivitiesList)
		r.Post("/{activity_name}/signup", h.handleSignup)
		r.Delete("/{activity_name}/unregister", h.handleUnregister)
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	if appErr.Status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.Log.Log(r.Context(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	resp := errorResponse{Detail: appErr.Message}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	writeJSON(w, appErr.Status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, LandingPath, http.StatusTemporaryRedirect)
}

func (h *Handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	f, err := os.Open(filepath.Join(h.Opts.StaticDir, "index.html"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
