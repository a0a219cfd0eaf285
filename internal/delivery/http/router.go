package http

import (
	"io/fs"
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mergingtonactivities/internal/delivery/http/controllers"
	"mergingtonactivities/internal/delivery/http/helpers"
	"mergingtonactivities/internal/delivery/http/middleware"
)

// landingPage is where GET / redirects.
const landingPage = "/static/index.html"

// NewRouter initializes the HTTP router with all application routes
func NewRouter(activityController *controllers.ActivityController, static fs.FS, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Landing page
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, landingPage, http.StatusTemporaryRedirect)
	})
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	// Activities
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("GET /activities/{activityName}", activityController.GetActivity)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.Signup)
	mux.HandleFunc("GET /activities/{activityName}/signups", activityController.ListSignups)
	mux.HandleFunc("GET /activities/{activityName}/roster", activityController.GetRoster)
	mux.HandleFunc("GET /activities/{activityName}/{projection}", activityController.GetProjection)

	// Operations
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", metricsHandler)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the middleware chain.
// Metrics must see the same *http.Request the mux matches against to read r.Pattern.
func NewHandler(router http.Handler, logger *slog.Logger, obs middleware.RequestObserver, allowedOrigins []string) http.Handler {
	h := middleware.CORS(allowedOrigins, router)
	h = middleware.Metrics(obs, h)
	h = middleware.LoggingMiddleware(logger, h)
	return middleware.RequestID(h)
}
