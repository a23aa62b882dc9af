package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/worktrack-backend/internal/config"
	"github.com/heartmarshall/worktrack-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Requests *RequestHandler
	Ledger   *LedgerHandler
	Reports  *ReportHandler
	Clients  *ClientHandler
	Activity *ActivityHandler
}

// RouterDeps holds the cross-cutting pieces of the HTTP stack.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter // nil disables limiting
	Auth        middleware.Middleware
}

// NewRouter mounts health probes at the root and the authenticated API
// under /api/v1.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		var limit middleware.Middleware
		if d.RateLimiter != nil {
			limit = d.RateLimiter.Limit()
		}
		r.Use(middleware.Chain(limit, d.Auth))

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", h.Requests.Create)
			r.Get("/", h.Requests.List)
			r.Patch("/status", h.Requests.UpdateStatuses)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Requests.Get)
				r.Patch("/", h.Requests.Update)
				r.Delete("/", h.Requests.Delete)
				r.Post("/clone", h.Requests.Clone)

				r.Post("/links", h.Requests.AddLink)
				r.Delete("/links/{linkID}", h.Requests.DeleteLink)

				r.Get("/comments", h.Requests.ListComments)
				r.Post("/comments", h.Requests.AddComment)
				r.Delete("/comments/{commentID}", h.Requests.DeleteComment)

				r.Get("/time-entries", h.Ledger.ListForRequest)
				r.Get("/time-total", h.Ledger.TotalFor)
			})
		})

		r.Post("/time-entries", h.Ledger.AddEntry)
		r.Delete("/time-entries/{id}", h.Ledger.DeleteEntry)

		r.Get("/reports/time", h.Reports.Time)

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", h.Clients.Create)
			r.Get("/", h.Clients.List)
			r.Get("/{id}", h.Clients.Get)
			r.Patch("/{id}", h.Clients.Update)
			r.Post("/{id}/links", h.Clients.AddLink)
			r.Delete("/{id}/links/{linkID}", h.Clients.DeleteLink)
		})

		r.Get("/activity", h.Activity.List)
	})

	return r
}
