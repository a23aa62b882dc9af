package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/activity"
)

type activityService interface {
	List(ctx context.Context, in activity.ListInput) (*activity.Page, error)
}

// ActivityHandler serves the activity log.
type ActivityHandler struct {
	svc activityService
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, log: logger.With("handler", "activity")}
}

// List handles GET /activity?page=&entity_type=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := queryInt(q, "page", 1)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	in := activity.ListInput{Page: page}
	if v := strings.TrimSpace(q.Get("entity_type")); v != "" {
		et := domain.EntityType(v)
		in.EntityType = &et
	}

	p, err := h.svc.List(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityPageResponse(p))
}
