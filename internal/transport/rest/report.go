package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/report"
)

type reportService interface {
	BuildReport(ctx context.Context, in report.Input) (*domain.Report, error)
	DefaultRange(kind domain.GroupKind) domain.DateRange
}

// ReportHandler serves time reports.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

// Time handles GET /reports/time.
//
// Query: start, end (YYYY-MM-DD), at most one of user_id and client_id,
// sort (date|requestNumber), dir (asc|desc), mode (entries|aggregated).
// A missing bound is taken from the default range of the group.
func (h *ReportHandler) Time(w http.ResponseWriter, r *http.Request) {
	in, err := h.parseInput(r)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	rep, err := h.svc.BuildReport(r.Context(), in)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(rep))
}

func (h *ReportHandler) parseInput(r *http.Request) (report.Input, error) {
	q := r.URL.Query()

	userID, err := queryUUID(q, "user_id")
	if err != nil {
		return report.Input{}, err
	}
	clientID, err := queryUUID(q, "client_id")
	if err != nil {
		return report.Input{}, err
	}

	group := report.Group{GroupFilter: domain.AllGroups()}
	switch {
	case userID != nil && clientID != nil:
		return report.Input{}, domain.NewValidationError("group", "pass user_id or client_id, not both")
	case userID != nil:
		group = report.Group{GroupFilter: domain.ForUser(*userID)}
	case clientID != nil:
		group = report.Group{GroupFilter: domain.ForClient(*clientID)}
	}

	start, err := queryDate(q, "start")
	if err != nil {
		return report.Input{}, err
	}
	end, err := queryDate(q, "end")
	if err != nil {
		return report.Input{}, err
	}
	rng := h.svc.DefaultRange(group.Kind)
	if start != nil {
		rng.Start = *start
	}
	if end != nil {
		rng.End = *end
	}

	return report.Input{
		Range:     rng,
		Group:     group,
		Sort:      domain.ReportSortField(q.Get("sort")),
		Direction: domain.SortDirection(q.Get("dir")),
		Mode:      domain.ReportMode(q.Get("mode")),
	}, nil
}
