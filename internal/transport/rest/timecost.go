package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/ledger"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

type ledgerService interface {
	AddEntry(ctx context.Context, input ledger.AddEntryInput) (*domain.TimeCostEntry, error)
	DeleteEntry(ctx context.Context, entryID uuid.UUID) error
	TotalFor(ctx context.Context, requestID uuid.UUID) (decimal.Decimal, error)
	ListForRequest(ctx context.Context, requestID uuid.UUID) ([]domain.TimeCostEntry, error)
}

// LedgerHandler serves the time entry endpoints.
type LedgerHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewLedgerHandler creates a LedgerHandler.
func NewLedgerHandler(svc ledgerService, logger *slog.Logger) *LedgerHandler {
	return &LedgerHandler{svc: svc, log: logger.With("handler", "ledger")}
}

// AddEntry handles POST /time-entries. The entry is logged for the caller
// unless userId names someone else.
func (h *LedgerHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var body addEntryBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	if id := optionalUUID(body.UserID); id != nil {
		userID = *id
	}
	var date time.Time
	if d := optionalDate(&body.Date); d != nil {
		date = *d
	}
	requestID, _ := uuid.Parse(body.RequestID)

	entry, err := h.svc.AddEntry(r.Context(), ledger.AddEntryInput{
		RequestID: requestID,
		UserID:    userID,
		Date:      date,
		Hours:     body.Hours.String(),
		Notes:     body.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTimeEntryResponse(entry))
}

// DeleteEntry handles DELETE /time-entries/{id}.
func (h *LedgerHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteEntry(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListForRequest handles GET /requests/{id}/time-entries.
func (h *LedgerHandler) ListForRequest(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	entries, err := h.svc.ListForRequest(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]timeEntryResponse, len(entries))
	for i := range entries {
		out[i] = toTimeEntryResponse(&entries[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// TotalFor handles GET /requests/{id}/time-total.
func (h *LedgerHandler) TotalFor(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	total, err := h.svc.TotalFor(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, timeTotalResponse{RequestID: id, TotalHours: total})
}
