package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/request"
)

type requestService interface {
	CreateRequest(ctx context.Context, input request.CreateRequestInput) (*domain.Request, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.Request, error)
	ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	UpdateRequest(ctx context.Context, input request.UpdateRequestInput) (*domain.Request, error)
	UpdateStatuses(ctx context.Context, input request.BulkStatusInput) (int, error)
	CloneRequest(ctx context.Context, input request.CloneRequestInput) (*domain.Request, error)
	DeleteRequest(ctx context.Context, requestID uuid.UUID) error
	AddLink(ctx context.Context, requestID uuid.UUID, input request.LinkInput) (*domain.Link, error)
	DeleteLink(ctx context.Context, requestID, linkID uuid.UUID) error
	AddComment(ctx context.Context, input request.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, requestID uuid.UUID) ([]domain.Comment, error)
	DeleteComment(ctx context.Context, requestID, commentID uuid.UUID) error
}

// RequestHandler serves the request, link and comment endpoints.
type RequestHandler struct {
	svc requestService
	log *slog.Logger
}

// NewRequestHandler creates a RequestHandler.
func NewRequestHandler(svc requestService, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{svc: svc, log: logger.With("handler", "request")}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := request.CreateRequestInput{
		Title:       body.Title,
		RequestType: domain.RequestType(body.RequestType),
		DueDate:     optionalDate(body.DueDate),
		AssignedTo:  body.AssignedTo,
		ClientID:    optionalUUID(body.ClientID),
		Details:     body.Details,
		Links:       toLinkInputs(body.Links),
		ImageURLs:   body.ImageURLs,
	}
	if body.Status != nil {
		st := domain.RequestStatus(*body.Status)
		input.Status = &st
	}

	req, err := h.svc.CreateRequest(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(req))
}

// List handles GET /requests.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domain.RequestFilter{Search: strings.TrimSpace(q.Get("search"))}
	for _, s := range queryList(q, "status") {
		filter.Statuses = append(filter.Statuses, domain.RequestStatus(s))
	}
	if v := strings.TrimSpace(q.Get("assigned_to")); v != "" {
		filter.AssignedTo = &v
	}

	var err error
	if filter.ClientID, err = queryUUID(q, "client_id"); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if filter.Limit, err = queryInt(q, "limit", 0); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if filter.Offset, err = queryInt(q, "offset", 0); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	reqs, err := h.svc.ListRequests(r.Context(), filter)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]requestResponse, len(reqs))
	for i := range reqs {
		out[i] = toRequestResponse(&reqs[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /requests/{id}.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	req, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// Update handles PATCH /requests/{id}.
func (h *RequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body updateRequestBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := request.UpdateRequestInput{
		RequestID:    id,
		Title:        body.Title,
		DueDate:      optionalDate(body.DueDate),
		ClearDueDate: body.ClearDueDate,
		AssignedTo:   body.AssignedTo,
		ClientID:     optionalUUID(body.ClientID),
		ClearClient:  body.ClearClient,
		Details:      body.Details,
		ImageURLs:    body.ImageURLs,
	}
	if body.RequestType != nil {
		t := domain.RequestType(*body.RequestType)
		input.RequestType = &t
	}
	if body.Status != nil {
		st := domain.RequestStatus(*body.Status)
		input.Status = &st
	}

	req, err := h.svc.UpdateRequest(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRequestResponse(req))
}

// UpdateStatuses handles PATCH /requests/status.
func (h *RequestHandler) UpdateStatuses(w http.ResponseWriter, r *http.Request) {
	var body bulkStatusBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	n, err := h.svc.UpdateStatuses(r.Context(), request.BulkStatusInput{
		RequestIDs: parseUUIDs(body.RequestIDs),
		Status:     domain.RequestStatus(body.Status),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": n})
}

// Clone handles POST /requests/{id}/clone.
func (h *RequestHandler) Clone(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body cloneRequestBody
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &body); err != nil {
			respondError(w, r, h.log, err)
			return
		}
	}

	req, err := h.svc.CloneRequest(r.Context(), request.CloneRequestInput{
		SourceID:          id,
		HasUnsavedChanges: body.HasUnsavedChanges,
		ExpectedUpdatedAt: body.ExpectedUpdatedAt,
		DueDate:           optionalDate(body.DueDate),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRequestResponse(req))
}

// Delete handles DELETE /requests/{id}.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteRequest(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddLink handles POST /requests/{id}/links.
func (h *RequestHandler) AddLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body linkBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	link, err := h.svc.AddLink(r.Context(), id, request.LinkInput(body))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// DeleteLink handles DELETE /requests/{id}/links/{linkID}.
func (h *RequestHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	linkID, err := pathUUID(r, "linkID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteLink(r.Context(), id, linkID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /requests/{id}/comments.
func (h *RequestHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	comments, err := h.svc.ListComments(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// AddComment handles POST /requests/{id}/comments.
func (h *RequestHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body commentBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.AddComment(r.Context(), request.AddCommentInput{RequestID: id, Text: body.Text})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(c))
}

// DeleteComment handles DELETE /requests/{id}/comments/{commentID}.
func (h *RequestHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	commentID, err := pathUUID(r, "commentID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteComment(r.Context(), id, commentID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toLinkInputs(links []linkBody) []request.LinkInput {
	if len(links) == 0 {
		return nil
	}
	out := make([]request.LinkInput, len(links))
	for i, l := range links {
		out[i] = request.LinkInput(l)
	}
	return out
}
