package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/client"
)

type clientService interface {
	CreateClient(ctx context.Context, input client.CreateClientInput) (*domain.Client, error)
	UpdateClient(ctx context.Context, input client.UpdateClientInput) (*domain.Client, error)
	GetClient(ctx context.Context, clientID uuid.UUID) (*domain.Client, error)
	ListClients(ctx context.Context, search string) ([]domain.Client, error)
	AddLink(ctx context.Context, clientID uuid.UUID, input client.LinkInput) (*domain.Link, error)
	DeleteLink(ctx context.Context, clientID, linkID uuid.UUID) error
}

// ClientHandler serves the client endpoints.
type ClientHandler struct {
	svc clientService
	log *slog.Logger
}

// NewClientHandler creates a ClientHandler.
func NewClientHandler(svc clientService, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{svc: svc, log: logger.With("handler", "client")}
}

// Create handles POST /clients.
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createClientBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := client.CreateClientInput{
		Company:     body.Company,
		ContactName: body.ContactName,
		Email:       body.Email,
		Phone:       body.Phone,
		Address:     body.Address,
		Website:     body.Website,
		Notes:       body.Notes,
	}
	for _, l := range body.Links {
		input.Links = append(input.Links, client.LinkInput(l))
	}

	c, err := h.svc.CreateClient(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toClientResponse(c))
}

// List handles GET /clients.
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]clientResponse, len(clients))
	for i := range clients {
		out[i] = toClientResponse(&clients[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /clients/{id}.
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// Update handles PATCH /clients/{id}.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var body updateClientBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	c, err := h.svc.UpdateClient(r.Context(), client.UpdateClientInput{
		ClientID:    id,
		Company:     body.Company,
		ContactName: body.ContactName,
		Email:       body.Email,
		Phone:       body.Phone,
		Address:     body.Address,
		Website:     body.Website,
		Notes:       body.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toClientResponse(c))
}

// AddLink handles POST /clients/{id}/links.
func (h *ClientHandler) AddLink(w http.ResponseWriter, r *http.Request) {
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
	link, err := h.svc.AddLink(r.Context(), id, client.LinkInput(body))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// DeleteLink handles DELETE /clients/{id}/links/{linkID}.
func (h *ClientHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
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
