package rest

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/service/activity"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type linkBody struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Comments string `json:"comments"`
}

type createRequestBody struct {
	Title       string     `json:"title"`
	RequestType string     `json:"requestType"`
	Status      *string    `json:"status"`
	DueDate     *string    `json:"dueDate"    validate:"omitempty,datetime=2006-01-02"`
	AssignedTo  *string    `json:"assignedTo"`
	ClientID    *string    `json:"clientId"   validate:"omitempty,uuid"`
	Details     string     `json:"details"`
	Links       []linkBody `json:"links"      validate:"max=50"`
	ImageURLs   []string   `json:"imageUrls"  validate:"max=20"`
}

type updateRequestBody struct {
	Title        *string  `json:"title"`
	RequestType  *string  `json:"requestType"`
	Status       *string  `json:"status"`
	DueDate      *string  `json:"dueDate"   validate:"omitempty,datetime=2006-01-02"`
	ClearDueDate bool     `json:"clearDueDate"`
	AssignedTo   *string  `json:"assignedTo"`
	ClientID     *string  `json:"clientId"  validate:"omitempty,uuid"`
	ClearClient  bool     `json:"clearClient"`
	Details      *string  `json:"details"`
	ImageURLs    []string `json:"imageUrls" validate:"max=20"`
}

type cloneRequestBody struct {
	HasUnsavedChanges bool       `json:"hasUnsavedChanges"`
	ExpectedUpdatedAt *time.Time `json:"expectedUpdatedAt"`
	DueDate           *string    `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
}

type bulkStatusBody struct {
	RequestIDs []string `json:"requestIds" validate:"required,min=1,dive,uuid"`
	Status     string   `json:"status"     validate:"required"`
}

type commentBody struct {
	Text string `json:"text"`
}

type requestResponse struct {
	ID            uuid.UUID     `json:"id"`
	RequestNumber string        `json:"requestNumber"`
	Title         string        `json:"title"`
	RequestType   string        `json:"requestType"`
	Status        string        `json:"status"`
	DueDate       *string       `json:"dueDate"`
	AssignedTo    *string       `json:"assignedTo"`
	ClientID      *uuid.UUID    `json:"clientId"`
	Details       string        `json:"details"`
	Links         []domain.Link `json:"links"`
	ImageURLs     []string      `json:"imageUrls"`
	CreatedBy     uuid.UUID     `json:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func toRequestResponse(r *domain.Request) requestResponse {
	return requestResponse{
		ID:            r.ID,
		RequestNumber: r.RequestNumber,
		Title:         r.Title,
		RequestType:   string(r.RequestType),
		Status:        string(r.Status),
		DueDate:       formatDate(r.DueDate),
		AssignedTo:    r.AssignedTo,
		ClientID:      r.ClientID,
		Details:       r.Details,
		Links:         nonNil(r.Links),
		ImageURLs:     nonNil(r.ImageURLs),
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	RequestID  uuid.UUID `json:"requestId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		RequestID:  c.RequestID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Time ledger
// ---------------------------------------------------------------------------

type addEntryBody struct {
	RequestID string      `json:"requestId" validate:"required,uuid"`
	UserID    *string     `json:"userId"    validate:"omitempty,uuid"`
	Date      string      `json:"date"      validate:"required,datetime=2006-01-02"`
	Hours     json.Number `json:"hours"`
	Notes     string      `json:"notes"`
}

type timeEntryResponse struct {
	ID        uuid.UUID       `json:"id"`
	RequestID uuid.UUID       `json:"requestId"`
	UserID    uuid.UUID       `json:"userId"`
	UserName  string          `json:"userName"`
	Date      string          `json:"date"`
	Hours     decimal.Decimal `json:"hours"`
	Notes     string          `json:"notes"`
	CreatedAt time.Time       `json:"createdAt"`
}

func toTimeEntryResponse(e *domain.TimeCostEntry) timeEntryResponse {
	return timeEntryResponse{
		ID:        e.ID,
		RequestID: e.RequestID,
		UserID:    e.UserID,
		UserName:  e.UserName,
		Date:      e.Date.Format(domain.DateLayout),
		Hours:     e.Hours,
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt,
	}
}

type timeTotalResponse struct {
	RequestID  uuid.UUID       `json:"requestId"`
	TotalHours decimal.Decimal `json:"totalHours"`
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

type reportRowResponse struct {
	EntryID       uuid.UUID       `json:"entryId"`
	RequestID     uuid.UUID       `json:"requestId"`
	RequestNumber string          `json:"requestNumber"`
	RequestTitle  string          `json:"requestTitle"`
	UserID        uuid.UUID       `json:"userId"`
	TeamMember    string          `json:"teamMember"`
	ClientID      *uuid.UUID      `json:"clientId"`
	Client        string          `json:"client"`
	HoursSpent    decimal.Decimal `json:"hoursSpent"`
	Date          string          `json:"date"`
	Notes         string          `json:"notes"`
}

type aggregatedRowResponse struct {
	RequestID     uuid.UUID       `json:"requestId"`
	RequestNumber string          `json:"requestNumber"`
	RequestTitle  string          `json:"requestTitle"`
	UserID        uuid.UUID       `json:"userId"`
	TeamMember    string          `json:"teamMember"`
	ClientID      *uuid.UUID      `json:"clientId"`
	Client        string          `json:"client"`
	HoursSpent    decimal.Decimal `json:"hoursSpent"`
	EntryCount    int             `json:"entryCount"`
	Notes         string          `json:"notes"`
}

type reportResponse struct {
	Start      string                  `json:"start"`
	End        string                  `json:"end"`
	Group      string                  `json:"group"`
	GroupID    *uuid.UUID              `json:"groupId,omitempty"`
	Mode       string                  `json:"mode"`
	Rows       []reportRowResponse     `json:"rows,omitempty"`
	Aggregated []aggregatedRowResponse `json:"aggregated,omitempty"`
	TotalHours decimal.Decimal         `json:"totalHours"`
}

func toReportResponse(rep *domain.Report) reportResponse {
	resp := reportResponse{
		Start:      rep.Range.Start.Format(domain.DateLayout),
		End:        rep.Range.End.Format(domain.DateLayout),
		Group:      string(rep.Group.Kind),
		Mode:       string(rep.Mode),
		TotalHours: rep.TotalHours,
	}
	if rep.Group.Kind != domain.GroupAll {
		id := rep.Group.ID
		resp.GroupID = &id
	}
	if rep.Mode == domain.ReportModeAggregated {
		resp.Aggregated = make([]aggregatedRowResponse, len(rep.Aggregated))
		for i, a := range rep.Aggregated {
			resp.Aggregated[i] = aggregatedRowResponse(a)
		}
		return resp
	}
	resp.Rows = make([]reportRowResponse, len(rep.Rows))
	for i, row := range rep.Rows {
		resp.Rows[i] = reportRowResponse{
			EntryID:       row.EntryID,
			RequestID:     row.RequestID,
			RequestNumber: row.RequestNumber,
			RequestTitle:  row.RequestTitle,
			UserID:        row.UserID,
			TeamMember:    row.TeamMember,
			ClientID:      row.ClientID,
			Client:        row.Client,
			HoursSpent:    row.HoursSpent,
			Date:          row.Date.Format(domain.DateLayout),
			Notes:         row.Notes,
		}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Clients
// ---------------------------------------------------------------------------

type createClientBody struct {
	Company     string     `json:"company"`
	ContactName string     `json:"contactName"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
	Website     string     `json:"website"`
	Notes       string     `json:"notes"`
	Links       []linkBody `json:"links" validate:"max=50"`
}

type updateClientBody struct {
	Company     *string `json:"company"`
	ContactName *string `json:"contactName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Website     *string `json:"website"`
	Notes       *string `json:"notes"`
}

type clientResponse struct {
	ID          uuid.UUID     `json:"id"`
	Company     string        `json:"company"`
	ContactName string        `json:"contactName"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	Address     string        `json:"address"`
	Website     string        `json:"website"`
	Notes       string        `json:"notes"`
	Links       []domain.Link `json:"links"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:          c.ID,
		Company:     c.Company,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Address:     c.Address,
		Website:     c.Website,
		Notes:       c.Notes,
		Links:       nonNil(c.Links),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Activity
// ---------------------------------------------------------------------------

type activityRecordResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	UserName   string         `json:"userName"`
	Action     string         `json:"action"`
	EntityType string         `json:"entityType"`
	EntityID   *uuid.UUID     `json:"entityId"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type activityPageResponse struct {
	Records    []activityRecordResponse `json:"records"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"pageSize"`
	Total      int                      `json:"total"`
	TotalPages int                      `json:"totalPages"`
}

func toActivityPageResponse(p *activity.Page) activityPageResponse {
	resp := activityPageResponse{
		Records:    make([]activityRecordResponse, len(p.Records)),
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
	for i, rec := range p.Records {
		changes := rec.Changes
		if changes == nil {
			changes = map[string]any{}
		}
		resp.Records[i] = activityRecordResponse{
			ID:         rec.ID,
			UserID:     rec.UserID,
			UserName:   rec.UserName,
			Action:     string(rec.Action),
			EntityType: string(rec.EntityType),
			EntityID:   rec.EntityID,
			Changes:    changes,
			CreatedAt:  rec.CreatedAt,
		}
	}
	return resp
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
