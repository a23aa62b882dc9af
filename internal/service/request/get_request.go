package request

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

// GetRequest returns a request by id.
func (s *Service) GetRequest(ctx context.Context, requestID uuid.UUID) (*domain.Request, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}
	return s.requests.GetByID(ctx, requestID)
}

// ListRequests returns requests matching filter, newest first.
func (s *Service) ListRequests(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error) {
	if _, err := actorFromCtx(ctx); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	for _, st := range filter.Statuses {
		if !st.IsValid() {
			errs = append(errs, domain.FieldError{Field: "status", Message: fmt.Sprintf("unknown status %q", st)})
			break
		}
	}
	if filter.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	}
	if filter.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if filter.AssignedTo != nil {
		if err := assigneeError(filter.AssignedTo); err != nil {
			errs = append(errs, domain.FieldError{Field: "assigned_to", Message: err.Error()})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	return s.requests.List(ctx, filter)
}
