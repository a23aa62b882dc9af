package request

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
	"github.com/heartmarshall/worktrack-backend/internal/notify"
	"github.com/heartmarshall/worktrack-backend/pkg/ctxutil"
)

type requestRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Request, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.Request, error)
	Create(ctx context.Context, req *domain.Request) error
	Update(ctx context.Context, req *domain.Request) error
	SetStatuses(ctx context.Context, ids []uuid.UUID, status domain.RequestStatus, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]domain.Comment, error)
	GetByID(ctx context.Context, requestID, commentID uuid.UUID) (*domain.Comment, error)
	Delete(ctx context.Context, requestID, commentID uuid.UUID) error
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type numberAllocator interface {
	Next(ctx context.Context) (string, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type assignmentNotifier interface {
	NotifyAssignment(ctx context.Context, a notify.Assignment)
}

// Service owns the Request aggregate: its number, fields, status, links
// and comments.
type Service struct {
	requests  requestRepo
	comments  commentRepo
	profiles  profileRepo
	numbers   numberAllocator
	audit     auditLogger
	tx        txManager
	notifier  assignmentNotifier
	sanitizer *bluemonday.Policy
	now       func() time.Time
	log       *slog.Logger
}

// NewService creates a new Request service.
func NewService(
	log *slog.Logger,
	requests requestRepo,
	comments commentRepo,
	profiles profileRepo,
	numbers numberAllocator,
	audit auditLogger,
	tx txManager,
	notifier assignmentNotifier,
) *Service {
	return &Service{
		requests:  requests,
		comments:  comments,
		profiles:  profiles,
		numbers:   numbers,
		audit:     audit,
		tx:        tx,
		notifier:  notifier,
		sanitizer: bluemonday.UGCPolicy(),
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		log:       log.With("service", "request"),
	}
}

type actor struct {
	id   uuid.UUID
	name string
}

func actorFromCtx(ctx context.Context) (actor, error) {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return actor{}, domain.ErrUnauthorized
	}
	return actor{id: id, name: ctxutil.UserNameFromCtx(ctx)}, nil
}

func (a actor) record(entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) domain.AuditRecord {
	return domain.AuditRecord{
		UserID:     a.id,
		UserName:   a.name,
		EntityType: entity,
		EntityID:   &id,
		Action:     action,
		Changes:    changes,
	}
}

// notifyAssignee queues an assignment notification for req's assignee.
// Lookup failures are logged; the mutation has already been committed.
func (s *Service) notifyAssignee(ctx context.Context, req *domain.Request) {
	if s.notifier == nil {
		return
	}
	assignee, ok := req.AssigneeID()
	if !ok {
		return
	}

	p, err := s.profiles.GetByID(ctx, assignee)
	if err != nil {
		s.log.WarnContext(ctx, "skip assignment notification",
			slog.String("request_id", req.ID.String()),
			slog.String("assignee", assignee.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	s.notifier.NotifyAssignment(ctx, notify.Assignment{
		RecipientID:    p.ID,
		RecipientEmail: p.Email,
		RecipientName:  p.DisplayName(),
		RequestID:      req.ID,
		RequestNumber:  req.RequestNumber,
		RequestTitle:   req.Title,
		DueDate:        req.DueDate,
	})
}

func change(old, new any) map[string]any {
	return map[string]any{"old": old, "new": new}
}

func dateString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(domain.DateLayout)
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func uuidOrNil(id *uuid.UUID) any {
	if id == nil {
		return nil
	}
	return id.String()
}
