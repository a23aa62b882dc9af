package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/heartmarshall/worktrack-backend/internal/domain"
)

const MaxCompanyLength = 200

// LinkInput holds the fields of a new client link.
type LinkInput struct {
	Name     string
	URL      string
	Comments string
}

func (l LinkInput) fieldErrors(prefix string) validation.Errors {
	return validation.Errors{
		prefix + "name": validation.Validate(strings.TrimSpace(l.Name), validation.Required.Error("required")),
		prefix + "url":  validation.Validate(strings.TrimSpace(l.URL), validation.Required.Error("required"), domain.URLRule),
	}
}

// Validate checks the link fields.
func (l LinkInput) Validate() error {
	return domain.FromRules(l.fieldErrors("").Filter())
}

func (l LinkInput) toDomain(now time.Time) domain.Link {
	return domain.Link{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(l.Name),
		URL:       strings.TrimSpace(l.URL),
		Comments:  strings.TrimSpace(l.Comments),
		CreatedAt: now,
	}
}

// CreateClientInput holds the parameters for creating a client.
type CreateClientInput struct {
	Company     string
	ContactName string
	Email       string
	Phone       string
	Address     string
	Website     string
	Notes       string
	Links       []LinkInput
}

// Validate checks all fields and collects all errors.
func (i CreateClientInput) Validate() error {
	errs := validation.Errors{
		"company": companyError(i.Company),
		"email":   validation.Validate(strings.TrimSpace(i.Email), domain.EmailRule),
		"phone":   validation.Validate(i.Phone, domain.PhoneRule),
		"website": validation.Validate(strings.TrimSpace(i.Website), domain.URLRule),
	}
	for idx, l := range i.Links {
		for k, v := range l.fieldErrors(fmt.Sprintf("links[%d].", idx)) {
			errs[k] = v
		}
	}
	return domain.FromRules(errs.Filter())
}

// UpdateClientInput holds the parameters for updating a client.
// Nil fields are left unchanged; a pointer to "" clears an optional field.
type UpdateClientInput struct {
	ClientID    uuid.UUID
	Company     *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Website     *string
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateClientInput) Validate() error {
	errs := validation.Errors{}
	if i.ClientID == uuid.Nil {
		errs["client_id"] = errors.New("required")
	}
	if i.Company != nil {
		errs["company"] = companyError(*i.Company)
	}
	if i.Email != nil {
		errs["email"] = validation.Validate(strings.TrimSpace(*i.Email), domain.EmailRule)
	}
	if i.Phone != nil {
		errs["phone"] = validation.Validate(*i.Phone, domain.PhoneRule)
	}
	if i.Website != nil {
		errs["website"] = validation.Validate(strings.TrimSpace(*i.Website), domain.URLRule)
	}
	return domain.FromRules(errs.Filter())
}

func companyError(company string) error {
	return validation.Validate(strings.TrimSpace(company),
		validation.Required.Error("required"),
		validation.RuneLength(0, MaxCompanyLength).Error(fmt.Sprintf("max %d characters", MaxCompanyLength)),
	)
}
