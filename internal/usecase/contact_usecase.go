package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marcenaria_site/internal/domain/entities"
	"marcenaria_site/internal/logger"
	"marcenaria_site/internal/metrics"
	"marcenaria_site/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxAttachmentSize is the largest file the contact form accepts.
const MaxAttachmentSize int64 = 5 * 1024 * 1024

var allowedAttachmentTypes = []string{"image/jpeg", "image/png", "application/pdf"}

var (
	ErrInvalidContact       = errors.New("invalid contact submission")
	ErrAttachmentTooLarge   = errors.New("attachment too large")
	ErrAttachmentType       = errors.New("attachment type not allowed")
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrRelayRejected        = errors.New("form endpoint rejected the submission")
	ErrRelayUnavailable     = errors.New("form endpoint unavailable")
	ErrContactNotFound      = errors.New("contact request not found")
)

// ContactFieldError names the first field that failed validation.
type ContactFieldError struct {
	Field  string
	Reason string
}

func (e *ContactFieldError) Error() string {
	return fmt.Sprintf("%s: field %q %s", ErrInvalidContact, e.Field, e.Reason)
}

func (e *ContactFieldError) Is(target error) bool {
	return target == ErrInvalidContact
}

// RelayStatusError keeps the status the form endpoint answered with.
type RelayStatusError struct {
	Status int
}

func (e *RelayStatusError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrRelayRejected, e.Status)
}

func (e *RelayStatusError) Is(target error) bool {
	return target == ErrRelayRejected
}

//go:generate mockgen -source=contact_usecase.go -destination=../adapter/http/handlers/mocks/contact_usecase_mock.go -package=mocks

// IContactUseCase sends the contact form.
//
// Requested behavior:
//   - validate fields and the optional attachment before any network call
//   - relay once to the form endpoint, no retry
//   - keep the lead and tell the workshop when it went through

type IContactUseCase interface {
	Submit(ctx context.Context, submission entities.ContactSubmission) (entities.ContactRequest, error)
	GetByID(ctx context.Context, id string) (entities.ContactRequest, error)
}

type ContactUseCase struct {
	repo     interfaces.IContactRepository
	gateway  interfaces.IContactGateway
	notifier interfaces.IOwnerNotifier
	guard    interfaces.ISubmissionGuard
	log      *logger.Logger
	validate *validator.Validate
	now      func() time.Time
}

var _ IContactUseCase = (*ContactUseCase)(nil)

// NewContactUseCase wires the contact flow. notifier and guard may be nil.
func NewContactUseCase(
	repo interfaces.IContactRepository,
	gateway interfaces.IContactGateway,
	notifier interfaces.IOwnerNotifier,
	guard interfaces.ISubmissionGuard,
	log *logger.Logger,
) *ContactUseCase {
	return &ContactUseCase{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		guard:    guard,
		log:      log,
		validate: validator.New(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ContactUseCase) Submit(ctx context.Context, s entities.ContactSubmission) (entities.ContactRequest, error) {
	s = normalizeSubmission(s)
	log := u.log.With(logger.String("session_id", s.SessionID))
	log.Info("contact submit start", logger.Bool("attachment", s.Attachment != nil))

	// The attachment is checked first so a rejected file is reported even when other
	// fields are also missing.
	if err := ValidateAttachment(s.Attachment); err != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid_attachment").Inc()
		log.Info("contact attachment rejected", logger.ErrorF(err))
		return entities.ContactRequest{}, err
	}
	if err := u.validateSubmission(s); err != nil {
		metrics.ContactSubmissions.WithLabelValues("invalid").Inc()
		log.Info("contact submit invalid", logger.ErrorF(err))
		return entities.ContactRequest{}, err
	}
	if u.gateway == nil {
		return entities.ContactRequest{}, errors.New("contact gateway not configured")
	}

	if u.guard != nil && s.SessionID != "" {
		key := "contact:inflight:" + s.SessionID
		ok, err := u.guard.Acquire(ctx, key)
		if err != nil {
			// A lock store outage never blocks a lead.
			log.Warn("submission guard unavailable", logger.ErrorF(err))
		} else if !ok {
			metrics.ContactSubmissions.WithLabelValues("in_flight").Inc()
			return entities.ContactRequest{}, ErrSubmissionInProgress
		} else {
			defer func() {
				if err := u.guard.Release(context.WithoutCancel(ctx), key); err != nil {
					log.Warn("submission guard release failed", logger.ErrorF(err))
				}
			}()
		}
	}

	started := time.Now()
	status, relayErr := u.gateway.Forward(ctx, s)
	metrics.ContactRelayDuration.Observe(time.Since(started).Seconds())

	switch {
	case relayErr != nil:
		relayErr = fmt.Errorf("%w: %v", ErrRelayUnavailable, relayErr)
	case status < 200 || status > 299:
		relayErr = &RelayStatusError{Status: status}
	}

	lead := u.toLead(s)
	if relayErr != nil {
		lead.Status = entities.ContactStatusFalhou
		u.persist(ctx, log, lead)
		metrics.ContactSubmissions.WithLabelValues("relay_failed").Inc()
		log.Warn("contact relay failed", logger.Int("status", status), logger.ErrorF(relayErr))
		return entities.ContactRequest{}, relayErr
	}

	lead.Status = entities.ContactStatusEnviado
	u.persist(ctx, log, lead)
	if u.notifier != nil {
		if err := u.notifier.NotifyContact(ctx, lead); err != nil {
			log.Warn("owner notification failed", logger.String("lead_id", lead.ID), logger.ErrorF(err))
		}
	}

	metrics.ContactSubmissions.WithLabelValues("sent").Inc()
	log.Info("contact submit success", logger.String("lead_id", lead.ID), logger.Int("status", status))
	return lead, nil
}

func (u *ContactUseCase) GetByID(ctx context.Context, id string) (entities.ContactRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ContactRequest{}, ErrContactNotFound
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ContactRequest{}, err
	}
	if c.ID == "" {
		return entities.ContactRequest{}, ErrContactNotFound
	}
	return c, nil
}

// ValidateAttachment checks size and type. A nil attachment is valid.
//
// The declared content type and the sniffed one must both be allowed, so a renamed
// executable does not pass as a PDF.
func ValidateAttachment(a *entities.Attachment) error {
	if a == nil {
		return nil
	}
	size := a.Size
	if int64(len(a.Data)) > size {
		size = int64(len(a.Data))
	}
	if size > MaxAttachmentSize {
		return ErrAttachmentTooLarge
	}

	declared := strings.ToLower(strings.TrimSpace(strings.Split(a.ContentType, ";")[0]))
	if !isAllowedType(declared) {
		return ErrAttachmentType
	}
	if len(a.Data) > 0 {
		if !isAllowedType(mimetype.Detect(a.Data).String()) {
			return ErrAttachmentType
		}
	}
	return nil
}

func isAllowedType(ct string) bool {
	for _, allowed := range allowedAttachmentTypes {
		if ct == allowed {
			return true
		}
	}
	return false
}

func (u *ContactUseCase) validateSubmission(s entities.ContactSubmission) error {
	if s.Name == "" {
		return &ContactFieldError{Field: "name", Reason: "is required"}
	}
	if s.Email == "" {
		return &ContactFieldError{Field: "email", Reason: "is required"}
	}
	if err := u.validate.Var(s.Email, "email"); err != nil {
		return &ContactFieldError{Field: "email", Reason: "is not a valid e-mail"}
	}
	if s.Message == "" {
		return &ContactFieldError{Field: "message", Reason: "is required"}
	}
	return nil
}

func (u *ContactUseCase) persist(ctx context.Context, log *logger.Logger, lead entities.ContactRequest) {
	if u.repo == nil {
		return
	}
	if _, err := u.repo.Create(ctx, lead); err != nil {
		log.Error("contact repository create failed", logger.String("lead_id", lead.ID), logger.ErrorF(err))
	}
}

func (u *ContactUseCase) toLead(s entities.ContactSubmission) entities.ContactRequest {
	lead := entities.ContactRequest{
		ID:         uuid.NewString(),
		SessionID:  s.SessionID,
		Name:       s.Name,
		Email:      s.Email,
		Phone:      s.Phone,
		Subject:    s.Subject,
		Message:    s.Message,
		EstimateID: s.EstimateID,
		Date:       u.now(),
	}
	if s.Attachment != nil {
		lead.Attachment = s.Attachment.Filename
	}
	return lead
}

func normalizeSubmission(s entities.ContactSubmission) entities.ContactSubmission {
	s.SessionID = strings.TrimSpace(s.SessionID)
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.TrimSpace(s.Email)
	s.Phone = strings.TrimSpace(s.Phone)
	s.Subject = strings.TrimSpace(s.Subject)
	s.Message = strings.TrimSpace(s.Message)
	s.EstimateID = strings.TrimSpace(s.EstimateID)
	return s
}
