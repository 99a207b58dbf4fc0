package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/applyflow/outreach-system/internal/api/metrics"
	"github.com/applyflow/outreach-system/internal/core/domain"
	"github.com/applyflow/outreach-system/internal/core/ports"
	"github.com/applyflow/outreach-system/internal/mail"
)

// CredentialOpener yields a user's decrypted SMTP app password.
// Implemented by AuthService.
type CredentialOpener interface {
	EmailCredential(user *domain.User) (string, error)
}

// PreflightCache remembers recently verified sender credentials so
// back-to-back bulk sends skip the SMTP handshake. Optional: a nil cache
// means every run pays the full pre-flight.
type PreflightCache interface {
	IsVerified(ctx context.Context, sender string) (bool, error)
	MarkVerified(ctx context.Context, sender string) error
}

// OutreachService drives the bulk-send pipeline: validate, pre-flight,
// store the resume, parse recipients, fan sends out, partition, persist.
type OutreachService struct {
	users      ports.UserRepository
	operations ports.OperationRepository
	creds      CredentialOpener
	mailer     ports.Mailer
	files      ports.FileStore
	preflight  PreflightCache
	workers    int
	logger     zerolog.Logger
}

func NewOutreachService(
	users ports.UserRepository,
	operations ports.OperationRepository,
	creds CredentialOpener,
	mailer ports.Mailer,
	files ports.FileStore,
	preflight PreflightCache,
	workers int,
	logger zerolog.Logger,
) *OutreachService {
	if workers <= 0 {
		workers = defaultSendWorkers
	}
	return &OutreachService{
		users:      users,
		operations: operations,
		creds:      creds,
		mailer:     mailer,
		files:      files,
		preflight:  preflight,
		workers:    workers,
		logger:     logger,
	}
}

// SendBulk runs one bulk send. Per-recipient failures are data, not
// errors: they land in the failed list and the call still succeeds. Only
// pre-send gates (input shape, credentials, pre-flight) abort the run.
func (s *OutreachService) SendBulk(ctx context.Context, input ports.BulkSendInput) (*ports.BulkSendResult, error) {
	// 1. Input presence and extension gates, before any I/O.
	if input.Recipients == nil {
		return nil, fmt.Errorf("%w: emails file is missing", domain.ErrBadInput)
	}
	if input.Resume == nil {
		return nil, fmt.Errorf("%w: resume file is missing", domain.ErrBadInput)
	}
	if !hasExtension(input.Recipients.Filename, ".txt") {
		return nil, fmt.Errorf("%w: the emails file must be a TXT file", domain.ErrBadInput)
	}
	if !hasExtension(input.Resume.Filename, ".pdf") {
		return nil, fmt.Errorf("%w: the resume file must be a PDF file", domain.ErrBadInput)
	}

	// 2. Sender identity and credential shape, still before any SMTP.
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("load sender: %w", err)
	}
	if !domain.IsValidEmail(user.Email) {
		return nil, fmt.Errorf("%w: sender address %q is malformed", domain.ErrBadInput, user.Email)
	}
	credential, err := s.creds.EmailCredential(user)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialMissing) {
			return nil, fmt.Errorf("%w: no email password on file", domain.ErrBadInput)
		}
		return nil, fmt.Errorf("open email credential: %w", err)
	}
	if !domain.IsCredentialStructure(credential) {
		return nil, fmt.Errorf("%w: the email password maybe like this: xxxx xxxx xxxx xxxx", domain.ErrBadInput)
	}

	smtpCreds := ports.Credentials{Address: user.Email, Password: credential}

	// 3. Pre-flight gate: abort before sending or persisting anything.
	if err := s.ensureConnection(ctx, smtpCreds); err != nil {
		return nil, err
	}

	// 4. Resume is retained under a fresh id; the recipient list is parsed
	// straight from the upload stream and never stored.
	resumeBytes, err := io.ReadAll(input.Resume.Content)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}
	resumeID := uuid.NewString()
	if err := s.files.Save(ctx, resumeID, bytes.NewReader(resumeBytes)); err != nil {
		return nil, fmt.Errorf("store resume: %w", err)
	}

	// 5. Parse recipients.
	recipients, err := mail.ParseRecipients(input.Recipients.Content, input.Separator)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadInput, err)
	}

	// 6. Fan out. Results come back indexed by input position, so the
	// partition below preserves input order.
	results := fanOutSends(ctx, recipients, s.workers, func(ctx context.Context, recipient string) ports.SendResult {
		start := time.Now()
		res := s.mailer.Send(ctx, smtpCreds, ports.Message{
			To:             recipient,
			Subject:        input.Subject,
			HTMLBody:       input.Body,
			Attachment:     resumeBytes,
			AttachmentName: input.Resume.Filename,
		})
		metrics.SendDuration.WithLabelValues(string(res.Status)).Observe(time.Since(start).Seconds())
		metrics.EmailsSentTotal.WithLabelValues(string(res.Status)).Inc()
		if !res.OK() {
			s.logger.Warn().Err(res.Err).
				Str("recipient", recipient).
				Str("status", string(res.Status)).
				Msg("send failed")
		}
		return res
	})

	result := &ports.BulkSendResult{
		SuccessReceivers: make([]string, 0, len(recipients)),
		FailedReceivers:  make([]string, 0),
	}
	for i, res := range results {
		if res.OK() {
			result.SuccessReceivers = append(result.SuccessReceivers, recipients[i])
		} else {
			result.FailedReceivers = append(result.FailedReceivers, recipients[i])
		}
	}

	// 7. Persist the audit record once, after the full loop. A cancelled
	// request must not leave a partial record behind.
	if ctx.Err() != nil {
		metrics.BulkSendsTotal.WithLabelValues("cancelled").Inc()
		return result, nil
	}

	op := &domain.Operation{
		ID:               uuid.NewString(),
		FromEmail:        user.Email,
		Subject:          input.Subject,
		Body:             input.Body,
		SuccessReceivers: result.SuccessReceivers,
		FailedReceivers:  result.FailedReceivers,
		ResumeID:         resumeID,
		UserID:           user.ID,
		CreatedAt:        time.Now().UTC(),
	}
	outcome := "completed"
	switch err := s.operations.Create(ctx, op); {
	case err == nil:
		result.Saved = true
	case errors.Is(err, domain.ErrUserNotFound):
		// The owner vanished between auth and persistence.
		metrics.BulkSendsTotal.WithLabelValues("orphaned").Inc()
		return nil, fmt.Errorf("record operation: %w", err)
	default:
		outcome = "save_failed"
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("operation not persisted")
	}

	metrics.BulkSendsTotal.WithLabelValues(outcome).Inc()
	metrics.BulkRecipients.Observe(float64(len(recipients)))

	s.logger.Info().
		Str("user_id", user.ID).
		Int("recipients", len(recipients)).
		Int("failed", len(result.FailedReceivers)).
		Bool("saved", result.Saved).
		Msg("bulk send finished")

	return result, nil
}

// ensureConnection consults the pre-flight cache, falling back to a real
// authenticate/quit probe. Cache trouble degrades to the probe.
func (s *OutreachService) ensureConnection(ctx context.Context, creds ports.Credentials) error {
	if s.preflight != nil {
		verified, err := s.preflight.IsVerified(ctx, creds.Address)
		if err != nil {
			s.logger.Warn().Err(err).Msg("preflight cache lookup failed, probing")
		} else if verified {
			metrics.PreflightChecksTotal.WithLabelValues("cached").Inc()
			return nil
		}
	}

	if err := s.mailer.CheckConnection(ctx, creds); err != nil {
		metrics.PreflightChecksTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("%w: %v", domain.ErrConnectionFailed, err)
	}
	metrics.PreflightChecksTotal.WithLabelValues("ok").Inc()

	if s.preflight != nil {
		if err := s.preflight.MarkVerified(ctx, creds.Address); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache preflight result")
		}
	}
	return nil
}

func hasExtension(filename, ext string) bool {
	return strings.EqualFold(filepath.Ext(filename), ext)
}
