package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"mergingtonactivities/internal/domain"
	"mergingtonactivities/internal/roster"
)

type activityService struct {
	registry     domain.ActivityRegistry
	signupLog    domain.SignupLogRepository
	emailService domain.EmailService
	metrics      domain.SignupMetrics
	logger       *slog.Logger
	now          func() time.Time
}

// ActivityServiceOption configures optional collaborators of the activity service.
type ActivityServiceOption func(*activityService)

// WithSignupLog records every successful signup in repo.
func WithSignupLog(repo domain.SignupLogRepository) ActivityServiceOption {
	return func(s *activityService) { s.signupLog = repo }
}

// WithEmailService sends a confirmation email after every successful signup.
func WithEmailService(svc domain.EmailService) ActivityServiceOption {
	return func(s *activityService) { s.emailService = svc }
}

// WithSignupMetrics reports signup outcomes to m.
func WithSignupMetrics(m domain.SignupMetrics) ActivityServiceOption {
	return func(s *activityService) { s.metrics = m }
}

// NewActivityService creates an ActivityService backed by the given registry.
func NewActivityService(registry domain.ActivityRegistry, logger *slog.Logger, opts ...ActivityServiceOption) domain.ActivityService {
	s := &activityService{
		registry: registry,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *activityService) ListActivities(ctx context.Context) map[string]*domain.Activity {
	return s.registry.List(ctx)
}

func (s *activityService) GetActivity(ctx context.Context, name string) (*domain.Activity, error) {
	return s.registry.Get(ctx, name)
}

func (s *activityService) Signup(ctx context.Context, name, email string) (*domain.SignupResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		s.observe(ctx, name, domain.OutcomeInvalid)
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}

	res, err := s.registry.Signup(ctx, name, email)
	if err != nil {
		s.observe(ctx, name, outcomeFor(err))
		return nil, err
	}
	s.observe(ctx, name, domain.OutcomeSuccess)

	// The roster is already updated; follow-ups outlive the request and
	// their failures are logged only.
	ctx = context.WithoutCancel(ctx)
	if s.signupLog != nil {
		entry := domain.NewSignupLogEntry(name, email, s.now().UTC())
		if err := s.signupLog.Record(ctx, entry); err != nil {
			s.logger.ErrorContext(ctx, "record signup failed", "activity", name, "email", email, "err", err)
		}
	}
	if s.emailService != nil {
		s.sendConfirmation(ctx, res)
	}
	return res, nil
}

func (s *activityService) sendConfirmation(ctx context.Context, res *domain.SignupResult) {
	data := &domain.SignupConfirmationEmailData{
		Email:          res.Email,
		ActivityName:   res.Activity,
		Schedule:       res.Schedule,
		RemainingSpots: res.RemainingSpots,
	}
	if err := s.emailService.SendSignupConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "signup confirmation email failed", "activity", res.Activity, "email", res.Email, "err", err)
	}
}

func (s *activityService) Project(ctx context.Context, name string, p domain.Projection, email string) (any, error) {
	a, err := s.registry.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if p.IsRoster() {
		return roster.Render(a.Participants, p.Format)
	}
	return a.FieldValue(p.Field, email)
}

func (s *activityService) SignupHistory(ctx context.Context, name string) ([]*domain.SignupLogEntry, error) {
	if _, err := s.registry.Get(ctx, name); err != nil {
		return nil, err
	}
	if s.signupLog == nil {
		return []*domain.SignupLogEntry{}, nil
	}
	entries, err := s.signupLog.ListByActivity(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list signup log: %w", err)
	}
	return entries, nil
}

// observe reports a signup outcome. Names the registry does not hold are
// reported as domain.UnknownActivity so callers cannot mint new label values.
func (s *activityService) observe(ctx context.Context, name, outcome string) {
	if s.metrics == nil {
		return
	}
	switch outcome {
	case domain.OutcomeNotFound:
		name = domain.UnknownActivity
	case domain.OutcomeInvalid:
		if _, err := s.registry.Get(ctx, name); err != nil {
			name = domain.UnknownActivity
		}
	}
	s.metrics.ObserveSignup(name, outcome)
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return domain.OutcomeNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return domain.OutcomeAlreadyRegistered
	case errors.Is(err, domain.ErrCapacityExceeded):
		return domain.OutcomeCapacityExceeded
	default:
		return domain.OutcomeInvalid
	}
}
