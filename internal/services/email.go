package services

import (
	"context"
	"fmt"
	"log/slog"

	"mergingtonactivities/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendSignupConfirmation sends the "signup_confirmation" template to the student.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.SignupConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("signup confirmation data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("signup_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render signup_confirmation template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send signup confirmation email: %w", err)
	}
	s.logger.InfoContext(ctx, "signup confirmation sent", "email", data.Email, "activity", data.ActivityName)
	return nil
}
