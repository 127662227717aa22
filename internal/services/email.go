package services

import (
	"context"
	"fmt"
	"log/slog"

	"festx/internal/domain"
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

// SendRescheduleNotice sends the "reschedule" template to one registrant.
func (s *emailService) SendRescheduleNotice(ctx context.Context, data *domain.RescheduleEmailData) error {
	if data == nil {
		return fmt.Errorf("reschedule email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("reschedule", data)
	if err != nil {
		return fmt.Errorf("failed to render reschedule template: %w", err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send reschedule email: %w", err)
	}
	s.logger.DebugContext(ctx, "reschedule email sent", "to", data.Email)
	return nil
}
