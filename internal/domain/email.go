package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RescheduleEmailData holds data for the event rescheduled email.
type RescheduleEmailData struct {
	Email      string
	Name       string
	EventTitle string
	Reason     string
	Old        ScheduleSummary
	New        ScheduleSummary
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRescheduleNotice(ctx context.Context, data *RescheduleEmailData) error
}
