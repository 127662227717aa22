package email

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festx/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

func TestTemplateRenderer_Reschedule(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.RescheduleEmailData{
		Email:      "sam@campus.edu",
		Name:       "Sam",
		EventTitle: "Hack <Night>",
		Reason:     "Auditorium flooded",
		Old:        domain.ScheduleSummary{Date: "October 20, 2026", Time: "10:00 - 12:00", Venue: "Main Auditorium"},
		New:        domain.ScheduleSummary{Date: "October 22, 2026", Time: "14:00 - 16:00", Venue: "Seminar Hall A"},
	}
	subject, html, text, err := r.Render("reschedule", data)
	require.NoError(t, err)

	assert.Equal(t, "Event Rescheduled: Hack <Night>", subject)
	assert.Contains(t, html, "Hack &lt;Night&gt;")
	assert.Contains(t, html, "Seminar Hall A")
	assert.Contains(t, text, "Before: October 20, 2026 at 10:00 - 12:00, Main Auditorium")
	assert.Contains(t, text, "Now:    October 22, 2026 at 14:00 - 16:00, Seminar Hall A")
	assert.Contains(t, text, "Reason: Auditorium flooded")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)
	_, _, _, err = r.Render("welcome", nil)
	require.Error(t, err)
}

func TestNewMailer(t *testing.T) {
	tests := []struct {
		name     string
		config   MailerConfig
		wantNoop bool
		wantErr  bool
	}{
		{"noop", MailerConfig{Provider: "noop"}, true, false},
		{"unknown falls back to noop", MailerConfig{Provider: "smtp"}, true, false},
		{"ses", MailerConfig{Provider: "ses", FromAddress: "events@campus.edu", SES: SESConfig{Region: "eu-west-1"}}, false, false},
		{"ses without sender", MailerConfig{Provider: "ses"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMailer(tt.config, testLogger)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, isNoop := m.(*noopMailer)
			assert.Equal(t, tt.wantNoop, isNoop)
		})
	}
}

func TestNoopMailer_Send(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger)
	require.NoError(t, err)
	require.NoError(t, m.Send(context.Background(), "sam@campus.edu", "subject", "<p>hi</p>", "hi"))
}

func TestBuildSendEmailInput(t *testing.T) {
	in := buildSendEmailInput(formatSource("FestX", "events@campus.edu"), "sam@campus.edu", "Moved", "", "plain body")

	assert.Equal(t, "FestX <events@campus.edu>", aws.ToString(in.Source))
	assert.Equal(t, []string{"sam@campus.edu"}, in.Destination.ToAddresses)
	assert.Equal(t, "Moved", aws.ToString(in.Message.Subject.Data))
	assert.Nil(t, in.Message.Body.Html)
	require.NotNil(t, in.Message.Body.Text)
	assert.Equal(t, "plain body", aws.ToString(in.Message.Body.Text.Data))

	assert.Equal(t, "events@campus.edu", formatSource("", "events@campus.edu"))
}
