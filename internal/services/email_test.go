package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

type fakeRenderer struct {
	template string
	err      error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.template = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

type fakeMailer struct {
	to      string
	subject string
	err     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.to, f.subject = to, subject
	return f.err
}

func TestEmailService_SendSignupConfirmation(t *testing.T) {
	ctx := context.Background()
	data := &domain.SignupConfirmationEmailData{Email: "b@x.edu", ActivityName: "Chess Club"}

	t.Run("success", func(t *testing.T) {
		renderer, mailer := &fakeRenderer{}, &fakeMailer{}
		svc := NewEmailService(mailer, renderer, discardLogger())

		require.NoError(t, svc.SendSignupConfirmation(ctx, data))
		assert.Equal(t, "signup_confirmation", renderer.template)
		assert.Equal(t, "b@x.edu", mailer.to)
		assert.Equal(t, "subject", mailer.subject)
	})

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, discardLogger())
		assert.Error(t, svc.SendSignupConfirmation(ctx, nil))
	})

	t.Run("render error", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")}, discardLogger())
		assert.Error(t, svc.SendSignupConfirmation(ctx, data))
		assert.Empty(t, mailer.to)
	})

	t.Run("send error", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{err: errors.New("ses down")}, &fakeRenderer{}, discardLogger())
		assert.Error(t, svc.SendSignupConfirmation(ctx, data))
	})
}
