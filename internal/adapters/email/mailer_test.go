package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSESMailer_Send(t *testing.T) {
	client := &fakeSES{}
	m := &sesMailer{client: client, fromAddress: "activities@mergington.edu", fromName: "Mergington", logger: testLogger()}

	require.NoError(t, m.Send(context.Background(), "b@x.edu", "Hello", "<p>hi</p>", ""))
	require.NotNil(t, client.input)
	assert.Equal(t, "Mergington <activities@mergington.edu>", aws.ToString(client.input.Source))
	assert.Equal(t, []string{"b@x.edu"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "Hello", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>hi</p>", aws.ToString(client.input.Message.Body.Html.Data))
	assert.Nil(t, client.input.Message.Body.Text)
}

func TestSESMailer_SendError(t *testing.T) {
	m := &sesMailer{client: &fakeSES{err: errors.New("throttled")}, fromAddress: "a@x.edu", logger: testLogger()}
	assert.Error(t, m.Send(context.Background(), "b@x.edu", "s", "", "t"))
}

func TestNewMailer(t *testing.T) {
	m, err := NewMailer(MailerConfig{Provider: "noop"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)
	assert.NoError(t, m.Send(context.Background(), "b@x.edu", "s", "h", "t"))

	m, err = NewMailer(MailerConfig{Provider: "carrier-pigeon"}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &noopMailer{}, m)

	m, err = NewMailer(MailerConfig{Provider: "ses", SES: SESConfig{Region: "us-east-1", AccessKeyID: "id", SecretAccessKey: "secret"}}, testLogger())
	require.NoError(t, err)
	assert.IsType(t, &sesMailer{}, m)

	_, err = NewMailer(MailerConfig{Provider: "ses"}, testLogger())
	assert.Error(t, err)
}

func TestTemplateRenderer_SignupConfirmation(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render("signup_confirmation", &domain.SignupConfirmationEmailData{
		Email:          "b@x.edu",
		ActivityName:   "Drama Club",
		Schedule:       "Thursdays, 3:30 PM - 5:00 PM",
		RemainingSpots: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "You're signed up for Drama Club", subject)
	assert.Contains(t, html, "Thursdays, 3:30 PM - 5:00 PM")
	assert.Contains(t, html, "Spots remaining: 3")
	assert.Contains(t, text, "You are now signed up for Drama Club")

	_, _, _, err = r.Render("missing", nil)
	assert.Error(t, err)
}
