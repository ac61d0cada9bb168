package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/folio-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func sample() *model.ContactMessage {
	return &model.ContactMessage{
		ID:      "1",
		Name:    "Jane",
		Email:   "jane@x.com",
		Service: "web-development",
		Message: "<script>alert(1)</script> & hi",
		Status:  model.ContactStatusNew,
	}
}

func TestRenderBody_EscapesInput(t *testing.T) {
	body, err := RenderBody(sample())
	require.NoError(t, err)
	assert.Contains(t, body, "<strong>Name:</strong> Jane")
	assert.Contains(t, body, "web-development")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt; &amp; hi")
	assert.NotContains(t, body, "<script>")
}

func TestSMTPNotifier_SendsOneMessageToOperator(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifierWithSender(s, "site@example.com", "owner@example.com", zerolog.Nop())

	require.NoError(t, n.NotifyContact(context.Background(), sample()))
	require.Len(t, s.sent, 1)

	m := s.sent[0]
	rcpts, err := m.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, rcpts)
	assert.Equal(t, []string{"New Contact Form Submission from Jane"}, m.GetGenHeader(mail.HeaderSubject))
}

func TestSMTPNotifier_BadReplyToStillSends(t *testing.T) {
	s := &fakeSender{}
	n := NewNotifierWithSender(s, "site@example.com", "owner@example.com", zerolog.Nop())

	msg := sample()
	msg.Email = "not an address"
	require.NoError(t, n.NotifyContact(context.Background(), msg))
	assert.Len(t, s.sent, 1)
}

func TestSMTPNotifier_TransportError(t *testing.T) {
	boom := errors.New("dial tcp: refused")
	n := NewNotifierWithSender(&fakeSender{err: boom}, "site@example.com", "owner@example.com", zerolog.Nop())

	err := n.NotifyContact(context.Background(), sample())
	require.ErrorIs(t, err, boom)
}

func TestNopNotifier(t *testing.T) {
	assert.NoError(t, NopNotifier{}.NotifyContact(context.Background(), sample()))
}
