package email

import (
	"context"

	"github.com/resendlabs/resend-go"
	"github.com/rs/zerolog/log"
)

// Message is a rendered email
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers rendered emails
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// ResendSender sends through the Resend API
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a Resend-backed sender
func NewResendSender(apiKey, from string) *ResendSender {
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	resp, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return err
	}
	log.Debug().Str("email_id", resp.Id).Str("to", msg.To).Msg("Email sent")
	return nil
}

// LogSender only logs; used when no API key is configured
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg *Message) error {
	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email delivery disabled, message logged")
	return nil
}
