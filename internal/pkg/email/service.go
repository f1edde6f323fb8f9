package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Template names
const (
	TemplateInquiryReceived     = "inquiry_received"
	TemplateInquiryConfirmation = "inquiry_confirmation"
)

// Service renders templates and sends them from a background queue
type Service struct {
	sender    Sender
	templates map[string]*template.Template
	queue     chan *queuedEmail
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type queuedEmail struct {
	to       string
	replyTo  string
	subject  string
	template string
	data     interface{}
}

// NewService creates the email service and starts its worker
func NewService(sender Sender) *Service {
	s := &Service{
		sender:    sender,
		templates: make(map[string]*template.Template),
		queue:     make(chan *queuedEmail, 100),
	}

	for name, content := range map[string]string{
		TemplateInquiryReceived:     InquiryReceivedTemplate,
		TemplateInquiryConfirmation: InquiryConfirmationTemplate,
	} {
		tmpl, err := template.New(name).Parse(BaseTemplate + content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.to).
				Str("template", email.template).
				Msg("Failed to send email")
		}
		cancel()
	}
}

// Render executes a named template
func (s *Service) Render(name string, data interface{}) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("email template %q not found", name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) send(ctx context.Context, email *queuedEmail) error {
	html, err := s.Render(email.template, email.data)
	if err != nil {
		return err
	}
	return s.sender.Send(ctx, &Message{
		To:      email.to,
		ReplyTo: email.replyTo,
		Subject: email.subject,
		HTML:    html,
	})
}

// Queue adds an email to the send queue; drops it when the queue is full
func (s *Service) Queue(to, replyTo, subject, templateName string, data interface{}) {
	select {
	case s.queue <- &queuedEmail{to: to, replyTo: replyTo, subject: subject, template: templateName, data: data}:
	default:
		log.Warn().Str("to", to).Msg("Email queue full, dropping email")
	}
}

// Close drains the queue and stops the worker
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
		s.wg.Wait()
	})
}
