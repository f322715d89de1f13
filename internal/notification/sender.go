package notification

import (
	"context"
	"errors"
	"fmt"

	"datawise-backend/internal/config"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -source=sender.go -destination=../mocks/notification_mocks.go -package=mocks

// Sender delivers a plain text message to one recipient
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPConfig holds the SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPConfig derives the SMTP settings from the application config
func NewSMTPConfig(cfg *config.Config) SMTPConfig {
	return SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPSender,
	}
}

// SMTPSender sends mail through an authenticated SMTP relay.
// Port 465 uses implicit TLS, other ports require STARTTLS.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.Port <= 0 {
		return nil, errors.New("smtp port must be positive")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp sender address is required")
	}
	return &SMTPSender{cfg: cfg}, nil
}

// BuildMessage assembles the message without sending it
func (s *SMTPSender) BuildMessage(to, subject, body string) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextPlain, body)
	return m, nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{mail.WithPort(s.cfg.Port)}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	return opts
}

// Send delivers the message, honoring ctx for dial and transfer
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	m, err := s.BuildMessage(to, subject, body)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
