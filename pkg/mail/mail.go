// Package mail sends the account emails: registration confirmation and
// password reset.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/configs"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}

func NewMailer(conf configs.Mail, logger *zap.Logger) Mailer {
	if !conf.Enabled {
		return NewLogMailer(logger)
	}

	return NewSMTPMailer(conf, logger)
}

type SMTPMailer struct {
	conf   configs.Mail
	logger *zap.Logger
}

func NewSMTPMailer(conf configs.Mail, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{conf: conf, logger: logger}
}

func (s *SMTPMailer) Send(ctx context.Context, message Message) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.conf.From); err != nil {
		return fmt.Errorf("invalid sender: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return fmt.Errorf("invalid recipient: %w", err)
	}

	msg.Subject(message.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, message.Body)

	options := []gomail.Option{gomail.WithPort(s.conf.Port), gomail.WithTLSPortPolicy(gomail.TLSOpportunistic)}
	if s.conf.Username != "" {
		options = append(options,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.conf.Username),
			gomail.WithPassword(s.conf.Password))
	}

	client, err := gomail.NewClient(s.conf.Host, options...)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.logger.Info("mail sent", zap.String("to", message.To), zap.String("subject", message.Subject))

	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (l *LogMailer) Send(_ context.Context, message Message) error {
	l.logger.Info("mail not sent, delivery disabled",
		zap.String("to", message.To), zap.String("subject", message.Subject), zap.String("body", message.Body))

	return nil
}
