package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/jacquesd-webas/adventuremeets-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "github.com/wneessen/go-mail"
)

type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// SMTPMailer delivers outbound mail. Without a host it only logs, which is
// what local development runs with.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	logger logger.Logger
}

func NewSMTPMailer(opts SMTPOptions, logger logger.Logger) (*SMTPMailer, error) {
	if opts.Host == "" {
		logger.Warn("smtp host is empty, outbound mail disabled")
		return &SMTPMailer{from: opts.From, logger: logger}, nil
	}

	clientOpts := []gomail.Option{
		gomail.WithPort(opts.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if opts.Timeout > 0 {
		clientOpts = append(clientOpts, gomail.WithTimeout(opts.Timeout))
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(opts.Username),
			gomail.WithPassword(opts.Password),
		)
	}

	client, err := gomail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: opts.From, logger: logger}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, mail domain.OutboundMail) error {
	msg, err := m.build(mail)
	if err != nil {
		return err
	}

	if m.client == nil {
		m.logger.Debug("mail skipped (smtp disabled)",
			logger.String("to", mail.To),
			logger.String("subject", mail.Subject),
		)
		return nil
	}

	if err = m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", mail.To, err)
	}

	m.logger.Debug("mail sent",
		logger.String("to", mail.To),
		logger.String("subject", mail.Subject),
	)
	return nil
}

func (m *SMTPMailer) build(mail domain.OutboundMail) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("%w: from address %q: %w", domain.ErrValidation, m.from, err)
	}
	if err := msg.To(mail.To); err != nil {
		return nil, fmt.Errorf("%w: recipient %q: %w", domain.ErrValidation, mail.To, err)
	}
	if mail.ReplyTo != "" {
		if err := msg.ReplyTo(mail.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: reply-to %q: %w", domain.ErrValidation, mail.ReplyTo, err)
		}
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Text)

	return msg, nil
}
