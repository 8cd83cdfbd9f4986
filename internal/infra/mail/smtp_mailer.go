// Package mail implements the notification mailer over SMTP.
package mail

import (
	"context"
	"log/slog"

	"crewdir/config"
	"crewdir/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// smtpMailer implements the service.MailService interface.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// Params defines the parameters required for the mailer
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SMTP-backed mail service.
func New(params Params) (service.MailService, error) {
	cfg := params.Config.Mail
	if cfg == nil {
		return nil, errors.New("mail config is required")
	}

	client, err := gomail.NewClient(cfg.Host,
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: params.Logger,
	}, nil
}

// Send dispatches one notification email.
func (m *smtpMailer) Send(ctx context.Context, msg service.MailMessage) error {
	message := gomail.NewMsg()
	if err := message.From(m.from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := message.To(msg.To); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	message.Subject(msg.Subject)
	message.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		message.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
