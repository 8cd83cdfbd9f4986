package service

import "context"

// MailMessage is a templated email ready for dispatch.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// MailService sends notification emails. Failures are logged by callers and
// never abort the enclosing operation.
type MailService interface {
	Send(ctx context.Context, msg MailMessage) error
}
