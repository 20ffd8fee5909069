package port

import "context"

// SMSGateway delivers a text to a set of phone numbers through an external
// aggregator. Implementations report a single error for the whole batch.
type SMSGateway interface {
	Send(ctx context.Context, content string, msisdns []string) error
}

// EmailGateway delivers one email.
type EmailGateway interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
