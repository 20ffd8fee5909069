package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/notification/gateway/port"
)

// SMTPEmailGateway delivers mail through an authenticated SMTP relay.
type SMTPEmailGateway struct {
	host string
	port int
	user string
	pass string
}

func NewSMTPEmailGateway(host string, portNum int, user, pass string) (*SMTPEmailGateway, error) {
	if host == "" || user == "" {
		return nil, errors.New("email gateway: host and user are required")
	}
	return &SMTPEmailGateway{host: host, port: portNum, user: user, pass: pass}, nil
}

var _ port.EmailGateway = (*SMTPEmailGateway)(nil)

func (g *SMTPEmailGateway) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + g.user,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", g.host, g.port)
	auth := smtp.PlainAuth("", g.user, g.pass, g.host)
	if err := smtp.SendMail(addr, auth, g.user, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("email gateway: send: %w", err)
	}
	return nil
}
