package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

// ErrSend возвращается, когда SMTP сервер не принял письмо
var ErrSend = errors.New("mailer: failed to send email")

// Email одно исходящее письмо
type Email struct {
	To      string
	Subject string
	Body    string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer отправляет письма через SMTP с PLAIN авторизацией
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
	send sendFunc
}

// New создает новый экземпляр отправителя писем
func New(host string, port int, username, password, from string) *Mailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &Mailer{
		addr: net.JoinHostPort(host, strconv.Itoa(port)),
		from: from,
		auth: auth,
		send: smtp.SendMail,
	}
}

// Send отправляет письмо. net/smtp не поддерживает context, поэтому проверяется только отмена до отправки.
func (m *Mailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	if err := m.send(m.addr, m.auth, m.from, []string{email.To}, m.message(email)); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, email.To, err)
	}
	return nil
}

func (m *Mailer) message(email Email) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", email.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(email.Body, "\n", "\r\n"))
	return []byte(b.String())
}
