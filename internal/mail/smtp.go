package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/applyflow/outreach-system/internal/core/ports"
)

const defaultDialTimeout = 30 * time.Second

// SMTPConfig holds the target server settings. Port 587 with STARTTLS is
// the expected setup (Gmail-style app passwords).
type SMTPConfig struct {
	Host        string
	Port        int
	DialTimeout time.Duration
}

// SMTPSender delivers messages over authenticated, TLS-upgraded SMTP.
// Every Send opens a fresh session and closes it before returning; nothing
// is pooled or retried.
type SMTPSender struct {
	cfg SMTPConfig
}

var _ ports.Mailer = (*SMTPSender)(nil)

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	return &SMTPSender{cfg: cfg}
}

// Send delivers one multipart message (HTML body + file attachment) to a
// single recipient and classifies the outcome.
func (s *SMTPSender) Send(ctx context.Context, creds ports.Credentials, msg ports.Message) ports.SendResult {
	if _, err := netmail.ParseAddress(msg.To); err != nil {
		return ports.SendResult{Status: ports.StatusInvalidRecipient, Err: fmt.Errorf("parse recipient %q: %w", msg.To, err)}
	}

	client, err := s.connect(ctx, creds)
	if err != nil {
		return classifyConnectError(err)
	}
	defer client.Close()

	if err := client.Mail(creds.Address); err != nil {
		return ports.SendResult{Status: ports.StatusNetworkError, Err: fmt.Errorf("MAIL FROM: %w", err)}
	}
	if err := client.Rcpt(msg.To); err != nil {
		return ports.SendResult{Status: ports.StatusInvalidRecipient, Err: fmt.Errorf("RCPT TO %s: %w", msg.To, err)}
	}

	w, err := client.Data()
	if err != nil {
		return ports.SendResult{Status: ports.StatusNetworkError, Err: fmt.Errorf("DATA: %w", err)}
	}
	if _, err := w.Write(buildMessage(creds.Address, msg)); err != nil {
		return ports.SendResult{Status: ports.StatusNetworkError, Err: fmt.Errorf("write body: %w", err)}
	}
	if err := w.Close(); err != nil {
		return ports.SendResult{Status: ports.StatusNetworkError, Err: fmt.Errorf("close body: %w", err)}
	}

	_ = client.Quit()
	return ports.SendResult{Status: ports.StatusSent}
}

// CheckConnection performs the dial/STARTTLS/AUTH/QUIT handshake without
// sending a message. Cost: one full SMTP round trip.
func (s *SMTPSender) CheckConnection(ctx context.Context, creds ports.Credentials) error {
	client, err := s.connect(ctx, creds)
	if err != nil {
		return err
	}
	defer client.Close()
	return client.Quit()
}

// connect dials the server, upgrades to TLS, and authenticates.
func (s *SMTPSender) connect(ctx context.Context, creds ports.Credentials) (*smtp.Client, error) {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	dialer := &net.Dialer{Timeout: s.cfg.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			client.Close()
			return nil, fmt.Errorf("starttls: %w", err)
		}
	}

	auth := smtp.PlainAuth("", creds.Address, creds.Password, s.cfg.Host)
	if err := client.Auth(auth); err != nil {
		client.Close()
		return nil, fmt.Errorf("auth: %w", authError{err})
	}

	return client, nil
}

// authError marks authentication failures so Send can classify them apart
// from plain network errors.
type authError struct{ err error }

func (e authError) Error() string { return e.err.Error() }
func (e authError) Unwrap() error { return e.err }

func classifyConnectError(err error) ports.SendResult {
	var ae authError
	if errors.As(err, &ae) {
		return ports.SendResult{Status: ports.StatusAuthFailed, Err: err}
	}
	return ports.SendResult{Status: ports.StatusNetworkError, Err: err}
}
