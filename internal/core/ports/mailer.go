package ports

import "context"

// SendStatus classifies the outcome of a single SMTP delivery attempt.
type SendStatus string

const (
	StatusSent             SendStatus = "sent"
	StatusAuthFailed       SendStatus = "auth_failed"
	StatusNetworkError     SendStatus = "network_error"
	StatusInvalidRecipient SendStatus = "invalid_recipient"
)

// SendResult carries the classified outcome plus the underlying error, so
// callers can partition without parsing error strings.
type SendResult struct {
	Status SendStatus
	Err    error
}

// OK reports whether the message was accepted by the server.
func (r SendResult) OK() bool { return r.Status == StatusSent }

// Credentials identify and authenticate the sending mailbox.
type Credentials struct {
	Address  string
	Password string
}

// Message is one outbound email: HTML body plus a single file attachment.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	Attachment     []byte
	AttachmentName string
}

// Mailer abstracts the SMTP transport. Each Send opens its own
// authenticated TLS session and closes it before returning.
type Mailer interface {
	Send(ctx context.Context, creds Credentials, msg Message) SendResult

	// CheckConnection performs the authenticate/quit handshake without
	// sending. Used as the pre-flight gate before a bulk send.
	CheckConnection(ctx context.Context, creds Credentials) error
}
