package mail

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"time"

	"github.com/applyflow/outreach-system/internal/core/ports"
)

const attachmentBoundary = "outreach-mixed-boundary"

// buildMessage renders the RFC 2045 multipart/mixed payload: one HTML part
// followed by one base64-encoded PDF attachment.
func buildMessage(from string, msg ports.Message) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%q\r\n", attachmentBoundary)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", attachmentBoundary)
	buf.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTMLBody)
	buf.WriteString("\r\n")

	if len(msg.Attachment) > 0 {
		name := msg.AttachmentName
		if name == "" {
			name = "attachment.pdf"
		}
		fmt.Fprintf(&buf, "--%s\r\n", attachmentBoundary)
		fmt.Fprintf(&buf, "Content-Type: application/pdf; name=%q\r\n", name)
		buf.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n", name)
		buf.WriteString("\r\n")
		writeBase64Wrapped(&buf, msg.Attachment)
		buf.WriteString("\r\n")
	}

	fmt.Fprintf(&buf, "--%s--\r\n", attachmentBoundary)
	return buf.Bytes()
}

// writeBase64Wrapped emits base64 in 76-column lines per RFC 2045.
func writeBase64Wrapped(buf *bytes.Buffer, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	const lineLen = 76
	for len(encoded) > lineLen {
		buf.WriteString(encoded[:lineLen])
		buf.WriteString("\r\n")
		encoded = encoded[lineLen:]
	}
	buf.WriteString(encoded)
}
