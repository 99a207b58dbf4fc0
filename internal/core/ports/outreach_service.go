package ports

import (
	"context"
	"io"
)

// Upload is one multipart file as received by the transport layer.
type Upload struct {
	Filename string
	Content  io.Reader
}

// BulkSendInput carries everything the orchestrator needs for one run.
// UserID is resolved from the access token by the transport layer.
type BulkSendInput struct {
	UserID     string
	Subject    string
	Body       string
	Separator  string
	Recipients *Upload // plain-text list, .txt
	Resume     *Upload // .pdf, retained and referenced by the Operation
}

// BulkSendResult is returned even on partial failure: a single stuck
// recipient never aborts the run. The two lists partition the parsed
// recipient list in input order.
type BulkSendResult struct {
	SuccessReceivers []string
	FailedReceivers  []string
	// Saved reports whether the Operation audit record was persisted.
	Saved bool
}

// OutreachService drives the bulk-send pipeline end to end.
type OutreachService interface {
	SendBulk(ctx context.Context, input BulkSendInput) (*BulkSendResult, error)
}
