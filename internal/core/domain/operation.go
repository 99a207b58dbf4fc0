package domain

import (
	"errors"
	"time"
)

var ErrOperationNotFound = errors.New("operation not found")

// Operation is the audit record of one bulk-send run. Records are
// append-only: there is no update or delete path.
type Operation struct {
	ID                string    `json:"id"`
	FromEmail         string    `json:"from_email"`
	Subject           string    `json:"subject"`
	Body              string    `json:"body"`
	SuccessReceivers  []string  `json:"success_receiver"`
	FailedReceivers   []string  `json:"failed_receiver"`
	ResumeID          string    `json:"resume_id"`
	UserID            string    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
}

// OperationSummary is the lightweight view used in list responses.
type OperationSummary struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
