package handler

import (
	"time"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

type operationSummaryResponse struct {
	ID        string `json:"id"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"created_at"`
}

type operationResponse struct {
	ID              string   `json:"id"`
	FromEmail       string   `json:"from_email"`
	Subject         string   `json:"subject"`
	Body            string   `json:"body"`
	SuccessReceiver []string `json:"success_receiver"`
	FailedReceiver  []string `json:"failed_receiver"`
	ResumeID        string   `json:"resume_id"`
	CreatedAt       string   `json:"created_at"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func toOperationResponse(op *domain.Operation) operationResponse {
	return operationResponse{
		ID:              op.ID,
		FromEmail:       op.FromEmail,
		Subject:         op.Subject,
		Body:            op.Body,
		SuccessReceiver: op.SuccessReceivers,
		FailedReceiver:  op.FailedReceivers,
		ResumeID:        op.ResumeID,
		CreatedAt:       formatTime(op.CreatedAt),
	}
}

func toOperationSummaries(summaries []domain.OperationSummary) []operationSummaryResponse {
	out := make([]operationSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, operationSummaryResponse{
			ID:        s.ID,
			Subject:   s.Subject,
			CreatedAt: formatTime(s.CreatedAt),
		})
	}
	return out
}
