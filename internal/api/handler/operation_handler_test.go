package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/applyflow/outreach-system/internal/core/domain"
)

type stubOperationService struct {
	listFn func(ctx context.Context, userID string) ([]domain.OperationSummary, error)
	getFn  func(ctx context.Context, operationID, userID string) (*domain.Operation, error)
}

func (s *stubOperationService) ListByUser(ctx context.Context, userID string) ([]domain.OperationSummary, error) {
	return s.listFn(ctx, userID)
}

func (s *stubOperationService) GetByID(ctx context.Context, operationID, userID string) (*domain.Operation, error) {
	return s.getFn(ctx, operationID, userID)
}

func TestOperationHandler_List_Success(t *testing.T) {
	e := newTestEcho()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubOperationService{
		listFn: func(ctx context.Context, userID string) ([]domain.OperationSummary, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return []domain.OperationSummary{
				{ID: "op2", Subject: "second", CreatedAt: created.Add(time.Hour)},
				{ID: "op1", Subject: "first", CreatedAt: created},
			}, nil
		},
	}
	handler := NewOperationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/operations/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["id"] != "op2" || resp[1]["id"] != "op1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp[1]["created_at"] != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected created_at: %v", resp[1]["created_at"])
	}
}

func TestOperationHandler_List_MissingAuth(t *testing.T) {
	e := newTestEcho()
	stub := &stubOperationService{
		listFn: func(ctx context.Context, userID string) ([]domain.OperationSummary, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOperationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/operations/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestOperationHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubOperationService{
		getFn: func(ctx context.Context, operationID, userID string) (*domain.Operation, error) {
			if operationID != "op1" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", operationID, userID)
			}
			return &domain.Operation{
				ID:               "op1",
				FromEmail:        "alice@example.com",
				Subject:          "Internship application",
				SuccessReceivers: []string{"a@x.com"},
				FailedReceivers:  []string{},
				ResumeID:         "res-1",
				UserID:           "u1",
				CreatedAt:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	handler := NewOperationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/operations/op1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("operation_id")
	c.SetParamValues("op1")
	c.Set("user_id", "u1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "op1" || resp["from_email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, hasUser := resp["user_id"]; hasUser {
		t.Fatalf("user_id must not be exposed: %+v", resp)
	}
	failed, ok := resp["failed_receiver"].([]any)
	if !ok || len(failed) != 0 {
		t.Fatalf("expected empty failed list, got %v", resp["failed_receiver"])
	}
}

func TestOperationHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	stub := &stubOperationService{
		getFn: func(ctx context.Context, operationID, userID string) (*domain.Operation, error) {
			return nil, domain.ErrOperationNotFound
		},
	}
	handler := NewOperationHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/operations/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("operation_id")
	c.SetParamValues("ghost")
	c.Set("user_id", "u1")

	_ = handler.Get(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
