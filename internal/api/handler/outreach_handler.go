package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/applyflow/outreach-system/internal/core/domain"
	"github.com/applyflow/outreach-system/internal/core/ports"
)

// OutreachHandler handles HTTP requests for the bulk-send pipeline.
type OutreachHandler struct {
	service ports.OutreachService
}

func NewOutreachHandler(service ports.OutreachService) *OutreachHandler {
	return &OutreachHandler{service: service}
}

// SendInternship handles POST /api/email/send-internship.
//
// @Summary      Send a personalized application email to every recipient
// @Tags         email
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        email_subject   formData  string  true  "Subject line"
// @Param        email_body      formData  string  true  "HTML body"
// @Param        file_separator  formData  string  false "Recipient separator (defaults to newline)"
// @Param        emails          formData  file    true  "Recipient list (.txt)"
// @Param        resume          formData  file    true  "Resume (.pdf)"
// @Success      200  {object}  sendInternshipResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/email/send-internship [post]
func (h *OutreachHandler) SendInternship(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var form sendInternshipForm
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&form); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	emails, emailsFile, err := formUpload(c, "emails")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "emails file is required"})
	}
	defer emailsFile.Close()

	resume, resumeFile, err := formUpload(c, "resume")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "resume file is required"})
	}
	defer resumeFile.Close()

	result, err := h.service.SendBulk(c.Request().Context(), ports.BulkSendInput{
		UserID:     userID,
		Subject:    form.EmailSubject,
		Body:       form.EmailBody,
		Separator:  form.FileSeparator,
		Recipients: emails,
		Resume:     resume,
	})
	if err != nil {
		if errors.Is(err, domain.ErrBadInput) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if errors.Is(err, domain.ErrConnectionFailed) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "smtp connection failed"})
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "user not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, sendInternshipResponse{
		SuccessReceiver: result.SuccessReceivers,
		FailedReceiver:  result.FailedReceivers,
		Saved:           result.Saved,
	})
}

// formUpload opens a named multipart file part. The caller owns the
// returned closer.
func formUpload(c echo.Context, name string) (*ports.Upload, multipart.File, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &ports.Upload{Filename: header.Filename, Content: file}, file, nil
}
