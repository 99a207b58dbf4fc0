package handler

// sendInternshipForm mirrors the multipart fields of the bulk-send
// endpoint. The two file parts (emails, resume) are read separately
// from the form; only the scalar fields are validated here.
type sendInternshipForm struct {
	EmailSubject  string `form:"email_subject" validate:"required"`
	EmailBody     string `form:"email_body" validate:"required"`
	FileSeparator string `form:"file_separator"`
}

type sendInternshipResponse struct {
	SuccessReceiver []string `json:"success_receiver"`
	FailedReceiver  []string `json:"failed_receiver"`
	Saved           bool     `json:"saved"`
}
