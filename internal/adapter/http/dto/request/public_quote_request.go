package request

import (
	"mime/multipart"

	"movequote/internal/usecase"
)

// PublicQuoteRequest is the multipart form submitted by the embeddable
// widget: customer identity fields plus optional photo/video uploads.
type PublicQuoteRequest struct {
	CustomerEmail   string `form:"customer_email" binding:"required,email"`
	CustomerName    string `form:"customer_name" binding:"required"`
	CustomerPhone   string `form:"customer_phone"`
	PickupAddress   string `form:"pickup_address"`
	DeliveryAddress string `form:"delivery_address"`
	MoveDate        string `form:"move_date"`
	Notes           string `form:"notes"`
}

// ToCommand opens every uploaded file and hands the readers to the use case.
// The returned closer releases them once the submission finished.
func (r PublicQuoteRequest) ToCommand(files []*multipart.FileHeader) (usecase.PublicSubmissionCommand, func(), error) {
	moveDate, err := resolveMoveDate(r.MoveDate)
	if err != nil {
		return usecase.PublicSubmissionCommand{}, func() {}, err
	}

	cmd := usecase.PublicSubmissionCommand{
		CustomerEmail:   r.CustomerEmail,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		MoveDate:        moveDate,
		Notes:           r.Notes,
	}

	var opened []multipart.File
	closeAll := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return usecase.PublicSubmissionCommand{}, func() {}, err
		}
		opened = append(opened, f)
		cmd.Files = append(cmd.Files, usecase.MediaUpload{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     f,
		})
	}
	return cmd, closeAll, nil
}
