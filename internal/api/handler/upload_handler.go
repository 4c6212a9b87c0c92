package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// UploadHandler handles multipart file uploads and admin review listings.
type UploadHandler struct {
	service ports.UploadService
}

func NewUploadHandler(service ports.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Create streams the uploaded file to object storage and records its
// metadata. Admins may upload on behalf of another user via the userId
// form field.
//
// @Summary      Upload a file
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file    formData  file    true   "File payload"
// @Param        userId  formData  string  false  "Owner account (admins only)"
// @Success      201     {object}  uploadResponse
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/uploads [post]
func (h *UploadHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	up, err := h.service.Create(c.Request().Context(), sess, ports.CreateUploadInput{
		UserID:      c.FormValue("userId"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, uploadResponse{
		ID:         up.ID,
		UserID:     up.UserID,
		Filename:   up.Filename,
		StorageURL: up.StorageURL,
		CreatedAt:  up.CreatedAt,
	})
}

// List returns all uploads with owner names for admin review.
//
// @Summary      List uploads
// @Tags         uploads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   uploadResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/uploads [get]
func (h *UploadHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	resp := make([]uploadResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, uploadResponse{
			ID:         v.ID,
			UserID:     v.UserID,
			OwnerName:  v.OwnerName,
			Filename:   v.Filename,
			StorageURL: v.StorageURL,
			CreatedAt:  v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
