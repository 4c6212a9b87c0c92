package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// MessageHandler handles HTTP requests for the admin inbox.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create records a message. The author defaults to the caller; admins may
// attribute it to another account via user_id.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMessageRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.service.Create(c.Request().Context(), sess, ports.CreateMessageInput{
		Content: req.Content,
		UserID:  req.UserID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{
		ID:        msg.ID,
		UserID:    msg.UserID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	})
}

// List returns the admin inbox with author names.
//
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), sess)
	if err != nil {
		return err
	}

	resp := make([]messageResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, messageResponse{
			ID:         v.ID,
			UserID:     v.UserID,
			AuthorName: v.AuthorName,
			Content:    v.Content,
			CreatedAt:  v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
