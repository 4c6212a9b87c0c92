package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// ShiftHandler handles HTTP requests for shift assignments.
type ShiftHandler struct {
	service ports.ShiftService
}

func NewShiftHandler(service ports.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

// List returns shifts visible to the caller. Admins see all shifts
// (optionally narrowed with ?userId=); users see their own.
//
// @Summary      List shifts
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  false  "Scope to one user's shifts"
// @Success      200     {array}   shiftResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /v1/shifts [get]
func (h *ShiftHandler) List(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), sess, c.QueryParam("userId"))
	if err != nil {
		return err
	}

	resp := make([]shiftResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, shiftResponse{
			ID:        v.ID,
			UserID:    v.UserID,
			OwnerName: v.OwnerName,
			StartTime: v.StartTime,
			EndTime:   v.EndTime,
			Location:  v.Location,
			CreatedAt: v.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create assigns a shift to a user. A nonexistent owner is invalid input,
// the same as a malformed time window.
//
// @Summary      Assign a shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShiftRequest  true  "Shift details"
// @Success      201   {object}  shiftResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/shifts [post]
func (h *ShiftHandler) Create(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createShiftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	shift, err := h.service.Create(c.Request().Context(), sess, ports.CreateShiftInput{
		UserID:    req.UserID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Location:  req.Location,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toShiftResponse(shift))
}

// Delete removes a shift assignment.
//
// @Summary      Delete a shift
// @Tags         shifts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Shift id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), sess, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, deletedResponse{Message: "shift deleted"})
}

func toShiftResponse(s *domain.Shift) shiftResponse {
	return shiftResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		Location:  s.Location,
		CreatedAt: s.CreatedAt,
	}
}
