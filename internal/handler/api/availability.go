package api

import (
	"net/http"

	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List courts
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.CourtsResponse
// @Router /courts [get]
func (h *AvailabilityHandler) Courts(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.CourtsResponse{Courts: h.q.Courts()})
}

// @Summary List bookable slots
// @Tags availability
// @Produce json
// @Success 200 {object} resdto.SlotsResponse
// @Router /slots [get]
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.SlotsResponse{Slots: h.q.Slots()})
}

// @Summary Availability grid
// @Description One row per slot with one cell per court for the given date (today when omitted)
// @Tags availability
// @Security BearerAuth
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.GridView
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /availability [get]
func (h *AvailabilityHandler) Grid(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	grid, err := h.q.Grid(c.Request.Context(), s, c.Query("date"))
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, grid)
}
