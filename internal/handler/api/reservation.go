package api

import (
	"net/http"
	"sync"

	"court-booking/internal/domain/auth"
	"court-booking/internal/domain/court"
	reqdto "court-booking/internal/handler/dto/request"
	resdto "court-booking/internal/handler/dto/response"
	"court-booking/internal/handler/httperr"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds     commands.BookingCommands
	q        queries.AvailabilityQueries
	catalog  *court.Catalog
	inFlight *inFlightSet
}

func NewReservationHandler(cmds commands.BookingCommands, q queries.AvailabilityQueries, catalog *court.Catalog) *ReservationHandler {
	return &ReservationHandler{
		cmds:     cmds,
		q:        q,
		catalog:  catalog,
		inFlight: newInFlightSet(),
	}
}

// @Summary Book a cell
// @Description Reserve one court for one hour. A member holds at most one reservation per date.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	var req reqdto.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation), httperr.MsgInvalidRequest)
		return
	}

	key := inFlightKey(s)
	if !h.inFlight.acquire(key) {
		httperr.Abort(c, errs.ErrBookingInFlight, httperr.MsgInFlight)
		return
	}
	defer h.inFlight.release(key)

	r, err := h.cmds.RequestBooking(c.Request.Context(), s, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, httperr.MsgBookingFailed)
		return
	}

	booked, _ := h.catalog.Get(r.CourtID())
	c.JSON(http.StatusCreated, resdto.FromBooking(r, booked))
}

// @Summary My reservations
// @Description Reservations of the signed-in member, split into upcoming and past
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MyReservationsResponse
// @Failure 401 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/me [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	view, err := h.q.ListMine(c.Request.Context(), s)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}

	res, err := resdto.FromMyReservations(view)
	if err != nil {
		httperr.Abort(c, err, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel reservation
// @Description Cancel one of the signed-in member's reservations
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	s, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrAuthRequired, httperr.MsgAuthRequired)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, errs.Mark(err, errs.ErrDomainValidation), httperr.MsgInvalidRequest)
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), s, id); err != nil {
		httperr.Abort(c, err, httperr.MsgCancelFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: resdto.MsgBookingCancelled})
}

func inFlightKey(s *auth.Session) string {
	if s.TokenID != "" {
		return s.TokenID
	}
	return s.UserID().String()
}

// inFlightSet rejects a second booking from the same session while the first is pending.
type inFlightSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

func newInFlightSet() *inFlightSet {
	return &inFlightSet{keys: make(map[string]struct{})}
}

func (s *inFlightSet) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.keys[key]; busy {
		return false
	}
	s.keys[key] = struct{}{}
	return true
}

func (s *inFlightSet) release(key string) {
	s.mu.Lock()
	delete(s.keys, key)
	s.mu.Unlock()
}
