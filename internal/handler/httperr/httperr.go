package httperr

import (
	"errors"
	"net/http"

	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// ReasonDetail carries the machine-readable reason next to the user-facing message.
type ReasonDetail struct {
	Reason string `json:"reason"`
}

// French user-facing messages.
const (
	MsgAlreadyBookedToday = "Vous avez déjà une réservation pour cette date. Limite : 1 heure par jour."
	MsgSlotTaken          = "Ce créneau vient d'être réservé. Veuillez en choisir un autre."
	MsgSlotInPast         = "Ce créneau est déjà passé."
	MsgOutsideHorizon     = "Cette date n'est pas encore ouverte à la réservation."
	MsgUnknownCourt       = "Court inconnu."
	MsgInvalidSlot        = "Créneau invalide."
	MsgNotFound           = "Réservation introuvable."
	MsgForbidden          = "Cette réservation ne vous appartient pas."
	MsgInFlight           = "Une réservation est déjà en cours de traitement."
	MsgAuthRequired       = "Veuillez vous connecter."
	MsgInvalidCredentials = "Email ou mot de passe incorrect."
	MsgEmailNotConfirmed  = "Veuillez confirmer votre adresse email avant de vous connecter."
	MsgEmailTaken         = "Un compte existe déjà avec cette adresse email."
	MsgInvalidCode        = "Lien de confirmation invalide ou expiré."
	MsgInvalidRequest     = "Requête invalide."
	MsgTooManyRequests    = "Trop de tentatives. Veuillez patienter."
	MsgBookingFailed      = "Erreur lors de la réservation. Veuillez réessayer."
	MsgCancelFailed       = "Erreur lors de l'annulation. Veuillez réessayer."
	MsgServiceUnavailable = "Service momentanément indisponible. Veuillez réessayer."
	MsgInternal           = "Erreur interne. Veuillez réessayer."
)

type mapping struct {
	target error
	status int
	msg    string
	reason string
}

// Order matters: the first sentinel matched by errors.Is wins.
var mappings = []mapping{
	{errs.ErrAlreadyBookedToday, http.StatusConflict, MsgAlreadyBookedToday, commands.ReasonAlreadyBookedToday},
	{errs.ErrSlotTaken, http.StatusConflict, MsgSlotTaken, commands.ReasonSlotTaken},
	{errs.ErrSlotInPast, http.StatusConflict, MsgSlotInPast, commands.ReasonSlotInPast},
	{errs.ErrBookingInFlight, http.StatusTooManyRequests, MsgInFlight, "in-flight"},
	{errs.ErrOutsideHorizon, http.StatusBadRequest, MsgOutsideHorizon, "outside-horizon"},
	{errs.ErrUnknownCourt, http.StatusBadRequest, MsgUnknownCourt, "unknown-court"},
	{errs.ErrInvalidSlot, http.StatusBadRequest, MsgInvalidSlot, "invalid-slot"},
	{errs.ErrReservationNotFound, http.StatusNotFound, MsgNotFound, "not-found"},
	{errs.ErrForbidden, http.StatusForbidden, MsgForbidden, "forbidden"},
	{errs.ErrInvalidCredentials, http.StatusUnauthorized, MsgInvalidCredentials, "invalid-credentials"},
	{errs.ErrEmailNotConfirmed, http.StatusForbidden, MsgEmailNotConfirmed, "email-not-confirmed"},
	{errs.ErrEmailTaken, http.StatusConflict, MsgEmailTaken, "email-taken"},
	{errs.ErrInvalidCode, http.StatusBadRequest, MsgInvalidCode, "invalid-code"},
	{errs.ErrAuthRequired, http.StatusUnauthorized, MsgAuthRequired, "auth-required"},
	{errs.ErrDomainValidation, http.StatusBadRequest, MsgInvalidRequest, "validation"},
	{errs.ErrStoreUnavailable, http.StatusServiceUnavailable, "", "store-unavailable"},
}

// Classify maps err to a status, a message and a reason. Store failures and unknown errors use
// fallbackMsg so every operation can phrase its own retry hint.
func Classify(err error, fallbackMsg string) (int, string, string) {
	for _, m := range mappings {
		if errors.Is(err, m.target) {
			msg := m.msg
			if msg == "" {
				msg = fallbackMsg
			}
			return m.status, msg, m.reason
		}
	}
	return http.StatusInternalServerError, fallbackMsg, "internal"
}

// Abort classifies err and aborts the request with the matching JSON body.
func Abort(c *gin.Context, err error, fallbackMsg string) {
	status, msg, reason := Classify(err, fallbackMsg)
	AbortWithError(c, status, err, msg, ReasonDetail{Reason: reason})
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
