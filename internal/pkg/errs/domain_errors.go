package errs

// Sentinel errors shared by the usecase and handler layers.
var (
	// Authentication
	ErrAuthRequired       = New("authentication required")
	ErrInvalidCredentials = New("invalid credentials")
	ErrEmailNotConfirmed  = New("email not confirmed")
	ErrEmailTaken         = New("email already registered")
	ErrInvalidCode        = New("invalid or expired confirmation code")

	// Booking
	ErrAlreadyBookedToday  = New("user already has a reservation on this date")
	ErrSlotTaken           = New("slot already reserved")
	ErrSlotInPast          = New("slot is in the past")
	ErrOutsideHorizon      = New("date is beyond the booking horizon")
	ErrUnknownCourt        = New("unknown court")
	ErrInvalidSlot         = New("invalid slot")
	ErrReservationNotFound = New("reservation not found")
	ErrForbidden           = New("reservation belongs to another user")
	ErrBookingInFlight     = New("a booking request is already pending")

	// Infrastructure
	ErrStoreUnavailable = New("record store unavailable")

	// Validation
	ErrDomainValidation = New("domain validation error")
)
