package reservation

type CellStatus string

const (
	StatusAvailable CellStatus = "available"
	StatusReserved  CellStatus = "reserved"
	StatusPast      CellStatus = "past"
)

func (s CellStatus) String() string {
	return string(s)
}

// Label is the wording shown on the booking grid.
func (s CellStatus) Label() string {
	switch s {
	case StatusReserved:
		return "Réservé"
	case StatusPast:
		return "Passé"
	default:
		return "Disponible"
	}
}

// Cell is the state of one (court, slot) pair on a given date.
type Cell struct {
	Status   CellStatus
	BookedBy string
}

func (c Cell) IsBookable() bool {
	return c.Status == StatusAvailable
}
