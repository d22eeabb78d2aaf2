package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlot = errors.New("invalid slot")
	ErrInvalidDate = errors.New("invalid date")
)

const (
	FirstSlotHour = 8
	LastSlotHour  = 22

	DateLayout = "2006-01-02"
)

// Slot is a bookable time of day. Bookings last one hour.
type Slot struct {
	hour   int
	minute int
}

func NewSlot(hour, minute int) (Slot, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Slot{}, fmt.Errorf("%02d:%02d: %w", hour, minute, ErrInvalidSlot)
	}
	return Slot{hour: hour, minute: minute}, nil
}

// ParseSlot accepts "HH:MM" and the "HH:MM:SS" form returned by the store.
// Seconds are dropped so both spellings compare equal.
func ParseSlot(s string) (Slot, error) {
	if len(s) != 5 && !(len(s) == 8 && s[5] == ':') {
		return Slot{}, fmt.Errorf("%q: %w", s, ErrInvalidSlot)
	}
	if s[2] != ':' {
		return Slot{}, fmt.Errorf("%q: %w", s, ErrInvalidSlot)
	}
	hour, ok := twoDigits(s[0:2])
	if !ok {
		return Slot{}, fmt.Errorf("%q: %w", s, ErrInvalidSlot)
	}
	minute, ok := twoDigits(s[3:5])
	if !ok {
		return Slot{}, fmt.Errorf("%q: %w", s, ErrInvalidSlot)
	}
	if len(s) == 8 {
		if sec, ok := twoDigits(s[6:8]); !ok || sec > 59 {
			return Slot{}, fmt.Errorf("%q: %w", s, ErrInvalidSlot)
		}
	}
	return NewSlot(hour, minute)
}

// twoDigits parses exactly two ASCII digits, with no sign.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// MustParseSlot is for constants and tests.
func MustParseSlot(s string) Slot {
	slot, err := ParseSlot(s)
	if err != nil {
		panic(err)
	}
	return slot
}

// Slots returns the ordered daily catalog 08:00 through 22:00.
func Slots() []Slot {
	out := make([]Slot, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		out = append(out, Slot{hour: h})
	}
	return out
}

// IsOffered reports whether the slot belongs to the daily catalog.
func (s Slot) IsOffered() bool {
	return s.minute == 0 && s.hour >= FirstSlotHour && s.hour <= LastSlotHour
}

func (s Slot) Hour() int   { return s.hour }
func (s Slot) Minute() int { return s.minute }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

func (s Slot) Before(o Slot) bool {
	if s.hour != o.hour {
		return s.hour < o.hour
	}
	return s.minute < o.minute
}

// Date is a calendar day without time zone.
type Date struct {
	year  int
	month time.Month
	day   int
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf takes the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{year: y, month: m, day: d}
}

func (d Date) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// At combines the day and slot into an instant in loc.
func (d Date) At(slot Slot, loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, slot.hour, slot.minute, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Before(o Date) bool { return d.Time().Before(o.Time()) }
func (d Date) After(o Date) bool  { return d.Time().After(o.Time()) }
