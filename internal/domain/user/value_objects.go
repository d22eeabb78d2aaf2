package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrMissingName     = errors.New("first and last name are required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9 .\-]{6,20}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

// LocalPart is the text before '@'.
func (e Email) LocalPart() string {
	local, _, _ := strings.Cut(e.value, "@")
	return local
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Profile is the member metadata collected at sign-up.
type Profile struct {
	firstName string
	lastName  string
	phone     string
	gender    Gender
}

func NewProfile(firstName, lastName, phone, gender string) (Profile, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	phone = strings.TrimSpace(phone)

	if firstName == "" || lastName == "" {
		return Profile{}, ErrMissingName
	}
	if phone != "" && !phoneRegex.MatchString(phone) {
		return Profile{}, ErrInvalidPhone
	}
	g, err := NewGender(gender)
	if err != nil {
		return Profile{}, err
	}

	return Profile{firstName: firstName, lastName: lastName, phone: phone, gender: g}, nil
}

// ReconstructProfile skips validation for rows already accepted by the store.
func ReconstructProfile(firstName, lastName, phone string, gender Gender) Profile {
	return Profile{firstName: firstName, lastName: lastName, phone: phone, gender: gender}
}

func (p Profile) FirstName() string { return p.firstName }
func (p Profile) LastName() string  { return p.lastName }
func (p Profile) Phone() string     { return p.phone }
func (p Profile) Gender() Gender    { return p.gender }

const fallbackDisplayName = "Membre"

// DisplayName is "first last", else the email local part, else "Membre".
func DisplayName(firstName, lastName, email string) string {
	if full := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName)); full != "" {
		return full
	}
	if local, _, _ := strings.Cut(strings.TrimSpace(email), "@"); local != "" {
		return local
	}
	return fallbackDisplayName
}
