package user

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "Autre"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

func NewGender(s string) (Gender, error) {
	gender := Gender(s)
	if !gender.IsValid() {
		return "", ErrInvalidGender
	}
	return gender, nil
}
