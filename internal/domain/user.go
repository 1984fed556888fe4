package domain

import "time"

type Gender string

const (
	GenderMale           Gender = "Male"
	GenderFemale         Gender = "Female"
	GenderNonBinary      Gender = "Non-binary"
	GenderPreferNotToSay Gender = "Prefer not to say"
)

// ParseGender maps a raw string onto the closed gender enumeration.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale, GenderFemale, GenderNonBinary, GenderPreferNotToSay:
		return Gender(s), true
	}
	return "", false
}

// User represents a registered account. PasswordHash holds the bcrypt hash;
// the plaintext password is never stored or returned.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	DateOfBirth  time.Time
	Gender       Gender
	Username     string
	Purpose      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
