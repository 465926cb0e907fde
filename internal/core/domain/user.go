package domain

import "strings"

type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// SplitFullName splits a full name on its last space, so middle names stay
// with the first name: "Jane Mary Doe" -> ("Jane Mary", "Doe").
func SplitFullName(name string) (first string, last string, err error) {
	trimmed := strings.TrimSpace(name)
	idx := strings.LastIndex(trimmed, " ")
	if idx < 0 {
		return "", "", ErrNameNotFull
	}
	return trimmed[:idx], trimmed[idx+1:], nil
}
