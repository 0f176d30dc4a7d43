// Package models contains the normalized entity types held by the external
// entity store. The store owns these rows; the engine only reads them. Each
// row type that crosses the store boundary carries a Normalize method, applied
// exactly once on decode, so downstream composers operate on guaranteed-shaped
// data.
package models

import "strings"

// User is a member of the workspace. Any foreign key elsewhere that names a
// user id may point at a row that no longer exists; callers resolve display
// names through the user directory, which degrades to a sentinel instead of
// failing.
type User struct {
	ID           string         `json:"id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	Department   string         `json:"department"`
	Phone        string         `json:"phone"`
	Bio          string         `json:"bio"`
	Availability string         `json:"availability"`
	Performance  int            `json:"performance"`
	Strengths    []string       `json:"strengths"`
	Dimensions   map[string]int `json:"dimensions"`
	Status       string         `json:"status"`
}

// DisplayName is the trimmed concatenation of first and last name.
func (u *User) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
}

// Normalize trims name fields. Role and status pass through unvalidated: the
// store is their source of truth and the UI renders unknown values verbatim.
func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Department = strings.TrimSpace(u.Department)
}
