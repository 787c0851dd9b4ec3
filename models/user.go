package models

// User is an account holder. The password hash lives only in the users table
// and is never part of this struct, so it cannot leak through a response.
type User struct {
	ID     int    `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	Email  string `json:"email" db:"email"`
	RoleID int    `json:"role_id" db:"role_id"`
}
