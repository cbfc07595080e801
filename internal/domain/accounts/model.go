package accounts

import "time"

// User representa una cuenta registrada. El hash del password vive solo
// acá y en el store; nunca sale en respuestas HTTP.
type User struct {
	ID string

	FullName    string
	Email       string // único, en minúsculas
	PhoneNumber string

	PasswordHash string
	CreatedAt    time.Time
}
