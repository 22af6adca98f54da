package accounts

import "time"

// Account es el Owner: dueño de cero o más gatos.
type Account struct {
	ID           string
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
