package auth

// Claims representa la identidad autenticada extraída de la sesión.
type Claims struct {
	UserID   string
	Username string
}
