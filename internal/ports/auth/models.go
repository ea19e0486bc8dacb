package auth

// Claims representa la identidad extraída del token de sesión.
type Claims struct {
	Username string
}

// IsAdmin: el modelo de autorización completo es el username literal "admin".
func (c Claims) IsAdmin() bool { return c.Username == "admin" }
