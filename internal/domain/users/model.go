package users

// User es una credencial registrada. El username es la clave primaria.
// El hash puede ser bcrypt (altas nuevas) o sha256 hex sin salt (datos
// legados del archivo users.json original).
type User struct {
	Username     string
	PasswordHash string
}
