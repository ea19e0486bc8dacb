package auth

import "context"

// AuthVerifier verifica un token de sesión y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token de sesión para un usuario ya autenticado.
type TokenIssuer interface {
	Issue(ctx context.Context, username string) (string, error)
}
