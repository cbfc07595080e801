package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer firma un token con los claims dados.
// La expiración es política del issuer, no del caller.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
