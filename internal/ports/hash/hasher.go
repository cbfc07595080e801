package hash

// PasswordHasher abstrae el hashing one-way de passwords.
// El dominio nunca ve el password en claro después de Hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}
