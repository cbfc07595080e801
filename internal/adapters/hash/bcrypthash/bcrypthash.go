package bcrypthash

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher implementa hash.PasswordHasher con bcrypt.
type Hasher struct {
	cost int
}

// New crea un Hasher. cost <= 0 usa el default de bcrypt.
func New(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *Hasher) Compare(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}
