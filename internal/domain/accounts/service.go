package accounts

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"pawtrack/internal/ports/auth"
	"pawtrack/internal/ports/hash"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailTaken       = errors.New("email already registered")
	ErrNotFound         = errors.New("user not found")

	// Mismo mensaje para email desconocido y password incorrecto,
	// para no filtrar cuál de los dos falló.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	minFullNameLen = 3
	maxFullNameLen = 150
	minPhoneLen    = 7
	maxPhoneLen    = 20
	minPasswordLen = 6
	maxPasswordLen = 100
)

type Service struct {
	repo   Repository
	hasher hash.PasswordHasher
	tokens auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, hasher hash.PasswordHasher, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type RegisterInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	fullName := strings.TrimSpace(in.FullName)
	if len(fullName) < minFullNameLen || len(fullName) > maxFullNameLen {
		return User{}, ErrInvalidInput
	}

	email, ok := normalizeEmail(in.Email)
	if !ok {
		return User{}, ErrInvalidInput
	}

	phone := strings.TrimSpace(in.PhoneNumber)
	if len(phone) < minPhoneLen || len(phone) > maxPhoneLen {
		return User{}, ErrInvalidInput
	}

	if len(in.Password) < minPasswordLen || len(in.Password) > maxPasswordLen {
		return User{}, ErrInvalidInput
	}
	if in.Password != in.ConfirmPassword {
		return User{}, ErrPasswordMismatch
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: hashed,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login verifica credenciales y devuelve un JWT firmado.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	normalized, ok := normalizeEmail(email)
	if !ok {
		return "", ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(ctx, auth.Claims{UserID: u.ID, Email: u.Email})
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

func normalizeEmail(email string) (string, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(email) > 150 {
		return "", false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", false
	}
	return email, true
}
