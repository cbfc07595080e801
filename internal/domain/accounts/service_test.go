package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"pawtrack/internal/ports/auth"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID    map[string]User
	byEmail map[string]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}, byEmail: map[string]string{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if u.ID == "" {
		return errors.New("repo: id required")
	}
	if _, taken := r.byEmail[u.Email]; taken {
		return ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) FindByEmail(ctx context.Context, email string) (User, error) {
	id, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byID[id], nil
}

// fakeHasher es determinístico para poder asertar sin bcrypt real.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer devuelve un token legible con los claims adentro.
type fakeIssuer struct{}

func (fakeIssuer) Issue(_ context.Context, c auth.Claims) (string, error) {
	return fmt.Sprintf("token|%s|%s", c.UserID, c.Email), nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	return NewService(repo, fakeHasher{}, fakeIssuer{}), repo
}

func validRegister() RegisterInput {
	return RegisterInput{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		PhoneNumber:     "5551234567",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_HashesPassword(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected non-empty id")
	}
	if u.PasswordHash != "hashed:secret123" {
		t.Fatalf("expected hashed password stored, got %q", u.PasswordHash)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 user persisted, got %d", len(repo.byID))
	}
}

func TestService_Register_NormalizesEmail(t *testing.T) {
	svc, _ := newTestService()

	in := validRegister()
	in.Email = "  Jane@Example.COM "
	u, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
}

func TestService_Register_PasswordMismatch(t *testing.T) {
	svc, repo := newTestService()

	in := validRegister()
	in.ConfirmPassword = "something-else"

	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no user persisted on mismatch")
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestService()

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register #1: %v", err)
	}

	in := validRegister()
	in.FullName = "Other Person"
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected user count unchanged, got %d", len(repo.byID))
	}
}

func TestService_Register_Rejections(t *testing.T) {
	svc, _ := newTestService()

	cases := map[string]func(*RegisterInput){
		"short name":     func(in *RegisterInput) { in.FullName = "ab" },
		"long name":      func(in *RegisterInput) { in.FullName = strings.Repeat("x", 151) },
		"bad email":      func(in *RegisterInput) { in.Email = "not-an-email" },
		"empty email":    func(in *RegisterInput) { in.Email = "" },
		"short phone":    func(in *RegisterInput) { in.PhoneNumber = "123" },
		"long phone":     func(in *RegisterInput) { in.PhoneNumber = strings.Repeat("9", 21) },
		"short password": func(in *RegisterInput) { in.Password = "abc"; in.ConfirmPassword = "abc" },
	}

	for name, mutate := range cases {
		in := validRegister()
		mutate(&in)
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestService_Login_RoundTrip(t *testing.T) {
	svc, _ := newTestService()

	u, err := svc.Register(context.Background(), validRegister())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	token, err := svc.Login(context.Background(), "jane@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	want := fmt.Sprintf("token|%s|%s", u.ID, u.Email)
	if token != want {
		t.Fatalf("expected token with user claims, got %q want %q", token, want)
	}
}

func TestService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret123")
	_, errWrongPw := svc.Login(context.Background(), "jane@example.com", "wrong-password")

	if !errors.Is(errUnknown, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	// Mismo texto en ambos casos: no filtrar cuál falló.
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("expected identical error messages, got %q vs %q",
			errUnknown.Error(), errWrongPw.Error())
	}
}

func TestService_Login_EmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Register(context.Background(), validRegister()); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "JANE@example.com", "secret123"); err != nil {
		t.Fatalf("expected login with uppercased email to work, got %v", err)
	}
}
