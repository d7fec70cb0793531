package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/VivXwan/astrology-app/internal/domain"
)

type memUserRepo struct {
	byEmail map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range r.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memTokenRepo struct {
	tokens map[string]*domain.RefreshToken
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (r *memTokenRepo) Save(ctx context.Context, token *domain.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *memTokenRepo) Get(ctx context.Context, token string) (*domain.RefreshToken, error) {
	stored, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return stored, nil
}

func (r *memTokenRepo) Delete(ctx context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func setup(t *testing.T) (*Service, *memUserRepo, *memTokenRepo) {
	t.Helper()
	users := newMemUserRepo()
	tokens := newMemTokenRepo()
	cfg := &Config{
		JWTSecret:  "test-secret",
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 720 * time.Hour,
	}
	svc := New(users, tokens, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, users, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}

	pair, err := svc.Login(ctx, "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("token pair incomplete")
	}
	if pair.TokenType != "bearer" {
		t.Errorf("TokenType = %q, want bearer", pair.TokenType)
	}

	// The access token round-trips to the registered user.
	userID, err := svc.ParseAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token subject = %v, want %v", userID, user.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@example.com", "long enough"},
		{"empty email", "Asha", "", "long enough"},
		{"short password", "Asha", "a@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			if !domain.IsValidationError(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, "Other", "asha@example.com", "battery staple")
	if !domain.IsValidationError(err) {
		t.Errorf("duplicate email: expected ValidationError, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, "asha@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "correct horse"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, tokens := setup(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := svc.Login(ctx, "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	next, err := svc.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if next.RefreshToken == pair.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// The old token is revoked by rotation.
	if _, ok := tokens.tokens[pair.RefreshToken]; ok {
		t.Error("rotated refresh token still stored")
	}
	if _, err := svc.Refresh(ctx, pair.RefreshToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("reused refresh token: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshExpiredToken(t *testing.T) {
	svc, _, tokens := setup(t)
	ctx := context.Background()

	expired := &domain.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	tokens.tokens[expired.Token] = expired

	if _, err := svc.Refresh(ctx, expired.Token); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expired token: got %v, want ErrInvalidCredentials", err)
	}
	if _, ok := tokens.tokens[expired.Token]; ok {
		t.Error("expired token not deleted")
	}
}

func TestLogout(t *testing.T) {
	svc, _, tokens := setup(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Asha", "asha@example.com", "correct horse"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	pair, err := svc.Login(ctx, "asha@example.com", "correct horse")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := tokens.tokens[pair.RefreshToken]; ok {
		t.Error("refresh token survives logout")
	}

	// Logging out an unknown token is not an error.
	if err := svc.Logout(ctx, "unknown"); err != nil {
		t.Errorf("unknown token logout: %v", err)
	}
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc, _, _ := setup(t)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("token %q: got %v, want ErrInvalidCredentials", token, err)
		}
	}
}
