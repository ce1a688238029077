package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/techreads/backend/internal/domain/errors"
	"github.com/techreads/backend/internal/domain/model"
	pkgAuth "github.com/techreads/backend/internal/pkg/auth"
	testhelpers "github.com/techreads/backend/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	return uc, users
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc, users := newAuthUseCase()

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"blank username", "  ", "reader@example.com", "secret"},
		{"blank password", "reader", "reader@example.com", ""},
		{"bad email", "reader", "not-an-email", "secret"},
	}
	for _, tc := range cases {
		if _, _, err := uc.Register(context.Background(), "", tc.username, tc.email, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("%s: expected invalid credentials, got %v", tc.name, err)
		}
	}
	if len(users.Users) != 0 {
		t.Fatal("no user should be created when validation fails")
	}
}

func TestAuthUseCaseRegisterDefaultsNameToUsername(t *testing.T) {
	uc, _ := newAuthUseCase()

	user, token, err := uc.Register(context.Background(), "  ", "reader", "reader@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected token")
	}
	if user.Name != "reader" {
		t.Fatalf("expected name to default to username, got %q", user.Name)
	}
	if user.Role != model.RoleUser {
		t.Fatalf("new accounts must hold the customer role, got %s", user.Role)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "Reader", "reader", "reader@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "Other", "reader", "other@example.com", "secret"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "Reader", "reader", "reader@example.com", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, token, err := uc.Authenticate(context.Background(), "reader", "secret"); err != nil || token == "" {
		t.Fatalf("expected successful authentication, got token %q err %v", token, err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "reader", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ghost", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{
		ParseFn: func(token string) (int64, string, error) {
			if token != "good" {
				return 0, "", pkgAuth.ErrInvalidToken
			}
			return 7, string(model.RoleAdmin), nil
		},
	})

	userID, role, err := uc.ParseToken("good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 7 || role != model.RoleAdmin {
		t.Fatalf("unexpected principal %d %s", userID, role)
	}

	if _, _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token for empty string, got %v", err)
	}
	if _, _, err := uc.ParseToken("bad"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
