package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "courierpay/internal/domain/errors"
	pkgAuth "courierpay/internal/pkg/auth"
	testhelpers "courierpay/internal/test"
)

func newStrategyStub() testhelpers.StrategyStub {
	return testhelpers.StrategyStub{
		IssueFn: func(participantID int64) (string, error) {
			return fmt.Sprintf("token-%d", participantID), nil
		},
		ParseFn: func(token string) (int64, error) {
			var id int64
			if _, err := fmt.Sscanf(token, "token-%d", &id); err != nil {
				return 0, pkgAuth.ErrInvalidToken
			}
			return id, nil
		},
	}
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	repo := testhelpers.NewParticipantRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	p, token, err := uc.Register(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected participant to have ID assigned")
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
	stored, err := repo.GetByLogin(ctx, "alice")
	if err != nil {
		t.Fatalf("expected participant in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	repo := testhelpers.NewParticipantRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "bob", "secret"); err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob", "secret"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseRegisterRejectsEmptyCredentials(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewParticipantRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, _, err := uc.Register(context.Background(), "  ", "pw"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "login", ""); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	repo := testhelpers.NewParticipantRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, newStrategyStub())

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "carol", "123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := uc.Authenticate(ctx, "carol", "bad"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials error, got %v", err)
	}
	if _, _, err := uc.Authenticate(ctx, "nobody", "pw"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown login, got %v", err)
	}

	_, token, err := uc.Authenticate(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	uc := NewAuthUseCase(testhelpers.NewParticipantRepositoryStub(), testhelpers.HasherStub{}, newStrategyStub())

	if _, err := uc.ParseToken(""); err != pkgAuth.ErrInvalidToken {
		t.Fatalf("expected invalid token error for empty token, got %v", err)
	}

	id, err := uc.ParseToken("token-9")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected participant 9, got %d", id)
	}
}
