package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "courierpay/internal/domain/errors"
	"courierpay/internal/domain/model"
	"courierpay/internal/domain/repository"
	pkgAuth "courierpay/internal/pkg/auth"
)

// AuthUseCase handles participant lifecycle and token management.
type AuthUseCase struct {
	participants repository.ParticipantRepository
	hasher       pkgAuth.PasswordHasher
	tokens       pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(participants repository.ParticipantRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{participants: participants, hasher: hasher, tokens: strategy}
}

// Register creates a new participant with login/password and returns auth token.
func (u *AuthUseCase) Register(ctx context.Context, login, password string) (*model.Participant, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	p, err := u.participants.Create(ctx, login, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(p.ID)
	if err != nil {
		return nil, "", err
	}

	return p, token, nil
}

// Authenticate validates credentials and returns auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Participant, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	p, err := u.participants.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(p.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(p.ID)
	if err != nil {
		return nil, "", err
	}

	return p, token, nil
}

// ParseToken extracts participant ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches participant by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Participant, error) {
	return u.participants.GetByID(ctx, id)
}
