package repository

import (
	"context"

	"courierpay/internal/domain/model"
)

// ParticipantRepository describes persistence operations for identities.
type ParticipantRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.Participant, error)
	GetByLogin(ctx context.Context, login string) (*model.Participant, error)
	GetByID(ctx context.Context, id int64) (*model.Participant, error)
	// Ensure returns the participant with the given login, creating it
	// when absent. Used to fix the administrator at ledger creation.
	Ensure(ctx context.Context, login, passwordHash string) (*model.Participant, error)
}
