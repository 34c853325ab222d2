package repository

import (
	"context"

	"courierpay/internal/domain/model"
)

// PayoutRepository provides access to the withdrawal history.
type PayoutRepository interface {
	ListByParticipant(ctx context.Context, participantID int64) ([]model.Payout, error)
}
