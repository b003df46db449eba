package usecase

import (
	"context"
	"time"

	"github.com/dhomini-pereira/nexo-api/internal/domain"
)

// PushTokenUseCase manages device push tokens.
type PushTokenUseCase struct {
	tokenRepo PushTokenRepository
	idGen     IDGenerator
}

// NewPushTokenUseCase creates a new PushTokenUseCase.
func NewPushTokenUseCase(tokenRepo PushTokenRepository, idGen IDGenerator) *PushTokenUseCase {
	return &PushTokenUseCase{tokenRepo: tokenRepo, idGen: idGen}
}

// RegisterToken upserts a device token for a user. Registering the same
// token twice is a no-op.
func (uc *PushTokenUseCase) RegisterToken(ctx context.Context, userID, token string) (*domain.PushToken, error) {
	if token == "" {
		return nil, domain.ErrInvalidType
	}

	pt := &domain.PushToken{
		ID:        uc.idGen.Generate(),
		UserID:    userID,
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.tokenRepo.Register(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// DeleteToken removes a device token.
func (uc *PushTokenUseCase) DeleteToken(ctx context.Context, userID, token string) error {
	return uc.tokenRepo.Delete(ctx, userID, token)
}
