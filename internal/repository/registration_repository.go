package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cardquest-service/internal/models"

	"github.com/redis/go-redis/v9"
)

const registrationTTL = 24 * time.Hour

// RegistrationRepository keeps registrations that have been started
// but not completed. The companion bot finishes the flow; entries it
// never picks up expire with the TTL.
type RegistrationRepository struct {
	client *redis.Client
}

func NewRegistrationRepository(client *redis.Client) *RegistrationRepository {
	return &RegistrationRepository{client: client}
}

func registrationKey(cardHash string) string {
	return "quest:registration:" + cardHash
}

func (r *RegistrationRepository) Save(ctx context.Context, reg *models.PendingRegistration) error {
	val, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("error saving pending registration: %s", err)
	}
	if err := r.client.Set(ctx, registrationKey(reg.CardHash), val, registrationTTL).Err(); err != nil {
		return fmt.Errorf("error saving pending registration: %s", err)
	}
	return nil
}

// Find returns nil with a nil error when no registration is pending
// for the hash.
func (r *RegistrationRepository) Find(ctx context.Context, cardHash string) (*models.PendingRegistration, error) {
	val, err := r.client.Get(ctx, registrationKey(cardHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading pending registration: %s", err)
	}
	var reg models.PendingRegistration
	if err := json.Unmarshal(val, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
