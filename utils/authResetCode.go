package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/haniyashafiq/PRO-CRM/cache"
)

const resetCodeExpiry = 15 * time.Minute

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

// SetResetCode stores the reset code for a given email in Redis with a 15 minute expiry.
func SetResetCode(ctx context.Context, email, code string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Set(ctx, "reset_code:"+email, code, resetCodeExpiry)
}

// GetResetCode retrieves the reset code for a given email from Redis.
func GetResetCode(ctx context.Context, email string) (*string, error) {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	code, err := cacheInstance.Get(ctx, "reset_code:"+email)
	if err != nil {
		return nil, err
	}
	if code == "" {
		return nil, nil // no code outstanding for this email
	}
	return &code, nil
}

// DeleteResetCode deletes the reset code for a given email from Redis.
func DeleteResetCode(ctx context.Context, email string) error {
	cacheInstance, err := cache.NewCache()
	if err != nil {
		return err
	}
	return cacheInstance.Delete(ctx, "reset_code:"+email)
}
