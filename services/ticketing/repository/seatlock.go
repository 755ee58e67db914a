package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/logger"
	"github.com/lajubus/lajubus/services/ticketing"
)

// ErrSeatLocked is returned when another issuance currently holds the
// per-seat lock.
var ErrSeatLocked = errors.New("seat is locked by another request")

// seatLockTTL bounds how long an issuance may hold a seat. It only matters
// when a process dies between acquire and release; normal issuance releases
// within a request.
const seatLockTTL = 10 * time.Second

func seatLockKey(busID, routeID uuid.UUID, seat string) string {
	return fmt.Sprintf("seatlock:%s:%s:%s", busID, routeID, seat)
}

// Lock acquires the per-seat lock with SET NX. The returned UnlockFunc
// deletes the key; callers defer it immediately after a successful acquire.
func (l *SeatLock) Lock(ctx context.Context, busID, routeID uuid.UUID, seat string) (ticketing.UnlockFunc, error) {
	key := seatLockKey(busID, routeID, seat)
	token := uuid.NewString()

	acquired, err := l.redisClient.SetNX(ctx, key, token, seatLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire seat lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("seat %s on bus %s: %w", seat, busID, ErrSeatLocked)
	}

	unlock := func() {
		// Release must not inherit a cancelled request context.
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		held, err := l.redisClient.Get(releaseCtx, key)
		if err != nil || held != token {
			// TTL already reclaimed the lock, or another issuance owns it.
			return
		}
		if err := l.redisClient.Delete(releaseCtx, key); err != nil {
			logger.Warn("Failed to release seat lock",
				logger.String("key", key),
				logger.Err(err))
		}
	}

	return unlock, nil
}
