package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/lajubus/lajubus/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeatLock(t *testing.T) (*SeatLock, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := database.NewRedisClientFromRaw(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewSeatLock(client), mr
}

func TestSeatLock_AcquireAndRelease(t *testing.T) {
	lock, _ := newSeatLock(t)
	ctx := context.Background()

	busID, routeID := uuid.New(), uuid.New()

	unlock, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)

	// Second acquire on the same triple fails while the lock is held.
	_, err = lock.Lock(ctx, busID, routeID, "12A")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSeatLocked))

	unlock()

	// Released: the seat can be locked again.
	unlock2, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)
	unlock2()
}

func TestSeatLock_DifferentSeatsIndependent(t *testing.T) {
	lock, _ := newSeatLock(t)
	ctx := context.Background()

	busID, routeID := uuid.New(), uuid.New()

	unlockA, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)
	defer unlockA()

	unlockB, err := lock.Lock(ctx, busID, routeID, "12B")
	require.NoError(t, err)
	defer unlockB()

	otherBus := uuid.New()
	unlockC, err := lock.Lock(ctx, otherBus, routeID, "12A")
	require.NoError(t, err)
	defer unlockC()
}

func TestSeatLock_TTLReclaimsAbandonedLock(t *testing.T) {
	lock, mr := newSeatLock(t)
	ctx := context.Background()

	busID, routeID := uuid.New(), uuid.New()

	_, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)

	// Simulate a crashed holder: advance past the lock TTL.
	mr.FastForward(seatLockTTL + time.Second)

	unlock, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)
	unlock()
}

func TestSeatLock_StaleUnlockKeepsNewOwner(t *testing.T) {
	lock, mr := newSeatLock(t)
	ctx := context.Background()

	busID, routeID := uuid.New(), uuid.New()

	staleUnlock, err := lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)

	mr.FastForward(seatLockTTL + time.Second)

	_, err = lock.Lock(ctx, busID, routeID, "12A")
	require.NoError(t, err)

	// The first holder's deferred unlock fires after its TTL expired and
	// another issuance took the lock. It must not release the new owner.
	staleUnlock()

	_, err = lock.Lock(ctx, busID, routeID, "12A")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSeatLocked))
}
