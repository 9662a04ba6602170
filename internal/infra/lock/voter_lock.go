// Package lock serializes writes to one voter's face data.
package lock

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"votegate/config"
	"votegate/internal/domain/service"
	"votegate/internal/errors"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "votegate:lock:voter:"

// ErrLockTimeout is returned when the lock could not be taken within the wait timeout.
var ErrLockTimeout = errors.New("voter lock wait timed out")

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// New picks the Redis lock when a client is available and the in-process lock otherwise.
func New(params Params) service.VoterLock {
	var lockCfg config.FaceLockConfig
	if params.Config.Face != nil {
		lockCfg = params.Config.Face.Lock
	}

	if params.Redis == nil {
		params.Logger.Info("Using in-process voter lock")

		return NewLocal()
	}

	return NewRedis(params.Redis, lockCfg, params.Logger)
}

type redisVoterLock struct {
	locker *redislock.Client
	cfg    config.FaceLockConfig
	logger *slog.Logger
	// token is fixed in tests; empty means redislock draws a random one.
	token string
}

// NewRedis builds a redislock-backed lock. While held, the key is refreshed every
// third of its TTL so a long enrollment batch or training run keeps it.
func NewRedis(rdb redislock.RedisClient, cfg config.FaceLockConfig, logger *slog.Logger) service.VoterLock {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = 100 * time.Millisecond
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 10 * time.Second
	}

	return &redisVoterLock{locker: redislock.New(rdb), cfg: cfg, logger: logger}
}

func (l *redisVoterLock) Acquire(ctx context.Context, voterID uuid.UUID) (context.Context, func(), error) {
	key := keyPrefix + voterID.String()

	waitCtx, cancel := context.WithTimeout(ctx, l.cfg.WaitTimeout)
	defer cancel()

	held, err := l.locker.Obtain(waitCtx, key, l.cfg.TTL, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(l.cfg.RetryInterval),
		Token:         l.token,
	})
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return nil, nil, errors.WithStack(ctx.Err())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, redislock.ErrNotObtained):
		return nil, nil, errors.WithStack(ErrLockTimeout)
	default:
		return nil, nil, errors.Wrap(err, "acquire voter lock")
	}

	lockCtx, lose := context.WithCancelCause(ctx)
	done := make(chan struct{})
	go l.keepAlive(lockCtx, lose, held, done)

	var once sync.Once
	release := func() {
		once.Do(func() {
			lose(context.Canceled)
			<-done
			l.release(held)
		})
	}

	return lockCtx, release, nil
}

// keepAlive refreshes the key until ctx ends. A failed refresh means another
// holder may already own the key, so ctx is cancelled with ErrVoterLockLost.
func (l *redisVoterLock) keepAlive(ctx context.Context, lose context.CancelCauseFunc, held *redislock.Lock, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.cfg.TTL / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := held.Refresh(ctx, l.cfg.TTL, nil); err != nil {
			if ctx.Err() != nil {
				return
			}
			l.logger.Warn("Voter lock lost", slog.String("key", held.Key()), slog.Any("error", err))
			lose(service.ErrVoterLockLost)

			return
		}
	}
}

// release runs on its own context so a cancelled request still frees the key.
func (l *redisVoterLock) release(held *redislock.Lock) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := held.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		l.logger.Warn("Failed to release voter lock", slog.String("key", held.Key()), slog.Any("error", err))
	}
}

// localVoterLock keeps one single-slot semaphore per voter.
type localVoterLock struct {
	mu    sync.Mutex
	slots map[uuid.UUID]chan struct{}
}

// NewLocal builds a lock valid within this process only. It never expires.
func NewLocal() service.VoterLock {
	return &localVoterLock{slots: make(map[uuid.UUID]chan struct{})}
}

func (l *localVoterLock) Acquire(ctx context.Context, voterID uuid.UUID) (context.Context, func(), error) {
	l.mu.Lock()
	slot, ok := l.slots[voterID]
	if !ok {
		slot = make(chan struct{}, 1)
		l.slots[voterID] = slot
	}
	l.mu.Unlock()

	select {
	case slot <- struct{}{}:
		lockCtx, cancel := context.WithCancel(ctx)
		var once sync.Once

		return lockCtx, func() {
			once.Do(func() {
				cancel()
				<-slot
			})
		}, nil
	case <-ctx.Done():
		return nil, nil, errors.WithStack(ctx.Err())
	}
}
