package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"

	"recode/internal/util"
)

const lockRetryDelay = 2 * time.Second

// acquireEncoderLock takes an exclusive advisory lock at path, waiting for
// another recode process to release it. The returned func releases it.
func acquireEncoderLock(ctx context.Context, path string, logger *zap.Logger) (func(), error) {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		logger.Info("hardware encoder busy, waiting for other recode run", zap.String("lock", path))
		ok, err = lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("acquire lock: %s is held", path)
		}
	}
	logger.Debug("encoder lock acquired", zap.String("lock", path))

	return func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release encoder lock", zap.Error(err))
		}
	}, nil
}
