package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryInterval = 10 * time.Millisecond

// lockSnapshot takes an exclusive lock on path+".lock" and returns its release func
func lockSnapshot(ctx context.Context, path string) (func() error, error) {
	fl := flock.New(path + ".lock")

	locked, err := fl.TryLockContext(ctx, lockRetryInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("failed to lock %s: lock held elsewhere", path)
	}

	return fl.Unlock, nil
}
