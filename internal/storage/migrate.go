package storage

import (
	"fmt"

	"github.com/habito-app/habito/internal/constants"
	"github.com/habito-app/habito/internal/kv"
	"github.com/habito-app/habito/internal/logger"
)

// CopyOwner duplicates every collection from one owner namespace to another.
// Keys absent under the old owner are skipped, not written empty. Copy runs
// before any deletion so a crash mid-migration leaves the old namespace
// intact.
func CopyOwner(s kv.Store, oldOwner, newOwner string) error {
	for _, base := range constants.BaseKeys() {
		raw, ok, err := s.Get(Key(oldOwner, base))
		if err != nil {
			return fmt.Errorf("failed to read %s during migration: %w", base, err)
		}
		if !ok {
			continue
		}
		if err := s.Set(Key(newOwner, base), raw); err != nil {
			return fmt.Errorf("failed to copy %s during migration: %w", base, err)
		}
	}
	logger.Info("Copied collections to new owner", "from", oldOwner, "to", newOwner)
	return nil
}

// DeleteOwner removes every collection under an owner namespace. Deletion
// failures are logged and skipped; leftover keys are orphaned data, not
// corruption.
func DeleteOwner(s kv.Store, owner string) {
	for _, base := range constants.BaseKeys() {
		if err := s.Delete(Key(owner, base)); err != nil {
			logger.Warn("Failed to remove old collection", "key", Key(owner, base), "error", err)
		}
	}
}
