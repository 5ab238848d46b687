package checks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"rein-stock/core/reconcile"
)

// CheckCache reports whether a snapshot has been persisted and how old it is.
// A missing file is a warning: the service is healthy but has never synced.
func CheckCache(store reconcile.Store, now time.Time) Result {
	if _, err := os.Stat(store.Path()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Status: StatusWarn, Detail: "no snapshot has been saved yet"}
		}
		return failed(err)
	}

	snap := store.Load()
	if snap.GeneratedAt.IsZero() {
		return Result{Status: StatusWarn, Detail: "snapshot file is empty or unreadable"}
	}

	age := now.Sub(snap.GeneratedAt).Truncate(time.Second)
	return Result{
		Status: StatusOK,
		Detail: fmt.Sprintf("%d SKUs, generated %s ago", snap.Len(), age),
	}
}
