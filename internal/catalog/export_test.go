package catalog

import "time"

// SetNow swaps the clock used by BuildMetadata and returns a restore func.
func SetNow(f func() time.Time) func() {
	old := now
	now = f
	return func() { now = old }
}
