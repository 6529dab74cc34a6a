package ports

import "time"

// Clock supplies the current time to the core.
type Clock interface {
	Now() time.Time
}
