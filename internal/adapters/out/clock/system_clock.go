// Package clock provides the wall clock used by commands and statistics.
package clock

import "time"

// SystemClock reads the local wall clock.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now() }
