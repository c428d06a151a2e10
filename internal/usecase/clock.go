package usecase

import "time"

// UTCClock is the production Clock.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
