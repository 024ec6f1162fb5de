package game

import "time"

// Scheduler runs f once after d has elapsed. f may be called on any goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// timerScheduler schedules work with time.AfterFunc
type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
