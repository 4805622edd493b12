package booking

import "time"

// Timer is a handle to a deferred task.
type Timer interface {
	// Stop prevents the task from running. It returns false if the task
	// already ran or was stopped.
	Stop() bool
}

// Scheduler runs fire-once deferred tasks.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemScheduler schedules tasks on the runtime timer.
type SystemScheduler struct{}

// AfterFunc implements Scheduler using time.AfterFunc.
func (SystemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
