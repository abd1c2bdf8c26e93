package ui

import (
	"fyne.io/fyne/v2"
)

// Runner executes blocking work away from the UI goroutine
type Runner func(task func())

// GoRunner runs every task on its own goroutine
func GoRunner(task func()) {
	go task()
}

// orDefault returns run, or GoRunner when run is nil
func (run Runner) orDefault() Runner {
	if run == nil {
		return GoRunner
	}
	return run
}

// async runs work through run and delivers its result to done on the UI goroutine
func async[T any](run Runner, work func() (T, error), done func(T, error)) {
	run.orDefault()(func() {
		v, err := work()
		fyne.Do(func() {
			done(v, err)
		})
	})
}
