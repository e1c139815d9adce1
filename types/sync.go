// SPDX-License-Identifier: NONE
package types

import (
	"errors"
	"sync"
)

type (
	// SafeCounter is a thread-safe counter.
	SafeCounter struct {
		m   sync.Mutex
		val int
	}

	// ErrList is a thread-safe error collector for concurrent operations.
	ErrList struct {
		m    sync.Mutex
		errs []error
	}
)

// Inc increments the counter.
func (c *SafeCounter) Inc() {
	c.m.Lock()
	defer c.m.Unlock()
	c.val++
}

// Value returns the current value of the counter.
func (c *SafeCounter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// Append records an error; nil errors are dropped.
func (e *ErrList) Append(err error) {
	if err == nil {
		return
	}

	e.m.Lock()
	defer e.m.Unlock()
	e.errs = append(e.errs, err)
}

// Err joins the recorded errors; nil when none were recorded.
func (e *ErrList) Err() error {
	e.m.Lock()
	defer e.m.Unlock()

	return errors.Join(e.errs...)
}
