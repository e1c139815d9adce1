// SPDX-License-Identifier: MIT
package zenlex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/zenlex/types"
)

// Batch scanning errors.
var (
	ErrScanBatch = errors.New("failed to scan batch")

	ErrEmptyBatch         = errors.New("empty scan batch")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// ScanBatch tokenizes many sources concurrently over a worker pool.
//
// Every source gets an independent scan session; no mutable state crosses
// sessions. The context gates submission only, a running scan is pure
// computation over its in-memory buffer. Results for completed sessions are
// returned even when err is non-nil.
func ScanBatch(ctx context.Context, sources map[string]string, workers int) (results map[string]*Result, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrScanBatch, err)
		}
	}()

	if len(sources) < 1 {
		err = ErrEmptyBatch
		return
	}
	if workers < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidWorkerCount, workers)
		return
	}

	var pool *ants.Pool
	if pool, err = ants.NewPool(workers); err != nil {
		return
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup

		scanned types.SafeCounter
		errList types.ErrList
	)
	results = make(map[string]*Result, len(sources))

	for name, source := range sources {
		select {
		case <-ctx.Done():
			errList.Append(ctx.Err())
		default:
			name, source := name, source

			wg.Add(1)
			submitErr := pool.Submit(func() {
				defer wg.Done()

				resl := Scan(source)

				mu.Lock()
				results[name] = resl
				mu.Unlock()

				scanned.Inc()
			})
			if submitErr == nil {
				continue
			}

			wg.Done()
			errList.Append(fmt.Errorf("source (%s): %v", name, submitErr))
		}

		break
	}
	wg.Wait()

	fLogger.Debugf("scanned %d source(s): %s", scanned.Value(), spew.Sprint(results))

	err = errList.Err()

	return
}
