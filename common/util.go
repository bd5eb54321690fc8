package common

import (
	"errors"
	"sync"
)

// RunParallel runs every fn in its own goroutine and waits for all of them.
// The returned error joins the failures in the order the functions were
// given, nil when all succeed.
func RunParallel(funcs ...func() error) error {
	results := make([]error, len(funcs))

	var wg sync.WaitGroup
	wg.Add(len(funcs))
	for i, fn := range funcs {
		go func(i int, fn func() error) {
			defer wg.Done()
			results[i] = fn()
		}(i, fn)
	}
	wg.Wait()

	return errors.Join(results...)
}
