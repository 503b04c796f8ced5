package concurrent

import "sync"

// Async runs exec on its own routine,
// returning only once the routine has started.
func Async(exec func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		wg.Done()
		exec()
	}()
	wg.Wait()
}
