package concurrent

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assertion tracks an expected number of events across routines.
type Assertion struct {
	counter  *Counter
	expected int
}

// NewAssertion creates an assertion for the given number of events.
func NewAssertion(expected int) *Assertion {
	wg := new(sync.WaitGroup)
	wg.Add(expected)
	return &Assertion{
		counter:  NewCounter(wg),
		expected: expected,
	}
}

// Expect tracks one event.
func (a *Assertion) Expect(v interface{}) {
	if a.expected == 0 {
		panic(fmt.Sprintf("unexpected event: %v", v))
	}
	a.counter.Track(v)
}

// Assert waits for all expected events and verifies the count.
func (a *Assertion) Assert(t *testing.T) {
	a.counter.waitGroup.Wait()
	assert.Equal(t, a.expected, a.counter.Get())
}
