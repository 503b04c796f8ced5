package buffer

import "github.com/drakos74/line-fit/ols"

// Window is a fixed size rolling window of paired observations that refits
// the line over its retained contents.
type Window struct {
	buffer *MultiBuffer
	opts   []ols.Option
}

// NewWindow creates a rolling window of the given size.
// The options are applied on every refit.
func NewWindow(size int, opts ...ols.Option) *Window {
	return &Window{
		buffer: NewMultiBuffer(size),
		opts:   opts,
	}
}

// Push adds a pair to the window. It returns true once the window is at
// capacity, e.g. when pushing starts evicting the oldest pairs.
func (w *Window) Push(x, y float64) bool {
	_, evicted := w.buffer.Push(x, y)
	return evicted
}

// Len returns the number of retained pairs.
func (w *Window) Len() int {
	return w.buffer.Len()
}

// Series returns the retained pairs as two aligned series.
func (w *Window) Series() ([]float64, []float64) {
	return w.buffer.Series()
}

// Line returns the point estimates of the least squares line over the
// retained pairs.
func (w *Window) Line() (float64, float64, error) {
	xx, yy := w.buffer.Series()
	return ols.Line(xx, yy)
}

// Fit refits the full regression over the retained pairs.
func (w *Window) Fit() (*ols.Result, error) {
	xx, yy := w.buffer.Series()
	return ols.Fit(xx, yy, w.opts...)
}
