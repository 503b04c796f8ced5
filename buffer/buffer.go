package buffer

// MultiBuffer is a fixed size queue of paired observations.
type MultiBuffer struct {
	size   int
	values [][2]float64
}

// NewMultiBuffer creates a new buffer of the given size.
func NewMultiBuffer(size int) *MultiBuffer {
	return &MultiBuffer{
		size:   size,
		values: make([][2]float64, 0),
	}
}

// Push adds a pair to the buffer.
// Beyond capacity it evicts and returns the oldest pair.
func (b *MultiBuffer) Push(x, y float64) ([2]float64, bool) {
	b.values = append(b.values, [2]float64{x, y})
	if len(b.values) > b.size {
		value := b.values[0]
		b.values = b.values[1:]
		return value, true
	}
	return [2]float64{}, false
}

// Len returns the current length of the buffer.
func (b *MultiBuffer) Len() int {
	return len(b.values)
}

// Last returns the last pair added to the buffer.
func (b *MultiBuffer) Last() [2]float64 {
	if size := len(b.values); size > 0 {
		return b.values[size-1]
	}
	return [2]float64{}
}

// Get returns the buffered pairs in the order they were added.
func (b *MultiBuffer) Get() [][2]float64 {
	vv := make([][2]float64, len(b.values))
	copy(vv, b.values)
	return vv
}

// Series returns the buffered pairs as two aligned series.
func (b *MultiBuffer) Series() ([]float64, []float64) {
	xx := make([]float64, len(b.values))
	yy := make([]float64, len(b.values))
	for i, v := range b.values {
		xx[i] = v[0]
		yy[i] = v[1]
	}
	return xx, yy
}
