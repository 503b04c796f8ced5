package buffer

import (
	"fmt"
	"math"

	"github.com/drakos74/line-fit/ols"
)

// Reg is a streaming regression accumulator over paired observations.
// It tracks both marginals and the co-moment in a single pass, so the
// least squares line is available at any point without retaining samples.
type Reg struct {
	x, y *Stats
	cxy  float64
}

// NewReg creates a new regression accumulator.
func NewReg() *Reg {
	return &Reg{
		x: NewStats(),
		y: NewStats(),
	}
}

// Push adds a paired observation.
func (r *Reg) Push(x, y float64) {
	// co-moment update : old x deviation against the new y mean
	dx := x - r.x.mean
	r.x.Push(x)
	r.y.Push(y)
	r.cxy += dx * (y - r.y.mean)
}

// Count returns the number of paired observations.
func (r *Reg) Count() int {
	return r.x.count
}

// X returns the marginal statistics of the independent variable.
func (r *Reg) X() Stats {
	return *r.x
}

// Y returns the marginal statistics of the dependent variable.
func (r *Reg) Y() Stats {
	return *r.y
}

// Covariance returns the population covariance of the pairs.
func (r *Reg) Covariance() float64 {
	return r.cxy / float64(r.x.count)
}

// Correlation returns the Pearson correlation of the pairs.
func (r *Reg) Correlation() float64 {
	return r.cxy / math.Sqrt(r.x.dSquared*r.y.dSquared)
}

// Slope returns the least squares slope of the accumulated pairs.
// It is NaN while the line is undefined ; Line is the checked path.
func (r *Reg) Slope() float64 {
	return r.cxy / r.x.dSquared
}

// Intercept returns the least squares intercept of the accumulated pairs.
func (r *Reg) Intercept() float64 {
	return r.y.mean - r.Slope()*r.x.mean
}

// Line returns the least squares line of the accumulated pairs,
// under the same input constraints as ols.Line.
func (r *Reg) Line() (float64, float64, error) {
	if r.x.count < ols.MinSamples {
		return 0, 0, fmt.Errorf("need at least %d observations, got %d: %w", ols.MinSamples, r.x.count, ols.DegenerateInputErr)
	}
	if r.x.dSquared == 0 {
		return 0, 0, fmt.Errorf("independent variable is constant: %w", ols.DegenerateInputErr)
	}
	return r.Slope(), r.Intercept(), nil
}
