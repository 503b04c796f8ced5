// Package ols estimates the least squares line through a set of paired
// samples, together with the inferential statistics of the standard
// regression report : coefficient standard errors, t-statistics, p-values,
// confidence intervals, R², the F-test of the whole model, information
// criteria and residual diagnostics.
//
// The estimator is closed-form. Fit is a pure function of its inputs :
// identical samples produce bit-identical results, and all invalid input is
// rejected eagerly before any statistic is derived.
package ols

import (
	"errors"
	"fmt"
	"math"

	linemath "github.com/drakos74/line-fit/internal/math"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// DegenerateInputErr marks a sample the line is undefined for,
	// i.e. a constant independent variable or fewer than 2 observations.
	DegenerateInputErr = errors.New("degenerate input")
	// InsufficientDataErr marks a sample too small for inference (n < 3).
	InsufficientDataErr = errors.New("insufficient data")
	// NonFiniteInputErr marks a sample containing NaN or infinite values.
	NonFiniteInputErr = errors.New("non-finite input")
	// LengthMismatchErr marks samples of unequal length.
	LengthMismatchErr = errors.New("length mismatch")
	// NotFittedErr marks a result without fit internals,
	// e.g. one decoded from its serialized form.
	NotFittedErr = errors.New("not fitted")
)

const (
	// MinSamples is the smallest sample the line is defined for.
	MinSamples = 2
	// MinInference is the smallest sample the error estimates are defined for.
	MinInference = 3
	// DefaultConfidence is the interval confidence level, unless overridden
	// with WithConfidence.
	DefaultConfidence = 0.95

	// slope and intercept
	parameters = 2
)

// Fit estimates the least squares line for the given samples and returns the
// fully populated result record.
//
// The samples must be of equal length, finite, hold at least MinInference
// observations and a non-constant independent variable. Anything less fails
// atomically with one of the sentinel errors ; for plain point estimates on
// 2 observations use Line.
//
// An exact fit leaves no residual variance : standard errors come out as 0
// and the derived t- and F-statistics follow IEEE division, with p-values
// of 0 for non-zero estimates.
func Fit(xx, yy []float64, opts ...Option) (*Result, error) {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.confidence <= 0 || cfg.confidence >= 1 {
		return nil, fmt.Errorf("confidence level must be within (0,1): %v", cfg.confidence)
	}

	if err := validate(xx, yy); err != nil {
		return nil, err
	}

	n := len(xx)
	if n < MinInference {
		return nil, fmt.Errorf("need at least %d observations for inference, got %d: %w", MinInference, n, InsufficientDataErr)
	}

	meanX := linemath.Mean(xx)
	meanY := linemath.Mean(yy)

	varX := linemath.Variance(xx)
	if varX == 0 {
		return nil, fmt.Errorf("independent variable is constant: %w", DegenerateInputErr)
	}

	slope := linemath.Covariance(xx, yy) / varX
	intercept := meanY - slope*meanX

	fitted := make([]float64, n)
	residuals := make([]float64, n)
	var rss, tss float64
	for i, x := range xx {
		fitted[i] = slope*x + intercept
		residuals[i] = yy[i] - fitted[i]
		rss += residuals[i] * residuals[i]
		dy := yy[i] - meanY
		tss += dy * dy
	}
	ess := tss - rss

	df := n - parameters
	sxx := varX * float64(n)
	sigma2 := rss / float64(df)

	seSlope := math.Sqrt(sigma2 / sxx)
	seIntercept := math.Sqrt(sigma2 * (1/float64(n) + meanX*meanX/sxx))

	tdist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	tq := tdist.Quantile(1 - (1-cfg.confidence)/2)

	// a constant dependent variable is fit exactly by the mean line
	r2 := 1.0
	if tss > 0 {
		r2 = 1 - rss/tss
	}
	adjR2 := 1 - (1-r2)*float64(n-1)/float64(df)

	r := math.Sqrt(r2)
	if slope < 0 {
		r = -r
	}

	fstat := ess / sigma2
	fp := distuv.F{D1: 1, D2: float64(df)}.Survival(fstat)

	// concentrated gaussian log-likelihood of the fitted line
	logLik := -0.5 * float64(n) * (1 + math.Log(2*math.Pi*rss/float64(n)))

	return &Result{
		Slope:       newCoefficient(slope, seSlope, tdist, tq),
		Intercept:   newCoefficient(intercept, seIntercept, tdist, tq),
		N:           n,
		DF:          df,
		RSS:         rss,
		ESS:         ess,
		TSS:         tss,
		R:           r,
		R2:          r2,
		AdjR2:       adjR2,
		FStat:       fstat,
		FPValue:     fp,
		LogLik:      logLik,
		AIC:         -2*logLik + 2*parameters,
		BIC:         -2*logLik + parameters*math.Log(float64(n)),
		Confidence:  cfg.confidence,
		Diagnostics: diagnose(residuals, rss),
		meanX:       meanX,
		sxx:         sxx,
		sigma2:      sigma2,
		tq:          tq,
		residuals:   residuals,
		fitted:      fitted,
	}, nil
}

// Line returns the plain point estimates of the least squares line through
// the samples. It is defined for any sample of MinSamples finite
// observations with a non-constant independent variable and carries no
// inference ; use Fit for the full report.
func Line(xx, yy []float64) (float64, float64, error) {
	if err := validate(xx, yy); err != nil {
		return 0, 0, err
	}
	varX := linemath.Variance(xx)
	if varX == 0 {
		return 0, 0, fmt.Errorf("independent variable is constant: %w", DegenerateInputErr)
	}
	slope := linemath.Covariance(xx, yy) / varX
	return slope, linemath.Mean(yy) - slope*linemath.Mean(xx), nil
}

// validate applies the eager input checks shared by Fit and Line.
func validate(xx, yy []float64) error {
	if len(xx) != len(yy) {
		return fmt.Errorf("got %d x values for %d y values: %w", len(xx), len(yy), LengthMismatchErr)
	}
	if !linemath.Finite(xx) || !linemath.Finite(yy) {
		return fmt.Errorf("samples must not contain NaN or Inf: %w", NonFiniteInputErr)
	}
	if len(xx) < MinSamples {
		return fmt.Errorf("need at least %d observations, got %d: %w", MinSamples, len(xx), DegenerateInputErr)
	}
	return nil
}

func newCoefficient(value, stderr float64, tdist distuv.StudentsT, tq float64) Coefficient {
	t := value / stderr
	return Coefficient{
		Value:  value,
		StdErr: stderr,
		TStat:  t,
		PValue: 2 * tdist.Survival(math.Abs(t)),
		CI: Interval{
			Lower: value - tq*stderr,
			Upper: value + tq*stderr,
		},
	}
}
