package rootbench

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Behavior classifies how an iterate sequence evolves.
type Behavior string

const (
	BehaviorMonotonic    Behavior = "monotonic"    // Steps keep one sign and shrink
	BehaviorOscillatory  Behavior = "oscillatory"  // Steps alternate in sign and shrink
	BehaviorCycle        Behavior = "cycle"        // Tail repeats with period 2, 4, 8, ...
	BehaviorDivergent    Behavior = "divergent"    // Steps grow, or an iterate left the reals
	BehaviorUndetermined Behavior = "undetermined" // Too few iterates to tell
)

// ConvergenceAnalysis describes an iterate sequence x_0 … x_N.
type ConvergenceAnalysis struct {
	Steps        []float64 // d_k = x_{k+1} - x_k
	Rate         float64   // Median of |d_{k+1}| / |d_k|; ≈ |f'(x*)| for linear convergence
	Order        float64   // Median estimate of the convergence order q (0 if unknown)
	Period       int       // Period of the tail: 1 = settled, 2/4/8/... = cycle, -1 = none
	Amplitude    float64   // max - min over the second half of the sequence
	Alternations int       // Sign changes between consecutive significant steps
	Behavior     Behavior
}

// AnalysisConfig controls convergence analysis.
type AnalysisConfig struct {
	Tolerance float64 // Period detection tolerance (relative to max(1, |x|))
	MaxPeriod int     // Largest cycle period to test
	Floor     float64 // Steps below Floor·max(1, |x|) are rounding noise and ignored
}

// DefaultAnalysisConfig returns sensible defaults.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		Tolerance: 1e-9,
		MaxPeriod: 16,
		Floor:     1e-13,
	}
}

// AnalyzeConvergence measures rate, order, periodicity and direction of an
// iterate sequence such as the one returned by FixedPoint or Trajectory.
func AnalyzeConvergence(iterates []float64, cfg AnalysisConfig) ConvergenceAnalysis {
	analysis := ConvergenceAnalysis{
		Period:   -1,
		Behavior: BehaviorUndetermined,
	}
	if len(iterates) < 2 {
		return analysis
	}

	for _, x := range iterates {
		if !isFinite(x) {
			analysis.Rate = math.Inf(1)
			analysis.Behavior = BehaviorDivergent
			return analysis
		}
	}

	analysis.Steps = make([]float64, len(iterates)-1)
	for k := range analysis.Steps {
		analysis.Steps[k] = iterates[k+1] - iterates[k]
	}
	analysis.Amplitude = CalculateAmplitude(iterates[len(iterates)/2:])

	if len(iterates) < 3 {
		return analysis
	}

	// Only steps above the noise floor say anything about the map.
	significant := make([]float64, 0, len(analysis.Steps))
	for k, d := range analysis.Steps {
		if math.Abs(d) > cfg.Floor*math.Max(1, math.Abs(iterates[k])) {
			significant = append(significant, d)
		} else {
			break
		}
	}

	ratios := make([]float64, 0, len(significant))
	for k := 1; k < len(significant); k++ {
		ratios = append(ratios, math.Abs(significant[k])/math.Abs(significant[k-1]))
		if sign(significant[k]) != sign(significant[k-1]) {
			analysis.Alternations++
		}
	}
	if rate, err := stats.Median(ratios); err == nil {
		analysis.Rate = rate
	}

	// q ≈ log(|d_{k+1}|/|d_k|) / log(|d_k|/|d_{k-1}|)
	orders := make([]float64, 0, len(ratios))
	for k := 1; k < len(ratios); k++ {
		prev, next := ratios[k-1], ratios[k]
		if prev <= 0 || prev == 1 || next <= 0 {
			continue
		}
		orders = append(orders, math.Log(next)/math.Log(prev))
	}
	if order, err := stats.Median(orders); err == nil {
		analysis.Order = order
	}

	analysis.Period = DetectPeriod(iterates, cfg)

	switch {
	case analysis.Period > 1:
		analysis.Behavior = BehaviorCycle
	case analysis.Period != 1 && analysis.Rate > 1:
		analysis.Behavior = BehaviorDivergent
	case len(ratios) == 0:
		// Settled within the noise floor from the first step.
		if analysis.Period == 1 {
			analysis.Behavior = BehaviorMonotonic
		}
	case 2*analysis.Alternations > len(ratios):
		analysis.Behavior = BehaviorOscillatory
	default:
		analysis.Behavior = BehaviorMonotonic
	}

	return analysis
}

// DetectPeriod finds the period of the tail of a sequence.
// Period 1 means the sequence has settled; 2, 4, 8, … up to cfg.MaxPeriod mean
// it alternates among that many values. Returns -1 when no period fits.
func DetectPeriod(iterates []float64, cfg AnalysisConfig) int {
	n := len(iterates)

	for period := 1; period <= cfg.MaxPeriod; period *= 2 {
		if n < 2*period {
			break
		}

		periodic := true
		for i := n - 2*period; i < n-period; i++ {
			scale := math.Max(1, math.Abs(iterates[i]))
			if math.Abs(iterates[i]-iterates[i+period]) > cfg.Tolerance*scale {
				periodic = false
				break
			}
		}

		if periodic {
			return period
		}
	}

	return -1
}

// CalculateAmplitude returns max - min of the values.
func CalculateAmplitude(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	lo, _ := stats.Min(values)
	hi, _ := stats.Max(values)
	return hi - lo
}
