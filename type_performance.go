package ror

import "math"

// Performance holds the amounts of an investment and its annual return.
type Performance struct {
	Start, End Money
	Years      float64
	Rate       float64 // annual rate of return, decimal fraction
}

// NewPerformance builds the performance of a valid evaluation in currency.
func NewPerformance(e Evaluation, currency string) (Performance, error) {
	if !e.Outcome.IsValid {
		return Performance{}, ErrInvalidEvaluation
	}
	return Performance{
		Start: M(e.Input.InitialAmount.Float(), currency),
		End:   M(e.Input.FinalAmount.Float(), currency),
		Years: e.Input.Years.Float(),
		Rate:  e.Outcome.Rate,
	}, nil
}

// Change is the absolute gain, negative for a loss.
func (p Performance) Change() Money { return p.End.Sub(p.Start) }

// Percent is the annual rate of return in percent.
func (p Performance) Percent() Percent { return PercentOf(p.Rate) }

// IsGain reports whether the annual return is not negative.
func (p Performance) IsGain() bool { return p.Percent() >= 0 }

// ResultLabel is "Ganancia" for a gain and "Pérdida" for a loss.
func (p Performance) ResultLabel() string {
	if p.IsGain() {
		return "Ganancia"
	}
	return "Pérdida"
}

// GaugeDegrees is the arc of the circular gauge: 3.6° per percent point,
// capped to a full turn.
func (p Performance) GaugeDegrees() float64 {
	return math.Min(float64(p.Percent().Abs())*3.6, 360)
}

// BarWidth is the fill of the horizontal bar in percent: 2 per percent point,
// capped to 100.
func (p Performance) BarWidth() float64 {
	return math.Min(float64(p.Percent().Abs())*2, 100)
}

// Interpretation of the annual return.
func (p Performance) Interpretation() Interpretation { return Interpret(p.Percent()) }
