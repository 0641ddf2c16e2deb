package ror

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	e := Evaluate(ParseInput("10000", "15000", "5"))
	if !e.Outcome.IsValid {
		t.Fatalf("Evaluate() outcome = %+v, want valid", e.Outcome)
	}
	if math.Abs(e.Outcome.Rate-0.08447) > 1e-4 {
		t.Errorf("Evaluate() rate = %v, want 0.08447", e.Outcome.Rate)
	}
	if e.Outcome.Error != "" || e.Cause != nil {
		t.Errorf("Evaluate() error = %q, cause = %v; want none", e.Outcome.Error, e.Cause)
	}
}

func TestEvaluateInvalidForm(t *testing.T) {
	e := Evaluate(ParseInput("100", "100", "5"))
	if e.Outcome.IsValid {
		t.Fatalf("Evaluate() outcome = %+v, want invalid", e.Outcome)
	}
	if e.Outcome.Error != InvalidFormError {
		t.Errorf("Evaluate() error = %q, want %q", e.Outcome.Error, InvalidFormError)
	}
	if got := e.Validation.Errors[FieldFinalAmount]; got != msgFinalSameAsInit {
		t.Errorf("Evaluate() validation = %v, want %q on finalAmount", e.Validation.Errors, msgFinalSameAsInit)
	}
	if e.Outcome.Rate != 0 {
		t.Errorf("Evaluate() rate = %v, want 0", e.Outcome.Rate)
	}
}

func TestEvaluateEmptyForm(t *testing.T) {
	e := Evaluate(ParseInput("", "", ""))
	if len(e.Validation.Errors) != 3 {
		t.Errorf("Evaluate() validation = %v, want one error per field", e.Validation.Errors)
	}
}

func TestEvaluateCalculatorFailure(t *testing.T) {
	// a tiny initial amount and a large final amount over a fraction of a
	// day pass validation but overflow the power.
	e := Evaluate(Input{InitialAmount: Some(1e-300), FinalAmount: Some(1e9), Years: Some(1e-3)})
	if !e.Validation.IsValid {
		t.Fatalf("Evaluate() validation = %v, want valid", e.Validation.Errors)
	}
	if e.Outcome.IsValid || e.Outcome.Error != GenericCalculationError {
		t.Errorf("Evaluate() outcome = %+v, want %q", e.Outcome, GenericCalculationError)
	}
	if !errors.Is(e.Cause, ErrNonFiniteResult) {
		t.Errorf("Evaluate() cause = %v, want %v", e.Cause, ErrNonFiniteResult)
	}
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		name       string
		input      Input
		label      string
		gauge, bar float64
		change     string
		band       Band
	}{
		{"gain", ParseInput("10000", "15000", "5"), "Ganancia", 30.41, 16.89, "$5,000.00", BandGood},
		{"loss", ParseInput("10000", "5000", "1"), "Pérdida", 180, 100, "-$5,000.00", BandPoor},
		{"capped", ParseInput("1", "1000000", "1"), "Ganancia", 360, 100, "$999,999.00", BandExcellent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPerformance(Evaluate(tt.input), "USD")
			if err != nil {
				t.Fatalf("NewPerformance() unexpected error: %v", err)
			}
			if got := p.ResultLabel(); got != tt.label {
				t.Errorf("ResultLabel() = %q, want %q", got, tt.label)
			}
			if got := p.GaugeDegrees(); math.Abs(got-tt.gauge) > 0.01 {
				t.Errorf("GaugeDegrees() = %v, want %v", got, tt.gauge)
			}
			if got := p.BarWidth(); math.Abs(got-tt.bar) > 0.01 {
				t.Errorf("BarWidth() = %v, want %v", got, tt.bar)
			}
			if got := p.Change().String(); got != tt.change {
				t.Errorf("Change() = %q, want %q", got, tt.change)
			}
			if got := p.Interpretation().Band; got != tt.band {
				t.Errorf("Interpretation() = %q, want %q", got, tt.band)
			}
		})
	}

	if _, err := NewPerformance(Evaluate(ParseInput("", "", "")), "USD"); !errors.Is(err, ErrInvalidEvaluation) {
		t.Errorf("NewPerformance(invalid) error = %v, want %v", err, ErrInvalidEvaluation)
	}
}
