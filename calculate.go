package ror

import (
	"errors"
	"math"
)

// Calculator failures. Their messages are diagnostics: user facing layers
// report GenericCalculationError instead.
var (
	ErrNotANumber         = errors.New("Todos los parámetros deben ser números válidos")
	ErrInitialNotPositive = errors.New(msgInitialNotPos)
	ErrFinalNotPositive   = errors.New(msgFinalNotPos)
	ErrYearsNotPositive   = errors.New(msgYearsNotPos)
	ErrNonFiniteResult    = errors.New("Error en el cálculo: resultado no válido")
)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// CalculateRoR returns the annual rate of return, as a decimal fraction, that
// compounds initial into final over years:
//
//	rate = (final / initial)^(1/years) - 1
//
// Inputs are expected to have passed ValidateInputs; only positivity and
// finiteness are checked here.
func CalculateRoR(initial, final, years float64) (float64, error) {
	if !finite(initial) || !finite(final) || !finite(years) {
		return 0, ErrNotANumber
	}
	if initial <= 0 {
		return 0, ErrInitialNotPositive
	}
	if final <= 0 {
		return 0, ErrFinalNotPositive
	}
	if years <= 0 {
		return 0, ErrYearsNotPositive
	}

	ratio := final / initial
	rate := math.Pow(ratio, 1/years) - 1
	if !finite(rate) {
		return 0, ErrNonFiniteResult
	}
	return rate, nil
}

// CalculateFutureValue compounds presentValue at rate for years.
func CalculateFutureValue(presentValue, rate, years float64) float64 {
	return presentValue * math.Pow(1+rate, years)
}

// CalculatePresentValue discounts futureValue at rate for years.
func CalculatePresentValue(futureValue, rate, years float64) float64 {
	return futureValue / math.Pow(1+rate, years)
}
