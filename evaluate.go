package ror

import "errors"

// User facing outcome messages.
const (
	InvalidFormError        = "Por favor, corrige los errores en el formulario"
	GenericCalculationError = "Error en el cálculo. Verifica los datos ingresados."
)

// Input is the raw input of a calculation, each field possibly missing.
type Input struct {
	InitialAmount Number `json:"initialAmount" yaml:"initialAmount"`
	FinalAmount   Number `json:"finalAmount" yaml:"finalAmount"`
	Years         Number `json:"years" yaml:"years"`
}

// ParseInput reads an Input from the three text fields of a form.
func ParseInput(initial, final, years string) Input {
	return Input{
		InitialAmount: ParseNumber(initial),
		FinalAmount:   ParseNumber(final),
		Years:         ParseNumber(years),
	}
}

// Outcome is what is shown for a calculation attempt.
type Outcome struct {
	Rate    float64 `json:"rate" yaml:"rate"`
	IsValid bool    `json:"isValid" yaml:"isValid"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Percent returns the rate in percent.
func (o Outcome) Percent() Percent { return PercentOf(o.Rate) }

// Evaluation records every step of a calculation attempt.
type Evaluation struct {
	Input      Input            `json:"input" yaml:"input"`
	Validation ValidationResult `json:"validation" yaml:"validation"`
	Outcome    Outcome          `json:"outcome" yaml:"outcome"`
	// Cause is the calculator failure hidden behind GenericCalculationError.
	Cause error `json:"-" yaml:"-"`
}

// Evaluate validates in and, only if it is valid, computes its rate of return.
//
// A validation failure is reported with InvalidFormError and the per-field
// messages in Validation. A calculator failure is reported with
// GenericCalculationError; the specific error is kept in Cause.
func Evaluate(in Input) Evaluation {
	e := Evaluation{Input: in}
	e.Validation = ValidateInputs(in.InitialAmount, in.FinalAmount, in.Years)
	if !e.Validation.IsValid {
		e.Outcome = Outcome{IsValid: false, Error: InvalidFormError}
		return e
	}

	rate, err := CalculateRoR(in.InitialAmount.Float(), in.FinalAmount.Float(), in.Years.Float())
	if err != nil {
		e.Cause = err
		e.Outcome = Outcome{IsValid: false, Error: GenericCalculationError}
		return e
	}
	e.Outcome = Outcome{Rate: rate, IsValid: true}
	return e
}

// ErrInvalidEvaluation is returned when a report is requested for a failed evaluation.
var ErrInvalidEvaluation = errors.New("evaluation has no valid outcome")
