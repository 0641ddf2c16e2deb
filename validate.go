package ror

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Field names a form field.
type Field string

const (
	FieldInitialAmount Field = "initialAmount"
	FieldFinalAmount   Field = "finalAmount"
	FieldYears         Field = "years"
)

// Fields lists the form fields in display order.
func Fields() []Field { return []Field{FieldInitialAmount, FieldFinalAmount, FieldYears} }

// Bounds of a valid input.
const (
	MaxAmount = 1_000_000_000.0
	MaxYears  = 100.0
	// MinDifference is the smallest |final - initial| considered a real change.
	MinDifference = 0.01
)

const (
	msgInitialMissing  = "Ingresa un monto inicial válido"
	msgInitialNotPos   = "El monto inicial debe ser mayor a cero"
	msgInitialTooBig   = "El monto inicial es demasiado grande"
	msgFinalMissing    = "Ingresa un monto final válido"
	msgFinalNotPos     = "El monto final debe ser mayor a cero"
	msgFinalTooBig     = "El monto final es demasiado grande"
	msgYearsMissing    = "Ingresa un número de años válido"
	msgYearsNotPos     = "El número de años debe ser mayor a cero"
	msgYearsTooBig     = "El número de años no puede ser mayor a 100"
	msgFinalSameAsInit = "El monto final debe ser diferente al inicial"
)

// ValidationResult is the outcome of ValidateInputs.
// Errors holds one message per failing field and is nil when IsValid.
type ValidationResult struct {
	IsValid bool             `json:"isValid" yaml:"isValid"`
	Errors  map[Field]string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Err returns the result as an error, nil when valid.
func (r ValidationResult) Err() error {
	if r.IsValid {
		return nil
	}
	return &ValidationError{Errors: r.Errors}
}

// ValidationError carries the per-field messages of an invalid input.
type ValidationError struct {
	Errors map[Field]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, string(f))
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Errors[Field(f)]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// rule is the message set of a single field check.
type rule struct {
	missing, notPositive, tooBig string
	max                          float64
}

func (r rule) check(n Number) (string, bool) {
	switch {
	case !n.Valid() || math.IsNaN(n.Float()):
		return r.missing, false
	case n.Float() <= 0:
		return r.notPositive, false
	case n.Float() > r.max:
		return r.tooBig, false
	}
	return "", true
}

var (
	initialRule = rule{msgInitialMissing, msgInitialNotPos, msgInitialTooBig, MaxAmount}
	finalRule   = rule{msgFinalMissing, msgFinalNotPos, msgFinalTooBig, MaxAmount}
	yearsRule   = rule{msgYearsMissing, msgYearsNotPos, msgYearsTooBig, MaxYears}
)

// ValidateInputs checks the raw inputs of a calculation.
//
// Each field is checked independently and reports at most one message. Only
// when all three fields pass, amounts closer than MinDifference are rejected;
// that cross-field failure is reported on the final amount.
// Invalid input is never an error: it is described by the result.
func ValidateInputs(initial, final, years Number) ValidationResult {
	errs := make(map[Field]string)
	for _, c := range []struct {
		field Field
		value Number
		rule  rule
	}{
		{FieldInitialAmount, initial, initialRule},
		{FieldFinalAmount, final, finalRule},
		{FieldYears, years, yearsRule},
	} {
		if msg, ok := c.rule.check(c.value); !ok {
			errs[c.field] = msg
		}
	}

	if len(errs) == 0 && math.Abs(final.Float()-initial.Float()) < MinDifference {
		errs[FieldFinalAmount] = msgFinalSameAsInit
	}

	if len(errs) == 0 {
		return ValidationResult{IsValid: true}
	}
	return ValidationResult{IsValid: false, Errors: errs}
}
