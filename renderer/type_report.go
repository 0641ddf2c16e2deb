package renderer

import (
	"strconv"

	"github.com/edu2101/ror"
)

// FieldError is a validation message with the label of its form field.
type FieldError struct {
	Label   string `json:"label" yaml:"label"`
	Message string `json:"message" yaml:"message"`
}

// Report is the display form of an evaluation, every value already formatted.
type Report struct {
	Currency    string       `json:"currency" yaml:"currency"`
	Initial     string       `json:"initial" yaml:"initial"`
	Final       string       `json:"final" yaml:"final"`
	Years       string       `json:"years" yaml:"years"`
	Valid       bool         `json:"valid" yaml:"valid"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty" yaml:"fieldErrors,omitempty"`

	Rate           string             `json:"rate,omitempty" yaml:"rate,omitempty"`         // full precision percent, "8.45%"
	Signed         string             `json:"signed,omitempty" yaml:"signed,omitempty"`     // gauge label, "+8.4%"
	Absolute       string             `json:"absolute,omitempty" yaml:"absolute,omitempty"` // absolute return, "8.4%"
	ResultLabel    string             `json:"resultLabel,omitempty" yaml:"resultLabel,omitempty"`
	Change         string             `json:"change,omitempty" yaml:"change,omitempty"`
	GaugeDegrees   float64            `json:"gaugeDegrees,omitempty" yaml:"gaugeDegrees,omitempty"`
	BarWidth       float64            `json:"barWidth,omitempty" yaml:"barWidth,omitempty"`
	Interpretation ror.Interpretation `json:"interpretation,omitzero" yaml:"interpretation,omitempty"`
}

// FieldLabels are the form labels of the input fields.
var FieldLabels = map[ror.Field]string{
	ror.FieldInitialAmount: "Monto Inicial",
	ror.FieldFinalAmount:   "Monto Final",
	ror.FieldYears:         "Tiempo en Años",
}

// NewReport builds the report of e with amounts displayed in currency.
func NewReport(e ror.Evaluation, currency string) *Report {
	if currency == "" {
		currency = ror.DefaultCurrency
	}
	r := &Report{
		Currency: currency,
		Initial:  amount(e.Input.InitialAmount, currency),
		Final:    amount(e.Input.FinalAmount, currency),
		Years:    years(e.Input.Years),
		Valid:    e.Outcome.IsValid,
		Error:    e.Outcome.Error,
	}
	for _, f := range ror.Fields() {
		if msg, ok := e.Validation.Errors[f]; ok {
			r.FieldErrors = append(r.FieldErrors, FieldError{Label: FieldLabels[f], Message: msg})
		}
	}

	p, err := ror.NewPerformance(e, currency)
	if err != nil {
		return r
	}
	r.Rate = ror.FormatPercentage(p.Rate)
	r.Signed = p.Percent().SignedString()
	r.Absolute = p.Percent().Abs().Fixed(1)
	r.ResultLabel = p.ResultLabel()
	r.Change = p.Change().SignedString()
	r.GaugeDegrees = p.GaugeDegrees()
	r.BarWidth = p.BarWidth()
	r.Interpretation = p.Interpretation()
	return r
}

func amount(n ror.Number, currency string) string {
	if !n.Valid() {
		return "-"
	}
	return ror.FormatCurrency(n.Float(), currency)
}

func years(n ror.Number) string {
	if !n.Valid() {
		return "-"
	}
	s := strconv.FormatFloat(n.Float(), 'f', -1, 64)
	if n.Float() == 1 {
		return s + " año"
	}
	return s + " años"
}
