package api

import (
	"github.com/edu2101/ror"
	"github.com/edu2101/ror/renderer"
)

// RorRequest is the body of POST /api/v1/ror. Fields may be JSON numbers or
// strings, read like form fields; absent fields are missing.
type RorRequest struct {
	InitialAmount ror.Number `json:"initialAmount"`
	FinalAmount   ror.Number `json:"finalAmount"`
	Years         ror.Number `json:"years"`
}

func (r RorRequest) Input() ror.Input {
	return ror.Input{InitialAmount: r.InitialAmount, FinalAmount: r.FinalAmount, Years: r.Years}
}

// RorResponse is the body of a successful evaluation.
type RorResponse struct {
	Outcome    ror.Outcome          `json:"outcome"`
	Validation ror.ValidationResult `json:"validation"`
	Report     *renderer.Report     `json:"report"`
}

type FutureValueRequest struct {
	PresentValue float64 `json:"presentValue" validate:"gt=0,lte=1000000000"`
	Rate         float64 `json:"rate" validate:"gt=-1"`
	Years        float64 `json:"years" validate:"gt=0,lte=100"`
}

type PresentValueRequest struct {
	FutureValue float64 `json:"futureValue" validate:"gt=0,lte=1000000000"`
	Rate        float64 `json:"rate" validate:"gt=-1"`
	Years       float64 `json:"years" validate:"gt=0,lte=100"`
}

// TimeValueResponse answers both time value routes.
type TimeValueResponse struct {
	PresentValue float64 `json:"presentValue"`
	FutureValue  float64 `json:"futureValue"`
	Rate         float64 `json:"rate"`
	Years        float64 `json:"years"`
	Formatted    struct {
		PresentValue string `json:"presentValue"`
		FutureValue  string `json:"futureValue"`
		Rate         string `json:"rate"`
	} `json:"formatted"`
}

func newTimeValueResponse(v renderer.TimeValue) TimeValueResponse {
	r := TimeValueResponse{
		PresentValue: v.Present,
		FutureValue:  v.Future,
		Rate:         v.Rate,
		Years:        v.Years,
	}
	r.Formatted.PresentValue = ror.FormatCurrency(v.Present, v.Currency)
	r.Formatted.FutureValue = ror.FormatCurrency(v.Future, v.Currency)
	r.Formatted.Rate = ror.FormatPercentage(v.Rate)
	return r
}

// BandResponse is one interpretation band.
type BandResponse struct {
	ror.Interpretation
	Range string `json:"range"`
}
