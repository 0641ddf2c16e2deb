package advisor

import (
	"context"
	"fmt"

	"github.com/edu2101/ror"
	"google.golang.org/genai"
)

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func number(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeNumber, Description: description}
}

// args reads the named numeric arguments of a call.
func args(in map[string]any, names ...string) ([]float64, error) {
	values := make([]float64, 0, len(names))
	for _, name := range names {
		v, ok := in[name]
		if !ok {
			return nil, fmt.Errorf("missing argument %q", name)
		}
		n := ror.NumberOf(v)
		if !n.Valid() {
			return nil, fmt.Errorf("argument %q is not a number: %v", name, v)
		}
		values = append(values, n.Float())
	}
	return values, nil
}

// CalculateRoR evaluates an investment like the form does.
var CalculateRoR = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "calculate_ror",
		Description: `Computes the annualized rate of return of an investment that grew from
		initial_amount to final_amount in years. Inputs are validated first: amounts must be
		positive and at most 1,000,000,000, years positive and at most 100, and the amounts
		must differ by at least 0.01.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"initial_amount": number("The amount invested."),
				"final_amount":   number("The value of the investment at the end of the period."),
				"years":          number("The length of the period in years, possibly fractional."),
			},
			Required: []string{"initial_amount", "final_amount", "years"},
		},
	},
	Func: func(ctx context.Context, id string, in map[string]any) *genai.FunctionResponse {
		v, err := args(in, "initial_amount", "final_amount", "years")
		if err != nil {
			return errorResponse(id, "calculate_ror", err.Error())
		}
		e := ror.Evaluate(ror.Input{InitialAmount: ror.Some(v[0]), FinalAmount: ror.Some(v[1]), Years: ror.Some(v[2])})
		if !e.Outcome.IsValid {
			resp := errorResponse(id, "calculate_ror", e.Outcome.Error)
			if len(e.Validation.Errors) > 0 {
				fields := make(map[string]any, len(e.Validation.Errors))
				for f, msg := range e.Validation.Errors {
					fields[string(f)] = msg
				}
				resp.Response["fields"] = fields
			}
			return resp
		}
		return &genai.FunctionResponse{
			ID:   id,
			Name: "calculate_ror",
			Response: map[string]any{
				"rate":           e.Outcome.Rate,
				"percent":        ror.FormatPercentage(e.Outcome.Rate),
				"interpretation": ror.Interpret(e.Outcome.Percent()).Title,
			},
		}
	},
}

// FutureValue compounds a present value.
var FutureValue = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "future_value",
		Description: "Compounds present_value at the annual rate for years: present_value × (1 + rate)^years.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"present_value": number("The amount today."),
				"rate":          number("The annual rate as a decimal fraction, 0.05 for 5%."),
				"years":         number("The number of years."),
			},
			Required: []string{"present_value", "rate", "years"},
		},
	},
	Func: func(ctx context.Context, id string, in map[string]any) *genai.FunctionResponse {
		v, err := args(in, "present_value", "rate", "years")
		if err != nil {
			return errorResponse(id, "future_value", err.Error())
		}
		return &genai.FunctionResponse{
			ID:       id,
			Name:     "future_value",
			Response: map[string]any{"output": ror.CalculateFutureValue(v[0], v[1], v[2])},
		}
	},
}

// PresentValue discounts a future value.
var PresentValue = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "present_value",
		Description: "Discounts future_value at the annual rate for years: future_value / (1 + rate)^years.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"future_value": number("The amount at the end of the period."),
				"rate":         number("The annual rate as a decimal fraction, 0.05 for 5%."),
				"years":        number("The number of years."),
			},
			Required: []string{"future_value", "rate", "years"},
		},
	},
	Func: func(ctx context.Context, id string, in map[string]any) *genai.FunctionResponse {
		v, err := args(in, "future_value", "rate", "years")
		if err != nil {
			return errorResponse(id, "present_value", err.Error())
		}
		return &genai.FunctionResponse{
			ID:       id,
			Name:     "present_value",
			Response: map[string]any{"output": ror.CalculatePresentValue(v[0], v[1], v[2])},
		}
	},
}

// Tools are the functions offered to the advisor.
var Tools = []Function{CalculateRoR, FutureValue, PresentValue}
