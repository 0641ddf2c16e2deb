// Package advisor comments an evaluation with a Gemini model that can call
// the calculator itself.
package advisor

import (
	"context"
	"errors"
	"strings"

	"github.com/edu2101/ror"
	"github.com/edu2101/ror/docs"
	"github.com/edu2101/ror/renderer"
	"google.golang.org/genai"
)

// Model is the Gemini model used by the advisor.
const Model = "gemini-2.5-flash"

// DefaultQuestion is asked when the user has none.
const DefaultQuestion = "¿Qué significa este resultado para mi inversión?"

// ErrEmptyAnswer is returned when the model replies without text.
var ErrEmptyAnswer = errors.New("the advisor gave no answer")

// New creates the advisor expert.
func New() *Expert {
	return &Expert{
		Name:        "Advisor",
		Description: "An investment advisor commenting rates of return.",
		ModelName:   Model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(Tools)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction()}}},
		},
		Library: NewLibrary(Tools),
	}
}

func instruction() string {
	var b strings.Builder
	b.WriteString(`
	You are an investment advisor. The user shows you the report of an annualized rate
	of return computed by a calculator, and asks a question about it.
	Answer in the language of the question, in a few short paragraphs of markdown.
	Never compute a rate, a future value or a present value yourself: use the Tools,
	they are exact. Explain what the rate means, compare it with the interpretation
	bands below, and say plainly when a result is a loss.
	You do not know the user's situation: do not give personalized investment advice.

	`)
	for _, topic := range []string{"formula", "bands"} {
		if content, err := docs.GetTopic(topic); err == nil {
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Prompt is the message sent for an evaluation and a question.
func Prompt(e ror.Evaluation, currency, question string) string {
	if strings.TrimSpace(question) == "" {
		question = DefaultQuestion
	}
	return renderer.RenderReport(renderer.NewReport(e, currency)) + "\n---\n\n" + question
}

// Advise asks the advisor a question about e and returns its markdown answer.
func Advise(ctx context.Context, client *genai.Client, e ror.Evaluation, currency, question string) (string, error) {
	expert := New()
	if err := expert.Start(ctx, client); err != nil {
		return "", err
	}
	content, err := expert.Ask(ctx, &genai.Part{Text: Prompt(e, currency, question)})
	if err != nil {
		return "", err
	}
	answer := Text(content)
	if strings.TrimSpace(answer) == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
