package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/edu2101/ror"
	md "github.com/nao1215/markdown"
)

// BandsMarkdown lists the interpretation bands from the best to the worst.
func BandsMarkdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Interpretación del rendimiento")

	rows := make([][]string, 0, 4)
	for _, b := range ror.Bands() {
		rows = append(rows, []string{b.Band.Range(), b.Title, b.Description})
	}
	doc.Table(md.TableSet{
		Header: []string{"Rango", "Interpretación", "Descripción"},
		Rows:   rows,
	})
	return doc.String()
}

// TimeValue is a present value and its future value at a rate over years.
type TimeValue struct {
	Present  float64
	Future   float64
	Rate     float64 // decimal fraction
	Years    float64
	Currency string
}

// FutureValue compounds present at rate for years.
func FutureValue(present, rate, years float64, currency string) TimeValue {
	return TimeValue{
		Present:  present,
		Future:   ror.CalculateFutureValue(present, rate, years),
		Rate:     rate,
		Years:    years,
		Currency: currency,
	}
}

// PresentValue discounts future at rate for years.
func PresentValue(future, rate, years float64, currency string) TimeValue {
	return TimeValue{
		Present:  ror.CalculatePresentValue(future, rate, years),
		Future:   future,
		Rate:     rate,
		Years:    years,
		Currency: currency,
	}
}

// TimeValueMarkdown renders v with one row per whole year of the schedule.
// A fractional final year gets a last row of its own. Periods longer than
// ror.MaxYears are rendered without a schedule.
func TimeValueMarkdown(title string, v TimeValue) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	doc.PlainText(fmt.Sprintf("%s a %s anual durante %s: **%s**",
		ror.FormatCurrency(v.Present, v.Currency),
		ror.FormatPercentage(v.Rate),
		years(ror.Some(v.Years)),
		ror.FormatCurrency(v.Future, v.Currency)))

	var rows [][]string
	if v.Years > 0 && v.Years <= ror.MaxYears {
		for y := 1.0; y < v.Years; y++ {
			rows = append(rows, scheduleRow(v, y))
		}
		rows = append(rows, scheduleRow(v, v.Years))
	}
	if len(rows) > 0 {
		doc.Table(md.TableSet{
			Header: []string{"Año", "Valor"},
			Rows:   rows,
		})
	}
	return doc.String()
}

func scheduleRow(v TimeValue, y float64) []string {
	return []string{
		strconv.FormatFloat(y, 'f', -1, 64),
		ror.FormatCurrency(ror.CalculateFutureValue(v.Present, v.Rate, y), v.Currency),
	}
}
