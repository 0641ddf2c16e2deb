// Package ror computes the annualized rate of return of a single investment
// from an initial amount, a final amount and a holding period in years.
//
// The core is made of small pure functions:
//   - Validation: ValidateInputs checks the raw, possibly missing, inputs and
//     describes every invalid field with a message meant for the user.
//   - Calculation: CalculateRoR applies the compound annual growth rate
//     formula ((final / initial)^(1/years)) - 1. CalculateFutureValue and
//     CalculatePresentValue are the time-value conversions at a fixed rate.
//   - Presentation helpers: FormatCurrency, FormatPercentage and Interpret,
//     which classifies a rate into a qualitative band.
//
// Evaluate chains validation and calculation the way the user interfaces of
// this module do: the `rorc` command-line tool, its interactive form and
// its HTTP API.
package ror
