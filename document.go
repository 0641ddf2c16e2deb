package ror

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// InputPaths locates the fields of an Input inside a JSON document.
type InputPaths struct {
	InitialAmount string
	FinalAmount   string
	Years         string
}

// DefaultInputPaths reads a document shaped like the JSON encoding of Input.
var DefaultInputPaths = InputPaths{
	InitialAmount: "$.initialAmount",
	FinalAmount:   "$.finalAmount",
	Years:         "$.years",
}

// DecodeInput reads a JSON document from r and extracts an Input with paths.
// Empty paths default to DefaultInputPaths.
func DecodeInput(r io.Reader, paths InputPaths) (Input, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Input{}, fmt.Errorf("error decoding input document: %w", err)
	}
	return InputFrom(doc, paths)
}

// InputFrom extracts an Input from a decoded JSON document.
//
// A path that matches nothing is a missing field, not an error: the
// validator reports it like an empty form field. Only malformed paths fail.
func InputFrom(doc any, paths InputPaths) (Input, error) {
	if paths.InitialAmount == "" {
		paths.InitialAmount = DefaultInputPaths.InitialAmount
	}
	if paths.FinalAmount == "" {
		paths.FinalAmount = DefaultInputPaths.FinalAmount
	}
	if paths.Years == "" {
		paths.Years = DefaultInputPaths.Years
	}

	var in Input
	var err error
	if in.InitialAmount, err = lookup(doc, paths.InitialAmount); err != nil {
		return Input{}, err
	}
	if in.FinalAmount, err = lookup(doc, paths.FinalAmount); err != nil {
		return Input{}, err
	}
	if in.Years, err = lookup(doc, paths.Years); err != nil {
		return Input{}, err
	}
	return in, nil
}

func lookup(doc any, path string) (Number, error) {
	eval, err := jsonpath.New(path)
	if err != nil {
		return None(), fmt.Errorf("invalid path %q: %w", path, err)
	}
	jval, err := eval(context.Background(), doc)
	if err != nil {
		// unknown keys and out of range indexes
		return None(), nil
	}
	// a filter or wildcard returns a list of answers: keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return None(), nil
		}
		jval = jlist[0]
	}
	return NumberOf(jval), nil
}
