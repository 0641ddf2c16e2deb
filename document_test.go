package ror

import (
	"strings"
	"testing"
)

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		paths InputPaths
		want  Input
	}{
		{
			name: "default paths",
			doc:  `{"initialAmount": 10000, "finalAmount": "15,000", "years": 5}`,
			want: Input{InitialAmount: Some(10000), FinalAmount: Some(15000), Years: Some(5)},
		},
		{
			name: "missing field",
			doc:  `{"initialAmount": 10000, "years": null}`,
			want: Input{InitialAmount: Some(10000)},
		},
		{
			name: "custom paths",
			doc:  `{"position": {"cost": 250.5, "value": 300}, "held": [{"years": 2}]}`,
			paths: InputPaths{
				InitialAmount: "$.position.cost",
				FinalAmount:   "$.position.value",
				Years:         "$.held[*].years",
			},
			want: Input{InitialAmount: Some(250.5), FinalAmount: Some(300), Years: Some(2)},
		},
		{
			name:  "empty list",
			doc:   `{"held": []}`,
			paths: InputPaths{Years: "$.held[*].years"},
			want:  Input{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeInput(strings.NewReader(tt.doc), tt.paths)
			if err != nil {
				t.Fatalf("DecodeInput() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeInput() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeInputErrors(t *testing.T) {
	if _, err := DecodeInput(strings.NewReader(`{"initialAmount":`), InputPaths{}); err == nil {
		t.Error("DecodeInput(truncated document) expected an error")
	}
	if _, err := DecodeInput(strings.NewReader(`{}`), InputPaths{Years: "$.["}); err == nil {
		t.Error("DecodeInput(malformed path) expected an error")
	}
}
