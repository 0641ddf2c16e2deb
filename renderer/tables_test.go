package renderer

import (
	"strings"
	"testing"

	"github.com/edu2101/ror"
)

func TestBandsMarkdown(t *testing.T) {
	got := BandsMarkdown()
	for _, b := range ror.Bands() {
		if !strings.Contains(got, b.Title) {
			t.Errorf("BandsMarkdown() is missing band %q:\n%s", b.Title, got)
		}
	}
	// best band first
	if strings.Index(got, "Excelente") > strings.Index(got, "Negativo") {
		t.Errorf("BandsMarkdown() bands are not in descending order:\n%s", got)
	}
}

func TestTimeValueMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		value TimeValue
		want  []string
	}{
		{
			name:  "future value",
			value: FutureValue(10000, 0.1, 2, "USD"),
			want:  []string{"$10,000.00 a 10.00% anual durante 2 años: **$12,100.00**", "$11,000.00", "$12,100.00"},
		},
		{
			name:  "present value",
			value: PresentValue(12100, 0.1, 2, "EUR"),
			want:  []string{"€10,000.00", "€12,100.00"},
		},
		{
			name:  "fractional year",
			value: FutureValue(100, 0.1, 1.5, "USD"),
			want:  []string{"1.5 años", "$110.00", "$115.37"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeValueMarkdown("Valor", tt.value)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("TimeValueMarkdown() is missing %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestTimeValueMarkdownLongPeriod(t *testing.T) {
	got := TimeValueMarkdown("Valor", FutureValue(1, 0, 1e12, "USD"))
	if strings.Contains(got, "| Año") {
		t.Errorf("TimeValueMarkdown(1e12 years) has a schedule:\n%s", got)
	}
	if !strings.Contains(got, "**$1.00**") {
		t.Errorf("TimeValueMarkdown(1e12 years) is missing the future value:\n%s", got)
	}
}

func TestReportHTML(t *testing.T) {
	got, err := ReportHTML(gainReport())
	if err != nil {
		t.Fatalf("ReportHTML() unexpected error: %v", err)
	}
	for _, w := range []string{"<table>", "Buen Rendimiento", "#0056D2"} {
		if !strings.Contains(got, w) {
			t.Errorf("ReportHTML() is missing %q:\n%s", w, got)
		}
	}

	got, err = ReportHTML(invalidReport())
	if err != nil {
		t.Fatalf("ReportHTML(invalid) unexpected error: %v", err)
	}
	if !strings.Contains(got, ror.InvalidFormError) || strings.Contains(got, "border:") {
		t.Errorf("ReportHTML(invalid) = %s", got)
	}
}

func TestGauge(t *testing.T) {
	if got := Gauge(invalidReport(), 10); got != "" {
		t.Errorf("Gauge(invalid) = %q, want empty", got)
	}
	got := Gauge(gainReport(), 10)
	// 16.89% of 10 cells
	if n := strings.Count(got, "█"); n != 2 {
		t.Errorf("Gauge() has %d filled cells, want 2: %q", n, got)
	}
	if n := strings.Count(got, "░"); n != 8 {
		t.Errorf("Gauge() has %d empty cells, want 8: %q", n, got)
	}
	if !strings.Contains(got, "+8.4%") {
		t.Errorf("Gauge() = %q, want the signed rate", got)
	}
}
