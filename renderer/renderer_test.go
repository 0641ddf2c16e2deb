package renderer

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"

	"github.com/edu2101/ror"
)

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixPartials = flag.Bool("fix-partials", false, "if true, update failing partial test case .md files with the received output")

func TestFixPartialsIsOff(t *testing.T) {
	if *fixPartials {
		t.Fatal("-fix-partials is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

// gainReport is the report of a 10,000 to 15,000 investment over 5 years.
func gainReport() *Report {
	return NewReport(ror.Evaluate(ror.ParseInput("10000", "15000", "5")), "USD")
}

// invalidReport is the report of a form with a missing initial amount and too many years.
func invalidReport() *Report {
	return NewReport(ror.Evaluate(ror.ParseInput("", "100", "150")), "USD")
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name       string
		goldenFile string
		data       *Report
	}{
		{name: "report_title", goldenFile: "testdata/report_title.md", data: gainReport()},
		{name: "report_result", goldenFile: "testdata/report_result.md", data: gainReport()},
		{name: "report_interpretation", goldenFile: "testdata/report_interpretation.md", data: gainReport()},
		{name: "report_metrics", goldenFile: "testdata/report_metrics.md", data: gainReport()},
		{name: "report_error", goldenFile: "testdata/report_error.md", data: invalidReport()},
	}

	// --- Coverage Check ---
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, partialFile := range reportPartials {
		if _, ok := tested[partialFile]; !ok {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partialFile)
		}
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			templateFile := tc.name + ".md"
			templateContent, err := fs.ReadFile(templates, templateFile)
			if err != nil {
				t.Fatalf("failed to read template file %q: %v", templateFile, err)
			}

			tmpl, err := template.New(tc.name).Parse(string(templateContent))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", templateFile, err)
			}

			var rendered bytes.Buffer
			if err := tmpl.Execute(&rendered, tc.data); err != nil {
				t.Fatalf("failed to execute template %q: %v", templateFile, err)
			}
			compareGolden(t, tc.goldenFile, rendered.String())
		})
	}
}

func TestReportRendering(t *testing.T) {
	testCases := []struct {
		name       string
		goldenFile string
		data       *Report
	}{
		{name: "gain", goldenFile: "testdata/report_assembly.md", data: gainReport()},
		{name: "invalid", goldenFile: "testdata/report_error_assembly.md", data: invalidReport()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compareGolden(t, tc.goldenFile, RenderReport(tc.data))
		})
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport(ror.Evaluate(ror.ParseInput("10000", "5000", "1")), "EUR")
	if !r.Valid {
		t.Fatalf("NewReport() = %+v, want a valid report", r)
	}
	if got, want := r.Signed, "-50.0%"; got != want {
		t.Errorf("Signed = %q, want %q", got, want)
	}
	if got, want := r.Change, "-€5,000.00"; got != want {
		t.Errorf("Change = %q, want %q", got, want)
	}
	if got, want := r.ResultLabel, "Pérdida"; got != want {
		t.Errorf("ResultLabel = %q, want %q", got, want)
	}
	if got, want := r.Interpretation.Band, ror.BandPoor; got != want {
		t.Errorf("Interpretation = %q, want %q", got, want)
	}
	if r.GaugeDegrees != 180 || r.BarWidth != 100 {
		t.Errorf("GaugeDegrees, BarWidth = %v, %v, want 180, 100", r.GaugeDegrees, r.BarWidth)
	}

	// a calculator failure has no field errors.
	failed := NewReport(ror.Evaluate(ror.Input{
		InitialAmount: ror.Some(1e-300),
		FinalAmount:   ror.Some(1e9),
		Years:         ror.Some(1e-3),
	}), "")
	if failed.Valid || failed.Error != ror.GenericCalculationError || len(failed.FieldErrors) != 0 {
		t.Errorf("NewReport(calculator failure) = %+v", failed)
	}
	if got := RenderReport(failed); !strings.HasSuffix(got, ror.GenericCalculationError+"\n") {
		t.Errorf("RenderReport(calculator failure) = %q, want the generic message last", got)
	}
}

// compareGolden compares got with the content of goldenFile, or updates it in -fix-partials mode.
func compareGolden(t *testing.T, goldenFile, got string) {
	t.Helper()
	goldenData, err := fs.ReadFile(testcasesGoldenFS, goldenFile)
	if err != nil {
		if os.IsNotExist(err) && *fixPartials {
			goldenData = []byte{}
		} else {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(goldenData)
	if got == want {
		return
	}
	if *fixPartials {
		if err := os.MkdirAll(filepath.Dir(goldenFile), 0755); err != nil {
			t.Fatalf("failed to create testdata directory: %v", err)
		}
		if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
			t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
		}
		t.Logf("updated golden file %s", goldenFile)
		return
	}
	t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", goldenFile, createDiff(want, got))
}

// createDiff prints the lines that differ between want and got.
func createDiff(want, got string) string {
	wl := strings.Split(want, "\n")
	gl := strings.Split(got, "\n")
	var b strings.Builder
	for i := 0; i < max(len(wl), len(gl)); i++ {
		var w, g string
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if w != g {
			fmt.Fprintf(&b, "%d:\n- %q\n+ %q\n", i+1, w, g)
		}
	}
	return b.String()
}
