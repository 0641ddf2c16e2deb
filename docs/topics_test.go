package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Fenced blocks executed by TestCodeBlocks. Both must exit with status 0;
// a failing "bash run" stops the file, a failing "bash check" is reported.
const (
	bashRun   = "bash run"
	bashCheck = "bash check"
)

// readmeTopic matches the "* name: description" lines of readme.md.
var readmeTopic = regexp.MustCompile(`^\*\s+([^:]+):`)

func TestReadmeListsTopics(t *testing.T) {
	readme, err := GetTopic(Readme)
	if err != nil {
		t.Fatal(err)
	}
	var listed []string
	for _, line := range strings.Split(readme, "\n") {
		if m := readmeTopic.FindStringSubmatch(line); m != nil {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	slices.Sort(listed)

	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(listed, topics) {
		t.Errorf("readme.md lists %v, want every topic file %v", listed, topics)
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	want := []string{"bands", "formula", "server", "validation"}
	if !slices.Equal(topics, want) {
		t.Errorf("GetAllTopics() = %v, want %v", topics, want)
	}

	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) unexpected error: %v", err)
	}
	for _, topic := range want {
		content, _ := GetTopic(topic)
		if !strings.Contains(all, content) {
			t.Errorf("GetTopic(*) is missing topic %q", topic)
		}
	}
	if _, err := GetTopic("unknown"); err == nil {
		t.Error("GetTopic(unknown) expected an error")
	}
}

// block is a command snippet of a topic.
type block struct {
	kind string
	code string
	line int
}

// blocks returns the executable fenced blocks of a markdown file.
func blocks(t *testing.T, file string) []block {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}

	var found []block
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		kind := string(fcb.Info.Segment.Value(source))
		if kind != bashRun && kind != bashCheck {
			return ast.WalkContinue, nil
		}
		var code strings.Builder
		for i := 0; i < fcb.Lines().Len(); i++ {
			seg := fcb.Lines().At(i)
			code.Write(seg.Value(source))
		}
		line := bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1
		found = append(found, block{kind: kind, code: code.String(), line: line})
		return ast.WalkSkipChildren, nil
	})
	return found
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "rorc"), "../rorc/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build rorc: %v\n%s", err, out)
	}

	// documented outputs use the default display settings, whatever the caller's environment.
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")),
		"ROR_DEFAULT_CURRENCY=USD", "ROR_DECIMALS=2", "ROR_VERBOSE=false",
	)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			dir := t.TempDir()
			for _, b := range blocks(t, file) {
				cmd := exec.Command("bash", "-c", "set -e; "+b.code)
				cmd.Dir = dir
				cmd.Env = env
				out, err := cmd.CombinedOutput()
				if err == nil {
					continue
				}
				if b.kind == bashRun {
					t.Fatalf("%s:%d: %s failed: %v\n%s", file, b.line, b.kind, err, out)
				}
				t.Errorf("%s:%d: %s failed: %v\n%s", file, b.line, b.kind, err, out)
			}
		})
	}
}
