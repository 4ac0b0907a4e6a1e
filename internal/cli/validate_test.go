package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeDeckFile writes a deck fixture and returns its path.
func writeDeckFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write deck: %v", err)
	}
	return path
}

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	path := writeDeckFile(t, "deck.csv", strings.Join([]string{
		"Question,Option A,Option B,Correct Answer",
		"What is 1+1?,1,2,B",
		"What is 2+2?,4,5,4",
	}, "\n"))

	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Deck OK (2 questions)") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandDiagnostics verifies unresolvable answers are
// reported as warnings without failing the command.
func TestValidateCommandDiagnostics(t *testing.T) {
	path := writeDeckFile(t, "deck.csv", strings.Join([]string{
		"Question,Option A,Option B,Correct Answer",
		"What is 1+1?,1,2,seven",
	}, "\n"))

	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d", ExitOK, code)
	}
	if !strings.Contains(out.String(), "Warning:") {
		t.Fatalf("expected warning prefix, got %q", out.String())
	}
	if !strings.Contains(out.String(), "does not name an option") {
		t.Fatalf("expected diagnostic, got %q", out.String())
	}
	if !strings.Contains(out.String(), "Deck OK (1 questions, 1 warning(s))") {
		t.Fatalf("expected warning summary, got %q", out.String())
	}
}

// TestValidateCommandLoadFailure verifies load errors land on stderr.
func TestValidateCommandLoadFailure(t *testing.T) {
	path := writeDeckFile(t, "deck.csv", "Question,Option A\nonly one option,x\n")

	var out, err bytes.Buffer
	code := Run([]string{"validate", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "Load failed") {
		t.Fatalf("expected load failure, got %q", err.String())
	}
}

// TestValidateCommandMissingArg verifies the deck file is required.
func TestValidateCommandMissingArg(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(err.String(), "expected exactly one deck file") {
		t.Fatalf("expected argument error, got %q", err.String())
	}
}
