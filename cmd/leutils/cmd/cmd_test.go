package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/leutils/foundation/core/error"
	"github.com/msto63/leutils/internal/render"
)

const testConfig = `
[log]
level = "warn"
format = "text"

[output]
format = "text"
color = false
`

type runResult struct {
	stdout string
	stderr string
	err    error
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()

	cfgPath := writeTemp(t, "leutils.toml", testConfig)

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := root.Execute()
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestTokenise_Arguments(t *testing.T) {
	res := run(t, "", "tokenise", `cp -r "My Documents" --verbose`)
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}

	want := "$ cp -r \"My Documents\" --verbose\n" +
		"  0  cp\n" +
		"  1  -r" + strings.Repeat(" ", 12) + "flag\n" +
		"  2  My Documents\n" +
		"  3  --verbose" + strings.Repeat(" ", 5) + "option\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestTokenise_JoinsPositionalArguments(t *testing.T) {
	res := run(t, "", "tokenise", "-o", "json", "--", "git", "commit", "-m", `"first commit"`)
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}

	var doc render.Document
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, res.stdout)
	}
	got := doc.Results[0].Arguments
	if len(got) != 4 || got[3] != "first commit" {
		t.Errorf("Arguments = %q", got)
	}
}

func TestTokenise_Stdin(t *testing.T) {
	res := run(t, "ls -la\n\n  \necho \"hi there\"\r\n", "tokenise", "-o", "json")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}

	var doc render.Document
	if err := json.Unmarshal([]byte(res.stdout), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(doc.Results) != 2 {
		t.Fatalf("got %d results, want 2 (blank lines skipped)", len(doc.Results))
	}
	if doc.Results[1].Arguments[1] != "hi there" {
		t.Errorf("second line arguments = %q", doc.Results[1].Arguments)
	}
}

func TestTokenise_File(t *testing.T) {
	file := writeTemp(t, "lines.txt", "a -b\n--c d\n")
	res := run(t, "", "tokenise", "-f", file, "-o", "yaml")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	for _, want := range []string{"results:", "input: a -b", "input: --c d"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout should contain %q:\n%s", want, res.stdout)
		}
	}
}

func TestTokenise_UnclosedQuote(t *testing.T) {
	res := run(t, "ok line\nbroken \"line\n", "tokenise")

	if !mdwerror.HasCode(res.err, mdwerror.CodeUnclosedQuote) {
		t.Fatalf("error = %v, want UNCLOSED_QUOTE", res.err)
	}
	if ExitCode(res.err) != 2 {
		t.Errorf("ExitCode() = %d, want 2", ExitCode(res.err))
	}
	if !strings.Contains(res.err.Error(), "1 of 2 lines") {
		t.Errorf("error message = %q", res.err.Error())
	}
	if !strings.Contains(res.stdout, "error: expected closing quote for starting quote -> \"line") {
		t.Errorf("stdout should report the failed line:\n%s", res.stdout)
	}
	if !strings.Contains(res.stderr, "[WRN]") || !strings.Contains(res.stderr, "fragment=line") {
		t.Errorf("stderr should log the fragment:\n%s", res.stderr)
	}
	if strings.Contains(res.stderr, "lines have an unclosed quote") {
		t.Errorf("the summary is returned, not logged:\n%s", res.stderr)
	}
}

func TestTokenise_TraceLogging(t *testing.T) {
	cfgPath := writeTemp(t, "trace.toml", "[log]\nlevel = \"trace\"\nformat = \"text\"\n")

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"--config", cfgPath, "tokenise", "tar", "-xzf", "--strip"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"[TRC]", "line tokenised", "arguments=3", "flags=1", "options=1"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr should contain %q:\n%s", want, stderr.String())
		}
	}
}

func TestTokenise_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		code     mdwerror.Code
		exitCode int
	}{
		{"unknown output format", []string{"tokenise", "-o", "xml", "a"}, mdwerror.CodeInvalidFormat, 4},
		{"missing input file", []string{"tokenise", "-f", "/does/not/exist.txt"}, mdwerror.CodeNotFound, 3},
		{"file and arguments", []string{"tokenise", "-f", "x.txt", "a"}, mdwerror.CodeInvalidInput, 2},
		{"bad log format", []string{"--log-format", "xml", "tokenise", "a"}, mdwerror.CodeInvalidInput, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, "", tt.args...)
			if !mdwerror.HasCode(res.err, tt.code) {
				t.Fatalf("error = %v (code %v), want %v", res.err, mdwerror.GetCode(res.err), tt.code)
			}
			if got := ExitCode(res.err); got != tt.exitCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exitCode)
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	res := run(t, "", "-v", "tokenise", "a")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "configuration loaded") {
		t.Errorf("debug log missing from stderr:\n%s", res.stderr)
	}
	if !strings.Contains(res.stderr, "(cid=") {
		t.Errorf("log lines should carry a correlation ID:\n%s", res.stderr)
	}
}

func TestMissingConfigFile(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.toml"), "version"})

	err := root.Execute()
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestVersion(t *testing.T) {
	res := run(t, "", "version")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "leutils v") || !strings.Contains(res.stdout, "Tokeniser:") {
		t.Errorf("stdout = %q", res.stdout)
	}

	res = run(t, "", "version", "--json")
	var info map[string]string
	if err := json.Unmarshal([]byte(res.stdout), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["version"] == "" || info["go_version"] == "" {
		t.Errorf("version info = %v", info)
	}
}

func TestInteractive(t *testing.T) {
	// Enter commits the line, Ctrl+C quits
	res := run(t, "ls -la\r\x03", "-v", "interactive")
	if res.err != nil {
		t.Fatalf("Execute() error = %v", res.err)
	}
	if !strings.Contains(res.stderr, "interactive session ended") || !strings.Contains(res.stderr, "committed=1") {
		t.Errorf("stderr should log the session summary:\n%s", res.stderr)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("ExitCode(nil) should be 0")
	}
	if ExitCode(os.ErrClosed) != 1 {
		t.Error("unclassified errors should exit with 1")
	}
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, mdwerror.New("boom"))
	if buf.String() != "Error: boom\n" {
		t.Errorf("printError() = %q", buf.String())
	}
}
