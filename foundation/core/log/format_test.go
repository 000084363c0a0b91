// File: format_test.go
// Title: Log Format Tests
// Description: Tests for format parsing and the text, console and logfmt
//              formatters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2025-03-02 v0.2.0: Deterministic field order

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleEntry() *Entry {
	e := NewEntry(LevelWarn, "line rejected")
	e.Timestamp = time.Date(2025, 3, 2, 10, 4, 5, 0, time.UTC)
	e.Logger = "leutils"
	e.CorrelationID = "abc"
	e.WithFields(Fields{"line": 3, "input": "a \"b"})
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{" TEXT ", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DBG", LevelDebug, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevelNames(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("LevelWarn = %s/%s", LevelWarn, LevelWarn.ShortString())
	}
	if Level(42).String() != "unknown" || Level(-1).ShortString() != "???" {
		t.Error("out-of-range levels should have placeholder names")
	}
}

func TestTextFormatter(t *testing.T) {
	e := sampleEntry().WithError(errors.New("unclosed"))
	out, err := NewTextFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `10:04:05 [WRN] {leutils} (cid=abc) line rejected [input=a "b line=3] error="unclosed"` + "\n"
	if string(out) != want {
		t.Errorf("Format() =\n%q\nwant\n%q", out, want)
	}
}

func TestConsoleFormatter_NoColor(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, err := f.Format(sampleEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "[WRN] {leutils}") {
		t.Errorf("Format() = %q", out)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := sampleEntry().WithDuration(1500 * time.Microsecond)
	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{
		"level=warn",
		`message="line rejected"`,
		"correlation_id=abc",
		`input="a \"b"`,
		"line=3",
		"duration_ms=1.500",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("logfmt output missing %q: %s", want, s)
		}
	}
	if strings.Index(s, "input=") > strings.Index(s, "line=") {
		t.Error("fields should be written in sorted order")
	}
}
