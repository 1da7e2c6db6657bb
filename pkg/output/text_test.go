package output

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ccollicutt/linetools/pkg/comm"
)

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter()
	result := &comm.Result{
		Entries: []comm.Entry{
			{Category: comm.FirstOnly, Line: "a"},
			{Category: comm.Common, Line: "b"},
			{Category: comm.SecondOnly, Line: "c"},
		},
	}

	var buf bytes.Buffer
	if err := f.Format(context.Background(), result, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "a\n\t\tb\n\tc\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Format_Empty(t *testing.T) {
	f := NewTextFormatter()

	var buf bytes.Buffer
	if err := f.Format(context.Background(), &comm.Result{}, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() wrote %q, want nothing", buf.String())
	}
}

func TestTextFormatter_Format_KeepsLineWhitespace(t *testing.T) {
	f := NewTextFormatter()
	result := &comm.Result{
		Entries: []comm.Entry{{Category: comm.SecondOnly, Line: "  indented\t"}},
	}

	var buf bytes.Buffer
	if err := f.Format(context.Background(), result, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if want := "\t  indented\t\n"; buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("pipe closed")
}

func TestTextFormatter_Format_WriteError(t *testing.T) {
	f := NewTextFormatter()
	result := &comm.Result{Entries: []comm.Entry{{Category: comm.FirstOnly, Line: "a"}}}

	if err := f.Format(context.Background(), result, brokenWriter{}); err == nil {
		t.Error("Format() expected error from failing writer")
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		category comm.Category
		want     string
	}{
		{comm.FirstOnly, ""},
		{comm.SecondOnly, "\t"},
		{comm.Common, "\t\t"},
	}
	for _, tt := range tests {
		if got := Prefix(tt.category); got != tt.want {
			t.Errorf("Prefix(%v) = %q, want %q", tt.category, got, tt.want)
		}
	}
}

var _ Formatter = (*TextFormatter)(nil)
