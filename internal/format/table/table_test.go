package table

import (
	"reflect"
	"testing"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"work", "1 windows"},
		{"a", "2 windows (attached)"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft}, ": ")
	want := []string{
		"work: 1 windows",
		"   a: 2 windows (attached)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatUsesDisplayWidth(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
		{"a", "z"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft}, " ")
	want := []string{"日本 x", "ab   y", "a    z"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil, " "); got != nil {
		t.Fatalf("expected nil for no rows, got %q", got)
	}
}
