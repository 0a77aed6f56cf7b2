package ui

import (
	"reflect"
	"testing"
)

// charWidth measures one unit per byte.
func charWidth(s string) int32 { return int32(len(s)) }

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int32
		want     []string
	}{
		{"empty", "", 10, nil},
		{"only spaces", "   \t ", 10, nil},
		{"fits on one line", "let it snow", 20, []string{"let it snow"}},
		{"exact width", "aaa bbb", 7, []string{"aaa bbb"}},
		{"one over width", "aaa bbb", 6, []string{"aaa", "bbb"}},
		{"word wider than line", "snowflake", 4, []string{"snowflake"}},
		{"wide word between short ones", "a snowflake b", 4, []string{"a", "snowflake", "b"}},
		{"collapses whitespace", "  a   b\n c ", 5, []string{"a b c"}},
		{"several lines", "one two three four", 9, []string{"one two", "three", "four"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrap(tt.text, tt.maxWidth, charWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrap(%q, %d) = %q, want %q", tt.text, tt.maxWidth, got, tt.want)
			}
		})
	}
}
