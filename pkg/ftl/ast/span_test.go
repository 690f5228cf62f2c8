package ast

import "testing"

func TestSpan(t *testing.T) {
	t.Parallel()

	s := Span{Start: 2, End: 5}

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if !s.Contains(2) || !s.Contains(4) {
		t.Error("Contains() should include start and last byte")
	}
	if s.Contains(5) {
		t.Error("Contains() should exclude end")
	}
	if got := s.Text("abcdefg"); got != "cde" {
		t.Errorf("Text() = %q, want %q", got, "cde")
	}
}

func TestSpan_TextOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		span Span
	}{
		{"past end", Span{Start: 1, End: 10}},
		{"negative start", Span{Start: -1, End: 2}},
		{"inverted", Span{Start: 3, End: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.span.Text("abc"); got != "" {
				t.Errorf("Text() = %q, want empty", got)
			}
		})
	}
}
