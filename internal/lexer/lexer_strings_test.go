package lexer

import (
	"testing"

	"github.com/cwbudde/go-brio/internal/errors"
	"github.com/cwbudde/go-brio/pkg/token"
)

func TestPlainString(t *testing.T) {
	l := New(`"hello world"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	if tok.Literal != "hello world" {
		t.Fatalf("literal wrong: %q", tok.Literal)
	}
	if len(tok.Segments) != 0 {
		t.Fatalf("plain string should carry no segments, got %d", len(tok.Segments))
	}
}

func TestEmptyString(t *testing.T) {
	l := New(`""`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING || tok.Literal != "" {
		t.Fatalf("expected empty STRING, got %s %q", tok.Type, tok.Literal)
	}
}

func TestStringRoundTrip(t *testing.T) {
	// An interpolation-free string lexes to a single STRING token whose
	// value equals the original text between the quotes.
	contents := []string{"a", "with spaces", "punct!@#%", "tabs\tand\tmore"}

	for _, want := range contents {
		l := New(`"` + want + `"`)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("contents %q - unexpected error: %v", want, err)
		}
		if tok.Type != token.STRING || tok.Literal != want {
			t.Errorf("contents %q - got %s %q", want, tok.Type, tok.Literal)
		}
	}
}

func TestInterpolationSegments(t *testing.T) {
	l := New(`"Hello, ${name}!"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING_INTERP {
		t.Fatalf("expected STRING_INTERP, got %s", tok.Type)
	}

	want := []token.Segment{
		{Kind: token.SegmentLiteral, Text: "Hello, "},
		{Kind: token.SegmentExpr, Text: "name"},
		{Kind: token.SegmentLiteral, Text: "!"},
	}
	if len(tok.Segments) != len(want) {
		t.Fatalf("segment count wrong: expected %d, got %d", len(want), len(tok.Segments))
	}
	for i, seg := range want {
		if tok.Segments[i] != seg {
			t.Errorf("segments[%d] wrong: expected %+v, got %+v", i, seg, tok.Segments[i])
		}
	}
}

func TestInterpolationOnly(t *testing.T) {
	l := New(`"${x}"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING_INTERP {
		t.Fatalf("expected STRING_INTERP, got %s", tok.Type)
	}
	if len(tok.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(tok.Segments))
	}
	if tok.Segments[0].Kind != token.SegmentExpr || tok.Segments[0].Text != "x" {
		t.Fatalf("segment wrong: %+v", tok.Segments[0])
	}
}

func TestInterpolationNestedBraces(t *testing.T) {
	// The expression span tracks brace depth, so balanced {} inside the
	// expression text is consumed whole.
	l := New(`"${a { b } c}"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING_INTERP {
		t.Fatalf("expected STRING_INTERP, got %s", tok.Type)
	}
	if tok.Segments[0].Text != "a { b } c" {
		t.Fatalf("raw expression text wrong: %q", tok.Segments[0].Text)
	}
}

func TestMultipleInterpolations(t *testing.T) {
	l := New(`"${a}${b}"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING_INTERP {
		t.Fatalf("expected STRING_INTERP, got %s", tok.Type)
	}
	if len(tok.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(tok.Segments))
	}
	if tok.Segments[0].Text != "a" || tok.Segments[1].Text != "b" {
		t.Fatalf("segments wrong: %+v", tok.Segments)
	}
}

func TestDollarWithoutBraceIsLiteral(t *testing.T) {
	l := New(`"cost: $5"`)

	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.STRING || tok.Literal != "cost: $5" {
		t.Fatalf("got %s %q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"hi`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}
	if !errors.IsKind(err, errors.LexError) {
		t.Fatalf("expected LexError, got %v", err)
	}
}

func TestUnterminatedInterpolation(t *testing.T) {
	l := New(`"${x"`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected error for unterminated interpolation")
	}
	if !errors.IsKind(err, errors.LexError) {
		t.Fatalf("expected LexError, got %v", err)
	}
}
