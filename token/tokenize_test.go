package token

import (
	"errors"
	"testing"
)

type tokTest struct {
	in    string
	types []TokenType
}

func TestTokenize(t *testing.T) {
	tts := []tokTest{
		{
			in:    `{}`,
			types: []TokenType{TLCurl, TRCurl},
		},
		{
			in:    `[]`,
			types: []TokenType{TLSquare, TRSquare},
		},
		{
			in:    `{"a": 1}`,
			types: []TokenType{TLCurl, TString, TColon, TInteger, TRCurl},
		},
		{
			in:    `[true, false, null]`,
			types: []TokenType{TLSquare, TTrue, TComma, TFalse, TComma, TNull, TRSquare},
		},
		{
			in:    `-12`,
			types: []TokenType{TInteger},
		},
		{
			in:    `0`,
			types: []TokenType{TInteger},
		},
		{
			in:    `1.5e-10`,
			types: []TokenType{TFloat},
		},
		{
			in:    `-0.25`,
			types: []TokenType{TFloat},
		},
		{
			in:    `1e14`,
			types: []TokenType{TFloat},
		},
		{
			in:    "\n\t {\n\"k\"\t: [1,\n2]}\n",
			types: []TokenType{TLCurl, TString, TColon, TLSquare, TInteger, TComma, TInteger, TRSquare, TRCurl},
		},
		{
			in:    `"é\n\""`,
			types: []TokenType{TString},
		},
	}
	for i := range tts {
		tt := &tts[i]
		toks, err := Tokenize(nil, []byte(tt.in))
		if err != nil {
			t.Errorf("tokenize %q: %v", tt.in, err)
			continue
		}
		if len(toks) != len(tt.types) {
			t.Errorf("tokenize %q: got %d tokens, want %d", tt.in, len(toks), len(tt.types))
			continue
		}
		for j, tok := range toks {
			if tok.Type != tt.types[j] {
				t.Errorf("tokenize %q: token %d is %s, want %s", tt.in, j, tok.Type, tt.types[j])
			}
		}
	}
}

func TestTokenizeErrs(t *testing.T) {
	tts := []struct {
		in string
		e  error
	}{
		{in: `"abc`, e: ErrUnterminated},
		{in: `01`, e: ErrNumberLeadingZero},
		{in: `-`, e: ErrNumber},
		{in: `-x`, e: ErrNumber},
		{in: `tru`, e: ErrLiteral},
		{in: `nul`, e: ErrLiteral},
		{in: `"\x"`, e: ErrBadEscape},
		{in: `"\u00z9"`, e: ErrBadUnicode},
		{in: "\"a\x01b\"", e: ErrControl},
	}
	for i := range tts {
		tt := &tts[i]
		_, err := Tokenize(nil, []byte(tt.in))
		if err == nil {
			t.Errorf("tokenize %q: no error, want %v", tt.in, tt.e)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("tokenize %q: got %v, want %v", tt.in, err, tt.e)
		}
	}
}

func TestTokenPos(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  \"a\": 1\n}"))
	if err != nil {
		t.Fatal(err)
	}
	line, col := toks[1].Pos.LineCol()
	if line != 2 || col != 3 {
		t.Errorf("got %d:%d, want 2:3", line, col)
	}
}

func TestQuotedToString(t *testing.T) {
	tts := []struct {
		in, want string
	}{
		{in: `"hello"`, want: "hello"},
		{in: `"a\tb"`, want: "a\tb"},
		{in: `"\"\\\/"`, want: `"\/`},
		{in: `"é"`, want: "é"},
		{in: `"😀"`, want: "😀"},
	}
	for i := range tts {
		tt := &tts[i]
		if got := QuotedToString([]byte(tt.in)); got != tt.want {
			t.Errorf("unquote %s = %q, want %q", tt.in, got, tt.want)
		}
	}
}
