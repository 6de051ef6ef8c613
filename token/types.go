package token

import "fmt"

type TokenType int

const (
	TLCurl TokenType = iota
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TString
	TInteger
	TFloat
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value as a string, unquoting TString tokens.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		return QuotedToString(t.Bytes)
	default:
		return string(t.Bytes)
	}
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
