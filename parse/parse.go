// Package parse builds ir value trees from JSON record documents.
package parse

import (
	"fmt"
	"strconv"

	"github.com/signadot/otype-schema/debug"
	"github.com/signadot/otype-schema/ir"
	"github.com/signadot/otype-schema/token"
)

// Parse parses one JSON document into an ir.Node tree. Object field order
// is preserved and duplicate keys are kept; reconciling duplicates is the
// inference layer's job.
func Parse(d []byte) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Parse() {
		debug.Logf("parse: %d tokens from %d bytes", len(toks), len(d))
	}
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	off := 0
	res, err := parseValue(toks, nil, &off)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.UnexpectedErr(toks[off].String(), toks[off].Pos))
	}
	return res, nil
}

func parseValue(toks []token.Token, p *ir.Node, pi *int) (*ir.Node, error) {
	if *pi >= len(toks) {
		return nil, unexpectedEOD(toks)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		obj := &ir.Node{Type: ir.ObjectType, Parent: p}
		return parseObj(toks, obj, pi)
	case token.TLSquare:
		*pi++
		arr := &ir.Node{Type: ir.ArrayType, Parent: p}
		return parseArr(toks, arr, pi)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		sy.Parent = p
		return sy, nil
	case token.TInteger:
		*pi++
		v, err := strconv.ParseInt(string(t.Bytes), 10, 64)
		if err != nil {
			// out of int64 range, keep the value as a float
			f, ferr := strconv.ParseFloat(string(t.Bytes), 64)
			if ferr != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			fy := ir.FromFloat(f)
			fy.Parent = p
			return fy, nil
		}
		iy := ir.FromInt(v)
		iy.Parent = p
		return iy, nil
	case token.TFloat:
		*pi++
		f, err := strconv.ParseFloat(string(t.Bytes), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		fy := ir.FromFloat(f)
		fy.Parent = p
		return fy, nil
	case token.TTrue, token.TFalse:
		*pi++
		by := ir.FromBool(t.Type == token.TTrue)
		by.Parent = p
		return by, nil
	case token.TNull:
		*pi++
		ny := ir.Null()
		ny.Parent = p
		return ny, nil
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse,
			token.UnexpectedErr(t.String(), t.Pos))
	}
}

func parseObj(toks []token.Token, obj *ir.Node, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRCurl {
		*pi++
		return obj, nil
	}
	for {
		if *pi >= len(toks) {
			return nil, unexpectedEOD(toks)
		}
		key := &toks[*pi]
		if key.Type != token.TString {
			return nil, fmt.Errorf("%w: %w", ErrParse,
				token.ExpectedErr("object key", key.Pos))
		}
		*pi++
		if err := expect(toks, pi, token.TColon, ":"); err != nil {
			return nil, err
		}
		val, err := parseValue(toks, obj, pi)
		if err != nil {
			return nil, err
		}
		obj.AppendField(key.String(), val)
		if *pi >= len(toks) {
			return nil, unexpectedEOD(toks)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRCurl:
			*pi++
			return obj, nil
		default:
			return nil, fmt.Errorf("%w: %w", ErrParse,
				token.ExpectedErr("',' or '}'", toks[*pi].Pos))
		}
	}
}

func parseArr(toks []token.Token, arr *ir.Node, pi *int) (*ir.Node, error) {
	if *pi < len(toks) && toks[*pi].Type == token.TRSquare {
		*pi++
		return arr, nil
	}
	for {
		elt, err := parseValue(toks, arr, pi)
		if err != nil {
			return nil, err
		}
		elt.ParentIndex = len(arr.Values)
		arr.Values = append(arr.Values, elt)
		if *pi >= len(toks) {
			return nil, unexpectedEOD(toks)
		}
		switch toks[*pi].Type {
		case token.TComma:
			*pi++
		case token.TRSquare:
			*pi++
			return arr, nil
		default:
			return nil, fmt.Errorf("%w: %w", ErrParse,
				token.ExpectedErr("',' or ']'", toks[*pi].Pos))
		}
	}
}

func expect(toks []token.Token, pi *int, tt token.TokenType, what string) error {
	if *pi >= len(toks) {
		return unexpectedEOD(toks)
	}
	if toks[*pi].Type != tt {
		return fmt.Errorf("%w: %w", ErrParse,
			token.ExpectedErr(what, toks[*pi].Pos))
	}
	*pi++
	return nil
}

func unexpectedEOD(toks []token.Token) error {
	if len(toks) == 0 {
		return fmt.Errorf("%w: unexpected end of document", ErrParse)
	}
	last := &toks[len(toks)-1]
	return fmt.Errorf("%w: unexpected end of document after %s", ErrParse, last.Info())
}
