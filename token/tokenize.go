package token

import "bytes"

var (
	kwTrue  = []byte("true")
	kwFalse = []byte("false")
	kwNull  = []byte("null")
)

// Tokenize appends the tokens of src to dst and returns the result.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	doc := &Doc{src: src}
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch c {
		case ' ', '\t', '\r':
			i++
			continue
		case '\n':
			doc.mark(i)
			i++
			continue
		case '{':
			dst = append(dst, Token{Type: TLCurl, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case '}':
			dst = append(dst, Token{Type: TRCurl, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case '[':
			dst = append(dst, Token{Type: TLSquare, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case ']':
			dst = append(dst, Token{Type: TRSquare, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case ':':
			dst = append(dst, Token{Type: TColon, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case ',':
			dst = append(dst, Token{Type: TComma, Bytes: src[i : i+1], Pos: doc.at(i)})
			i++
		case '"':
			m, err := quoted(src[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.at(i))
			}
			dst = append(dst, Token{Type: TString, Bytes: src[i : i+m], Pos: doc.at(i)})
			i += m
		case 't':
			if !bytes.HasPrefix(src[i:], kwTrue) {
				return nil, NewTokenizeErr(ErrLiteral, doc.at(i))
			}
			dst = append(dst, Token{Type: TTrue, Bytes: src[i : i+4], Pos: doc.at(i)})
			i += 4
		case 'f':
			if !bytes.HasPrefix(src[i:], kwFalse) {
				return nil, NewTokenizeErr(ErrLiteral, doc.at(i))
			}
			dst = append(dst, Token{Type: TFalse, Bytes: src[i : i+5], Pos: doc.at(i)})
			i += 5
		case 'n':
			if !bytes.HasPrefix(src[i:], kwNull) {
				return nil, NewTokenizeErr(ErrLiteral, doc.at(i))
			}
			dst = append(dst, Token{Type: TNull, Bytes: src[i : i+4], Pos: doc.at(i)})
			i += 4
		default:
			start := i
			j := i
			if c == '-' {
				j++
			} else if !asciiDigit(c) {
				return nil, UnexpectedErr(string(src[i:i+1]), doc.at(i))
			}
			m, isFloat, err := number(src[j:])
			if err != nil {
				return nil, NewTokenizeErr(err, doc.at(i))
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			end := j + m
			dst = append(dst, Token{Type: tt, Bytes: src[start:end], Pos: doc.at(start)})
			i = end
		}
	}
	return dst, nil
}
