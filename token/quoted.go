package token

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// quoted scans a double-quoted JSON string at the start of d (d[0] must be
// '"') and returns the number of bytes consumed, including both quotes.
func quoted(d []byte) (int, error) {
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return i + 1, nil
		case c == '\\':
			n, err := escape(d[i:])
			if err != nil {
				return 0, err
			}
			i += n
		case c < 0x20:
			return 0, ErrControl
		case c < utf8.RuneSelf:
			i++
		default:
			r, n := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && n == 1 {
				return 0, ErrBadUTF8
			}
			i += n
		}
	}
	return 0, ErrUnterminated
}

func escape(d []byte) (int, error) {
	if len(d) < 2 {
		return 0, ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 2, nil
	case 'u':
		if len(d) < 6 {
			return 0, ErrBadUnicode
		}
		for _, c := range d[2:6] {
			if !isHex(c) {
				return 0, ErrBadUnicode
			}
		}
		return 6, nil
	default:
		return 0, ErrBadEscape
	}
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	default:
		return false
	}
}

// QuotedToString unescapes the contents of a quoted string token,
// including the surrounding quotes. The input is assumed valid, as
// produced by [Tokenize].
func QuotedToString(d []byte) string {
	d = d[1 : len(d)-1]
	if !strings.ContainsRune(string(d), '\\') {
		return string(d)
	}
	var sb strings.Builder
	sb.Grow(len(d))
	for i := 0; i < len(d); {
		c := d[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		switch d[i+1] {
		case '"':
			sb.WriteByte('"')
			i += 2
		case '\\':
			sb.WriteByte('\\')
			i += 2
		case '/':
			sb.WriteByte('/')
			i += 2
		case 'b':
			sb.WriteByte('\b')
			i += 2
		case 'f':
			sb.WriteByte('\f')
			i += 2
		case 'n':
			sb.WriteByte('\n')
			i += 2
		case 'r':
			sb.WriteByte('\r')
			i += 2
		case 't':
			sb.WriteByte('\t')
			i += 2
		case 'u':
			r := hexRune(d[i+2 : i+6])
			i += 6
			if utf16.IsSurrogate(r) && i+6 <= len(d) && d[i] == '\\' && d[i+1] == 'u' {
				r2 := hexRune(d[i+2 : i+6])
				if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
					r = dec
					i += 6
				}
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func hexRune(d []byte) rune {
	var r rune
	for _, c := range d {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		}
	}
	return r
}
