package token

import "errors"

var (
	ErrUnterminated      = errors.New("unterminated string")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrNumber            = errors.New("number")
	ErrLiteral           = errors.New("bad literal")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrBadUTF8           = errors.New("bad utf8")
	ErrControl           = errors.New("control character in string")
)
