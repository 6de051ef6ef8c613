package encode

import (
	"github.com/fatih/color"
	"github.com/signadot/otype-schema/ir"
)

type Colors struct {
	Default func(string, ...any) string
	Field   func(string, ...any) string
	Sep     func(string, ...any) string
	Value   map[ir.Type]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Field:   color.RGB(196, 96, 16).SprintfFunc(),
		Sep:     color.RGB(255, 0, 196).SprintfFunc(),
		Value: map[ir.Type]func(string, ...any) string{
			ir.StringType: color.RGB(8, 196, 16).SprintfFunc(),
			ir.NumberType: color.RGB(128, 216, 236).SprintfFunc(),
			ir.BoolType:   color.CyanString,
			ir.NullType:   color.RGB(168, 0, 196).SprintfFunc(),
		},
	}
}

func colorDefault(format string, args ...any) string {
	return color.WhiteString(format, args...)
}

func (c *Colors) value(t ir.Type, s string) string {
	if c == nil {
		return s
	}
	f, ok := c.Value[t]
	if !ok {
		f = c.Default
	}
	return f("%s", s)
}

func (c *Colors) field(s string) string {
	if c == nil {
		return s
	}
	return c.Field("%s", s)
}

func (c *Colors) sep(s string) string {
	if c == nil {
		return s
	}
	return c.Sep("%s", s)
}
