package encode

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

func ParseFormat(v string) (Format, bool) {
	switch v {
	case "json", "j":
		return JSONFormat, true
	case "yaml", "y":
		return YAMLFormat, true
	default:
		return JSONFormat, false
	}
}

type encodeOpts struct {
	format Format
	indent string
	colors *Colors
}

type EncodeOption func(*encodeOpts)

func EncodeFormat(f Format) EncodeOption {
	return func(o *encodeOpts) {
		o.format = f
	}
}

func EncodeIndent(indent string) EncodeOption {
	return func(o *encodeOpts) {
		o.indent = indent
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(o *encodeOpts) {
		o.colors = c
	}
}
