package schema

import "fmt"

// Kind discriminates schema nodes. Scalar kinds classify leaf values;
// ObjectKind and ArrayKind select the composite and list payloads of Node.
type Kind int

const (
	// UnknownKind is the absent-type placeholder produced by a null
	// literal. It carries no type information and is absorbed by
	// whatever concrete kind it is merged against.
	UnknownKind Kind = iota
	StringKind
	DateKind
	IntKind
	FloatKind
	BoolKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		UnknownKind: "unknown",
		StringKind:  "string",
		DateKind:    "date",
		IntKind:     "int",
		FloatKind:   "float",
		BoolKind:    "bool",
		ObjectKind:  "object",
		ArrayKind:   "array",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"unknown": UnknownKind,
		"string":  StringKind,
		"date":    DateKind,
		"int":     IntKind,
		"float":   FloatKind,
		"bool":    BoolKind,
		"object":  ObjectKind,
		"array":   ArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func (k Kind) IsScalar() bool {
	switch k {
	case ObjectKind, ArrayKind:
		return false
	default:
		return true
	}
}
