// Package encode renders ir value trees, preserving object field order.
// JSON is the default; YAML output goes through goccy/go-yaml ordered
// maps. JSON rendering optionally colors output for terminals.
package encode
