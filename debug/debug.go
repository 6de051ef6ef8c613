package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge    bool
	Registry bool
	Infer    bool
	Parse    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("OTYPE_DEBUG_MERGE")
	d.Registry = boolEnv("OTYPE_DEBUG_REGISTRY")
	d.Infer = boolEnv("OTYPE_DEBUG_INFER")
	d.Parse = boolEnv("OTYPE_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Registry() bool {
	return d.Registry
}
func Infer() bool {
	return d.Infer
}
func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}

func JSON(v any) string {
	d, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
