package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Rules   bool
	Engine  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("REFMT_DEBUG_RESOLVE")
	d.Rules = boolEnv("REFMT_DEBUG_RULES")
	d.Engine = boolEnv("REFMT_DEBUG_ENGINE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Rules() bool {
	return d.Rules
}
func Engine() bool {
	return d.Engine
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
