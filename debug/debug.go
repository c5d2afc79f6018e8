// Package debug holds environment controlled debug switches and a stderr
// logger for them.
//
//	URLFORM_DEBUG_ENCODE=1     log every tree write while mapping values
//	URLFORM_DEBUG_SERIALIZE=1  log serialized segments
//	URLFORM_DEBUG_HTTP=1       log request bodies and queries as they are set
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode    bool
	Serialize bool
	HTTP      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("URLFORM_DEBUG_ENCODE")
	d.Serialize = boolEnv("URLFORM_DEBUG_SERIALIZE")
	d.HTTP = boolEnv("URLFORM_DEBUG_HTTP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Serialize() bool {
	return d.Serialize
}
func HTTP() bool {
	return d.HTTP
}
