// Package jsonval inspects raw JSON request values.
package jsonval

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Present reports whether raw carries a usable value. Absent, null, empty
// string, false and zero count as missing; objects and arrays, even empty,
// count as present.
func Present(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	switch string(v) {
	case "", "null", `""`, "false":
		return false
	}
	if f, err := strconv.ParseFloat(string(v), 64); err == nil && f == 0 {
		return false
	}
	return true
}
