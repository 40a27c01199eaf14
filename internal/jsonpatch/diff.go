// Package jsonpatch computes RFC 6902 patches between two documents that
// have been round-tripped through encoding/json (maps, slices and
// primitives). The engine uses it to report how each action changed the
// wizard state.
package jsonpatch

import (
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Op is a single RFC 6902 operation.
type Op struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// MarshalJSON keeps the value member on add and replace even when the
// value is null; RFC 6902 requires it there. Remove carries no value.
func (o Op) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	return json.Marshal(struct {
		Op    string      `json:"op"`
		Path  string      `json:"path"`
		Value interface{} `json:"value"`
	}{o.Op, o.Path, o.Value})
}

// Diff returns the operations that transform a into b. A nil result
// means the documents are equal.
func Diff(a, b interface{}) []Op {
	var ops []Op
	diff(a, b, "", &ops)
	return ops
}

func diff(a, b interface{}, path string, ops *[]Op) {
	if a == nil && b == nil {
		return
	}
	if a == nil || b == nil {
		*ops = append(*ops, Op{Op: "replace", Path: path, Value: b})
		return
	}

	switch av := a.(type) {
	case map[string]interface{}:
		if bv, ok := b.(map[string]interface{}); ok {
			diffObjects(av, bv, path, ops)
			return
		}
	case []interface{}:
		if bv, ok := b.([]interface{}); ok {
			diffArrays(av, bv, path, ops)
			return
		}
	}

	if a != b {
		*ops = append(*ops, Op{Op: "replace", Path: path, Value: b})
	}
}

func diffObjects(a, b map[string]interface{}, path string, ops *[]Op) {
	for k := range a {
		if _, ok := b[k]; !ok {
			*ops = append(*ops, Op{Op: "remove", Path: path + "/" + escape(k)})
		}
	}
	for k, bv := range b {
		child := path + "/" + escape(k)
		av, ok := a[k]
		if !ok {
			*ops = append(*ops, Op{Op: "add", Path: child, Value: bv})
			continue
		}
		diff(av, bv, child, ops)
	}
}

func diffArrays(a, b []interface{}, path string, ops *[]Op) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		diff(a[i], b[i], path+"/"+strconv.Itoa(i), ops)
	}
	// Removals run highest index first so earlier paths stay valid.
	for i := len(a) - 1; i >= n; i-- {
		*ops = append(*ops, Op{Op: "remove", Path: path + "/" + strconv.Itoa(i)})
	}
	for i := n; i < len(b); i++ {
		*ops = append(*ops, Op{Op: "add", Path: path + "/" + strconv.Itoa(i), Value: b[i]})
	}
}

// escape encodes a JSON Pointer token per RFC 6901.
func escape(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
