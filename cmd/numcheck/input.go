package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/numcheck/matrix"
)

// present reports whether an optional field was given a non-null value.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// arrayFromJSON builds an Array from a number or from nested lists of
// numbers. The nesting depth is the dimension count: 3 is 0-D, [1, 2] is
// 1-D, [[1], [2]] is 2-D. Every list at the same depth must have the same
// length.
func arrayFromJSON(raw json.RawMessage) (*matrix.Array, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}

	// Shape follows the first element at each depth; flatten checks the rest.
	var shape []int
	size := 1
	for cur := v; ; {
		list, ok := cur.([]any)
		if !ok {
			break
		}
		shape = append(shape, len(list))
		size *= len(list)
		if len(list) == 0 {
			break
		}
		cur = list[0]
	}

	data := make([]float64, 0, size)
	if err := flatten(v, shape, &data); err != nil {
		return nil, err
	}

	return matrix.NewArray(shape, data)
}

func flatten(v any, shape []int, out *[]float64) error {
	if len(shape) == 0 {
		f, ok := v.(float64)
		if !ok {
			return fmt.Errorf("expected a number, got %s", jsonKind(v))
		}
		*out = append(*out, f)

		return nil
	}
	list, ok := v.([]any)
	if !ok || len(list) != shape[0] {
		return fmt.Errorf("expected a list of %d: %w", shape[0], matrix.ErrRaggedRows)
	}
	for _, e := range list {
		if err := flatten(e, shape[1:], out); err != nil {
			return err
		}
	}

	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	}

	return fmt.Sprintf("%T", v)
}
