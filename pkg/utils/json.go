package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJSON renders in with two-space indentation. Nil slices render as null,
// so callers that need "[]" must pass an empty slice.
func PrettyJSON(in any) (string, error) {
	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
