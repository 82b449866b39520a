// ABOUTME: Tolerant decoding of inconsistent backend response envelopes
// ABOUTME: Some endpoints return bare arrays, others wrap data under named keys

package api

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// decodeList unmarshals a JSON array that may sit at the body root or be
// wrapped under one of the given keys (or the conventional "data" key).
func decodeList[T any](body []byte, keys ...string) ([]T, error) {
	raw, ok := listSection(body, keys...)
	if !ok {
		return nil, protocolError("expected a list in the response")
	}

	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, protocolError("malformed list in the response")
	}
	return out, nil
}

// decodeObject unmarshals a JSON object found at the body root or under one
// of the given keys.
func decodeObject[T any](body []byte, keys ...string) (*T, error) {
	raw, ok := objectSection(body, keys...)
	if !ok {
		return nil, protocolError("expected an object in the response")
	}

	out := new(T)
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return nil, protocolError("malformed object in the response")
	}
	return out, nil
}

func listSection(body []byte, keys ...string) (string, bool) {
	root := gjson.ParseBytes(body)
	if root.IsArray() {
		return root.Raw, true
	}
	for _, key := range append(keys, "data") {
		if v := root.Get(key); v.Exists() && v.IsArray() {
			return v.Raw, true
		}
	}
	return "", false
}

func objectSection(body []byte, keys ...string) (string, bool) {
	root := gjson.ParseBytes(body)
	for _, key := range append(keys, "data") {
		if v := root.Get(key); v.Exists() && v.IsObject() {
			return v.Raw, true
		}
	}
	if root.IsObject() {
		return root.Raw, true
	}
	return "", false
}
