package utils

import (
	"bytes"
	"encoding/json"
)

// PrettyJson renders a value as tab-indented JSON for debug logs. Raw
// []byte input is treated as JSON and re-indented rather than quoted.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "\t"); err != nil {
			return string(raw)
		}

		return out.String()
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
