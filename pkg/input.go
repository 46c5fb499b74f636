package pkg

import (
	"encoding/json"
	"strings"
)

// Input is raw user input for a numeric field. It unmarshals from both
// JSON numbers and JSON strings, so form values can be passed through as-is.
// JSON null gives an empty input.
type Input string

func (in *Input) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	switch {
	case raw == "null":
		*in = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*in = Input(s)
	default:
		*in = Input(raw)
	}
	return nil
}

func (in Input) Trimmed() string {
	return strings.TrimSpace(string(in))
}
