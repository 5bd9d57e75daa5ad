package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexInt decodes an identifier sent either as a JSON number or as a numeric
// string. The user service stores ids as strings; the others use numbers.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("id %q is not numeric", raw)
		}
		*f = flexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("id %s is not an integer", string(trimmed))
	}
	*f = flexInt(n)

	return nil
}
