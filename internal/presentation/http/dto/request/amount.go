package request

import (
	"bytes"
	"encoding/json"
)

// Amount is a numeric form field that may be sent either as a JSON number
// or as a string. It keeps the raw text; null and absent both read as "".
type Amount string

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) String() string {
	return string(a)
}
