package request

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TipAmount accepts a JSON number or a numeric string. The mobile tip field is
// free text, so "", "12.5" and 12.5 must all work; anything unparsable or
// absent resolves to 0 rather than failing the whole settlement.
type TipAmount float64

func (t *TipAmount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*t = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			*t = 0
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*t = 0
			return nil
		}
		*t = TipAmount(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*t = 0
		return nil
	}
	*t = TipAmount(v)
	return nil
}

// SettlementRequest is the "settle bill & end session" payload.
type SettlementRequest struct {
	Rating     int       `json:"rating"`
	ReviewNote string    `json:"reviewNote"`
	Tip        TipAmount `json:"tip"`
}
