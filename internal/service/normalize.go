package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Data Dragon has shipped the same field under several spellings across
// patches (allytips vs allyTips vs ally_tips). Ambiguous fields go through an
// explicit prioritized key list so the resolution order is a visible contract.

// rawObject decodes one upstream record into its top-level keys.
func rawObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// firstStringList returns the first present, non-empty string list among the
// key variants, in priority order. Always returns a non-nil slice.
func firstStringList(obj map[string]json.RawMessage, keys ...string) []string {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err != nil {
			continue
		}
		if len(list) > 0 {
			return list
		}
	}
	return []string{}
}

// perRankValues decodes a per-rank numeric field that may arrive as an array
// (authoritative), a bare scalar, or a pre-joined "burn" string like
// "12/11/10/9/8". Nulls inside arrays read as zero. Returns nil when the
// field is absent or unparseable.
func perRankValues(raw json.RawMessage) []float64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var arr []*float64
	if err := json.Unmarshal(raw, &arr); err == nil {
		vals := make([]float64, len(arr))
		for i, v := range arr {
			if v != nil {
				vals[i] = *v
			}
		}
		return vals
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return []float64{num}
	}

	var burn string
	if err := json.Unmarshal(raw, &burn); err == nil {
		return parseBurn(burn)
	}
	return nil
}

// parseBurn splits a "12/11/10/9/8" string into per-rank values.
func parseBurn(burn string) []float64 {
	if burn == "" {
		return nil
	}
	var vals []float64
	for _, part := range strings.Split(burn, "/") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		vals = append(vals, v)
	}
	return vals
}
