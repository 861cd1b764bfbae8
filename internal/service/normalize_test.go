package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerRankValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []float64
	}{
		{"array", `[14, 12, 10, 8, 6]`, []float64{14, 12, 10, 8, 6}},
		{"array with nulls", `[14, null, 10]`, []float64{14, 0, 10}},
		{"scalar", `300`, []float64{300}},
		{"burn string", `"12/11/10/9/8"`, []float64{12, 11, 10, 9, 8}},
		{"single burn value", `"0"`, []float64{0}},
		{"null", `null`, nil},
		{"absent", ``, nil},
		{"garbage", `{"a":1}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, perRankValues(json.RawMessage(tt.raw)))
		})
	}
}

func TestParseBurn(t *testing.T) {
	assert.Equal(t, []float64{12, 11, 10}, parseBurn("12/11/10"))
	assert.Equal(t, []float64{0.5}, parseBurn("0.5"))
	assert.Nil(t, parseBurn(""))
	assert.Nil(t, parseBurn("12/x/10"))
}

func TestFirstStringList(t *testing.T) {
	obj := map[string]json.RawMessage{
		"allytips": json.RawMessage(`[]`),
		"allyTips": json.RawMessage(`["use your charm"]`),
	}

	// Empty lists are skipped in favor of a lower-priority variant with data.
	assert.Equal(t, []string{"use your charm"}, firstStringList(obj, "allytips", "allyTips", "ally_tips"))

	// No variant present still yields a non-nil list.
	assert.Equal(t, []string{}, firstStringList(obj, "enemytips", "enemyTips", "enemy_tips"))

	obj["allytips"] = json.RawMessage(`["lowercase wins"]`)
	assert.Equal(t, []string{"lowercase wins"}, firstStringList(obj, "allytips", "allyTips", "ally_tips"))
}
