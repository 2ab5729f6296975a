package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `123`, 123},
		{"decimal", `12.5`, 12.5},
		{"numeric string", `"42"`, 42},
		{"formatted string with junk", `"1,200abc"`, 1200},
		{"currency string", `"$ 3.500"`, 3.500},
		{"negative string", `"-50"`, -50},
		{"garbage string", `"abc"`, 0},
		{"bool", `true`, 0},
		{"null", `null`, 0},
		{"object", `{"a":1}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tc.in), &n))
			assert.Equal(t, tc.want, n.Float())
		})
	}
}

func TestNumberScan(t *testing.T) {
	var n Number

	require.NoError(t, n.Scan(int64(7)))
	assert.Equal(t, 7.0, n.Float())

	require.NoError(t, n.Scan(3.25))
	assert.Equal(t, 3.25, n.Float())

	require.NoError(t, n.Scan(math.NaN()))
	assert.Equal(t, 0.0, n.Float())

	require.NoError(t, n.Scan("1,200abc"))
	assert.Equal(t, 1200.0, n.Float())

	require.NoError(t, n.Scan([]byte("450")))
	assert.Equal(t, 450.0, n.Float())

	require.NoError(t, n.Scan(nil))
	assert.Equal(t, 0.0, n.Float())

	assert.Error(t, n.Scan(struct{}{}))
}

// A campaign arriving with malformed counters must decode without NaN
// anywhere: every bad field coerces to zero.
func TestCampaignDecodeCoercion(t *testing.T) {
	payload := `{
		"id": "c1",
		"name": "Broken",
		"budget": "1,200abc",
		"status": "active",
		"views_count": null,
		"clicks_count": "n/a",
		"conversions_count": 12
	}`
	var c Campaign
	require.NoError(t, json.Unmarshal([]byte(payload), &c))
	assert.Equal(t, 1200.0, c.Budget.Float())
	assert.Equal(t, 0.0, c.ViewsCount.Float())
	assert.Equal(t, 0.0, c.ClicksCount.Float())
	assert.Equal(t, 12.0, c.ConversionsCount.Float())
}
