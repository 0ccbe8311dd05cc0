package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	t.Run("parses a calendar date", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"1990-06-26"`), &d))
		assert.Equal(t, time.Date(1990, time.June, 26, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("rejects other formats", func(t *testing.T) {
		for _, bad := range []string{`"26-06-1990"`, `"1990/06/26"`, `""`, `null`, `"1990-06-26T10:00:00Z"`} {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(bad), &d), "input %s should be rejected", bad)
		}
	})
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date(time.Date(1990, time.June, 26, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1990-06-26"`, string(b))
}
