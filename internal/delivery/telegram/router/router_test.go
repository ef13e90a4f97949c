package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

func TestParseData(t *testing.T) {
	tests := []struct {
		raw, key, payload string
	}{
		{"\fpick_month|2025-01", "pick_month", "2025-01"},
		{"pick_month|2025-01", "pick_month", "2025-01"},
		{"\fpayout_all", "payout_all", ""},
		{"\fnote|a|b", "note", "a|b"},
		{"\fempty|", "empty", ""},
	}
	for _, tt := range tests {
		key, payload := ParseData(tt.raw)
		assert.Equal(t, tt.key, key, tt.raw)
		assert.Equal(t, tt.payload, payload, tt.raw)
	}
}

func TestLookup(t *testing.T) {
	r := New()
	var got string
	r.Register("pick_month", func(_ telebot.Context, payload string) error {
		got = "month:" + payload
		return nil
	})
	r.RegisterPrefix("cal_", func(_ telebot.Context, payload string) error {
		got = "cal:" + payload
		return nil
	})

	h, payload, ok := r.Lookup("\fpick_month|2025-03")
	require.True(t, ok)
	require.NoError(t, h(nil, payload))
	assert.Equal(t, "month:2025-03", got)

	h, payload, ok = r.Lookup("\fcal_day|2025-03-14")
	require.True(t, ok)
	require.NoError(t, h(nil, payload))
	assert.Equal(t, "cal:cal_day|2025-03-14", got)

	_, _, ok = r.Lookup("\funknown|1")
	assert.False(t, ok)
}
