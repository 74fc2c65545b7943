package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{`"1700000000000"`, 1700000000000},
		{`1700000000000`, 1700000000000},
		{`"  42"`, 42},
		{`"1700000000000ms"`, 1700000000000},
		{`"-15"`, -15},
		{`17.9`, 17},
		{`-17.9`, -17},
		{`1.7e12`, 1700000000000},
		{`1.7E+12`, 1700000000000},
		{`"0"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseTimestamp(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, raw := range []string{`"abc"`, `""`, `null`, `{}`, `"-"`, `true`, `1e300`} {
		t.Run(raw, func(t *testing.T) {
			got, err := ParseTimestamp(json.RawMessage(raw))
			require.ErrorIs(t, err, ErrInvalidTimestamp)
			assert.Zero(t, got)
		})
	}
}

func TestUserProfile_CachedIsNotSerialized(t *testing.T) {
	b, err := json.Marshal(UserProfile{ID: "1", Username: "alice", DisplayName: "Alice", Cached: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"alice","displayName":"Alice"}`, string(b))
}
