package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceRangeToken(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		want   PriceRangeToken
		wantOK bool
	}{
		{
			name:   "well-formed preset",
			token:  "25-100",
			want:   PriceRangeToken{Min: 25, Max: 100},
			wantOK: true,
		},
		{
			name:   "zero-based preset",
			token:  "0-25",
			want:   PriceRangeToken{Min: 0, Max: 25},
			wantOK: true,
		},
		{
			name:   "top preset carries the unbounded sentinel",
			token:  "1000-10000",
			want:   PriceRangeToken{Min: 1000, Max: PriceRangeUnboundedMax},
			wantOK: true,
		},
		{
			name:   "literal all means no constraint",
			token:  "all",
			wantOK: false,
		},
		{
			name:   "empty token means no constraint",
			token:  "",
			wantOK: false,
		},
		{
			name:   "non-numeric token means no constraint",
			token:  "cheap",
			wantOK: false,
		},
		{
			name:   "missing max means no constraint",
			token:  "10-",
			wantOK: false,
		},
		{
			name:   "missing min means no constraint",
			token:  "-5",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePriceRangeToken(tt.token)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPriceRangeToken_Contains(t *testing.T) {
	bounded := PriceRangeToken{Min: 25, Max: 100}
	assert.True(t, bounded.Contains(25))
	assert.True(t, bounded.Contains(100))
	assert.False(t, bounded.Contains(24.99))
	assert.False(t, bounded.Contains(100.01))

	unbounded := PriceRangeToken{Min: 1000, Max: PriceRangeUnboundedMax}
	assert.True(t, unbounded.Contains(99999))
	assert.False(t, unbounded.Contains(999.99))
}
