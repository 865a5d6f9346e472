package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "whole token", input: "1", want: 1_000_000_000},
		{name: "half token", input: "0.5", want: 500_000_000},
		{name: "bare fraction", input: ".25", want: 250_000_000},
		{name: "full precision", input: "12.345678901", want: 12_345_678_901},
		{name: "zero", input: "0", want: 0},
		{name: "trims whitespace", input: " 3 ", want: 3_000_000_000},
		{name: "negative rejected", input: "-1", wantErr: true},
		{name: "too many decimals", input: "0.1234567891", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "double dot", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "whole token", input: 1_000_000_000, want: "1"},
		{name: "half token", input: 500_000_000, want: "0.5"},
		{name: "trims trailing zeros", input: 12_300_000_000, want: "12.3"},
		{name: "full precision", input: 12_345_678_901, want: "12.345678901"},
		{name: "zero", input: 0, want: "0"},
		{name: "negative", input: -1_500_000_000, want: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "0.5", "1000000", "42.000000001"} {
		raw, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, Format(raw))
	}
}
