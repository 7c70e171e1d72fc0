package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimalToCents(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "integer", input: "12", want: 1200},
		{name: "two decimals", input: "12.34", want: 1234},
		{name: "one decimal", input: "12.3", want: 1230},
		{name: "comma separator", input: "12,34", want: 1234},
		{name: "leading dot", input: ".50", want: 50},
		{name: "rounds half up", input: "1.005", want: 101},
		{name: "rounds down below half", input: "1.004", want: 100},
		{name: "extra digits beyond third ignored", input: "1.0049", want: 100},
		{name: "surrounding spaces", input: "  7.25  ", want: 725},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "zero with decimals", input: "0.00", wantErr: true},
		{name: "negative", input: "-1.00", wantErr: true},
		{name: "explicit plus", input: "+1.00", wantErr: true},
		{name: "letters", input: "abc", wantErr: true},
		{name: "two dots", input: "1.2.3", wantErr: true},
		{name: "digit then letter", input: "12x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDecimalToCents(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMoneyDecimal(t *testing.T) {
	assert.Equal(t, "12.34", Money{Cents: 1234}.Decimal())
	assert.Equal(t, "0.05", Money{Cents: 5}.Decimal())
	assert.Equal(t, "0.00", Money{}.Decimal())
	assert.Equal(t, "-0.05", Money{Cents: -5}.Decimal())
	assert.Equal(t, "-123.40", Money{Cents: -12340}.Decimal())
}
