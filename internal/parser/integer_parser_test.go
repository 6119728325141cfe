package parser

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	big2p64, _ := new(big.Int).SetString("18446744073709551616", 10)

	tests := []struct {
		name string
		in   interface{}
		want *big.Int
	}{
		{"decimal", "84436625", big.NewInt(84436625)},
		{"padded", "  39778375 ", big.NewInt(39778375)},
		{"leading zero is decimal", "010", big.NewInt(10)},
		{"zero", "0", big.NewInt(0)},
		{"negative", "-5", big.NewInt(-5)},
		{"plus sign", "+7", big.NewInt(7)},
		{"hex", "0x1F", big.NewInt(31)},
		{"upper hex", "0XFF", big.NewInt(255)},
		{"negative hex", "-0x10", big.NewInt(-16)},
		{"octal", "0o17", big.NewInt(15)},
		{"binary", "0b101", big.NewInt(5)},
		{"underscores", "1_000_000", big.NewInt(1000000)},
		{"beyond uint64", "18446744073709551616", big2p64},
		{"int64", int64(42), big.NewInt(42)},
		{"int", 9, big.NewInt(9)},
		{"big", big.NewInt(3), big.NewInt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInteger(tt.in)
			require.NoError(t, err)
			require.Zero(t, tt.want.Cmp(got), "got %s", got)
		})
	}
}

func TestParseIntegerRejects(t *testing.T) {
	for _, in := range []interface{}{"", "   ", "abc", "12.5", "1e9", "0xZZ", "_1", "1_", "1__0", "--1", 3.0, nil, (*big.Int)(nil)} {
		_, err := ParseInteger(in)
		require.ErrorIs(t, err, ErrNotInteger, "input %v", in)
	}
}

func TestParseIntegerCopiesBigInt(t *testing.T) {
	src := big.NewInt(11)
	got, err := ParseInteger(src)
	require.NoError(t, err)
	got.SetInt64(12)
	require.Equal(t, int64(11), src.Int64())
}
