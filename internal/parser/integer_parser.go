package parser

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrNotInteger is returned for values that do not denote an integer.
var ErrNotInteger = errors.New("not an integer")

// ParseInteger parses an arbitrary-precision integer.
//
// Strings accept an optional sign, the base prefixes 0x, 0o and 0b, and
// underscores between digits, following Go literal syntax. A leading zero
// without a prefix is decimal, so "010" is ten.
//
// Native integers (as produced by TOML decoding) are accepted as is.
func ParseInteger(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		return parseIntegerString(v)
	case int64:
		return big.NewInt(v), nil
	case int:
		return big.NewInt(int64(v)), nil
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil", ErrNotInteger)
		}
		return new(big.Int).Set(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrNotInteger, val)
	}
}

func parseIntegerString(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty value", ErrNotInteger)
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}

	// base 0 would read a bare leading zero as octal
	base := 10
	if len(s) > 1 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}
	if base == 10 && strings.Contains(s, "_") {
		// SetString only allows underscores with base 0
		if strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
			return nil, fmt.Errorf("%w: %q", ErrNotInteger, raw)
		}
		s = strings.ReplaceAll(s, "_", "")
	}

	z, ok := new(big.Int).SetString(sign+s, base)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotInteger, raw)
	}
	return z, nil
}
