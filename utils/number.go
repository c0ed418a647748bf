package utils

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ParseNumber parses a base-10 non-negative integer. Signs are rejected.
func ParseNumber[T constraints.Integer](s string) (T, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%q is not a non-negative integer", s)
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("fail to parse %q: %w", s, err)
	}
	t := T(v)
	if t < 0 || uint64(t) != v {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return t, nil
}

// Fields parses every whitespace separated token of s as a number.
func Fields[T constraints.Integer](s string) ([]T, error) {
	tokens := strings.Fields(s)
	ret := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, err := ParseNumber[T](tok)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func Sum[T constraints.Integer](vs ...T) T {
	var ret T
	for _, v := range vs {
		ret += v
	}
	return ret
}
