package lotto

import (
	"fmt"
	"strconv"
	"strings"
)

// numberParser implements Parser with 32-bit base-10 integers.
type numberParser struct{}

// NewParser creates the default number parser.
func NewParser() Parser {
	return numberParser{}
}

// ParseInt parses text as a signed 32-bit base-10 integer.
func (numberParser) ParseInt(text string) (int, error) {
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %q as integer: %w", text, err)
	}
	return int(n), nil
}

// ParseDelimitedInts splits text on Delimiter and parses each token in order.
// Tokens are not trimmed, so "1, 2" fails on " 2".
func (p numberParser) ParseDelimitedInts(text string) ([]int, error) {
	tokens := strings.Split(text, Delimiter)
	numbers := make([]int, 0, len(tokens))
	for i, token := range tokens {
		n, err := p.ParseInt(token)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
