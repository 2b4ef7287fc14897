package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedMove = errors.New("move must look like (row, col)")

// ParseMove - parses "(row, col)". Parentheses and surrounding spaces are optional.
func ParseMove(line string) (int, int, error) {
	move := strings.TrimSpace(line)
	if strings.HasPrefix(move, "(") && strings.HasSuffix(move, ")") {
		move = move[1 : len(move)-1]
	}

	tokens := strings.Split(move, ",")
	if len(tokens) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedMove, strings.TrimSpace(line))
	}

	coords := make([]int, 0, len(tokens))
	for _, token := range tokens {
		value, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q is not a number", ErrMalformedMove, strings.TrimSpace(token))
		}

		coords = append(coords, value)
	}

	return coords[0], coords[1], nil
}
