package pipeline

import (
	"fmt"
	"strings"

	"github.com/matzehuels/supertile/pkg/errors"
	"github.com/matzehuels/supertile/pkg/ring"
	"github.com/matzehuels/supertile/pkg/supertile"
)

// ParsePositions reads a position list. Positions are single digits,
// optionally separated by commas or spaces: "05", "0,5" and "0 5" are
// equal. "" and "-" are the empty list. Ranges are checked later by the
// engine.
func ParsePositions(s string) ([]ring.Position, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return nil, nil
	}
	var out []ring.Position
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			out = append(out, ring.Position(c-'0'))
		case c == ',' || c == ' ' || c == '\t':
		default:
			return nil, errors.New(errors.ErrCodeInvalidRequest, "invalid position %q in %q", c, s)
		}
	}
	return out, nil
}

// ParseRequest builds a request from its textual parts.
func ParseRequest(kind, inputs, outputs string) (supertile.Request, error) {
	in, err := ParsePositions(inputs)
	if err != nil {
		return supertile.Request{}, fmt.Errorf("inputs: %w", err)
	}
	out, err := ParsePositions(outputs)
	if err != nil {
		return supertile.Request{}, fmt.Errorf("outputs: %w", err)
	}
	return supertile.Request{Kind: strings.TrimSpace(kind), Inputs: in, Outputs: out}, nil
}
