package domain

import (
	"fmt"
	"strings"
)

// ZeroDistancePolicy decides what cost-per-distance means for a zero distance.
type ZeroDistancePolicy string

const (
	// PolicyExclude leaves the ratio undefined; such rows are skipped by the
	// mean and can never be flagged as leakage.
	PolicyExclude ZeroDistancePolicy = "exclude"
	// PolicyZero clamps the ratio to zero and keeps the row in every aggregate.
	PolicyZero ZeroDistancePolicy = "zero"
)

func ParseZeroDistancePolicy(s string) (ZeroDistancePolicy, error) {
	switch p := ZeroDistancePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case PolicyExclude, PolicyZero:
		return p, nil
	case "":
		return PolicyExclude, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
