package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/samber/lo"

	"github.com/katalvlaran/minimat/core"
	"github.com/katalvlaran/minimat/matrix"
	"github.com/katalvlaran/minimat/vector"
)

var (
	errNotIntegral = errors.New("minimat: value is not an integer")
	errParse       = errors.New("minimat: malformed literal")
)

// isIntegerType reports whether T truncates fractions.
func isIntegerType[T core.Scalar]() bool {
	half := 0.5

	return T(half) == 0
}

// convert maps float64 input to T, rejecting fractions when T is an integer type.
func convert[T core.Scalar](vals []float64) ([]T, error) {
	if isIntegerType[T]() && !lo.EveryBy(vals, func(x float64) bool { return x == math.Trunc(x) }) {
		return nil, errNotIntegral
	}

	return lo.Map(vals, func(x float64, _ int) T { return T(x) }), nil
}

// parseMatrix decodes a JSON nested array such as [[1,2],[3,4]].
func parseMatrix[T core.Scalar](lit string) (*matrix.Dense[T], error) {
	var raw [][]float64
	if err := json.Unmarshal([]byte(lit), &raw); err != nil {
		return nil, fmt.Errorf("%w: matrix %q: %v", errParse, lit, err)
	}
	rows := make([][]T, len(raw))
	for i, r := range raw {
		conv, err := convert[T](r)
		if err != nil {
			return nil, fmt.Errorf("matrix row %d: %w", i, err)
		}
		rows[i] = conv
	}

	return matrix.FromRows(rows)
}

// parseVector decodes a JSON array such as [1,2,3].
func parseVector[T core.Scalar](lit string) (*vector.Vector[T], error) {
	var raw []float64
	if err := json.Unmarshal([]byte(lit), &raw); err != nil {
		return nil, fmt.Errorf("%w: vector %q: %v", errParse, lit, err)
	}
	conv, err := convert[T](raw)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}

	return vector.FromSlice(conv)
}

// isVectorLiteral reports whether lit decodes as a flat JSON array.
func isVectorLiteral(lit string) bool {
	var raw []float64

	return json.Unmarshal([]byte(lit), &raw) == nil
}

// parseIndex decodes a row or column index; the kernel checks its range.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", errParse, s)
	}

	return n, nil
}
