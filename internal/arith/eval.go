// Package arith applies a single binary operation to two int64 operands.
//
// Addition, subtraction, multiplication and division wrap around modulo 2^64
// the way Go's signed integers already do, so MaxInt64+1 is MinInt64 and
// MinInt64 / -1 is MinInt64. The remainder is plain Go %, truncated with the
// sign of the dividend. Only a zero divisor is an error.
package arith

import "fmt"

// Apply computes lhs op rhs.
func Apply(lhs int64, op Operator, rhs int64) (int64, error) {
	switch op {
	case Add:
		return lhs + rhs, nil
	case Sub:
		return lhs - rhs, nil
	case Mul:
		return lhs * rhs, nil
	case Div:
		if rhs == 0 {
			return 0, fmt.Errorf("%d / %d: %w", lhs, rhs, ErrDivisionByZero)
		}
		return lhs / rhs, nil
	case Rem:
		if rhs == 0 {
			return 0, fmt.Errorf("%d %% %d: %w", lhs, rhs, ErrDivisionByZero)
		}
		return lhs % rhs, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnsupportedOperator, op.String())
}
