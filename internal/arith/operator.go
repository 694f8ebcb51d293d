package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOperator reports an operator token outside + - * / %.
	ErrUnsupportedOperator = errors.New("unsupported operator")
	// ErrDivisionByZero reports a zero divisor for / or %.
	ErrDivisionByZero = errors.New("division by zero")
)

// Operator is one of the five binary operations the converter supports.
type Operator uint8

const (
	// None means no operation; the left operand passes through.
	None Operator = iota
	Add
	Sub
	Mul
	Div
	Rem
)

var operatorTokens = [...]string{
	None: "",
	Add:  "+",
	Sub:  "-",
	Mul:  "*",
	Div:  "/",
	Rem:  "%",
}

// ParseOperator maps a command-line token to an Operator.
func ParseOperator(token string) (Operator, error) {
	for op := Add; op <= Rem; op++ {
		if operatorTokens[op] == token {
			return op, nil
		}
	}
	return None, fmt.Errorf("%w %q (expected one of + - * / %%)", ErrUnsupportedOperator, token)
}

// Valid reports whether op is one of the binary operations.
func (op Operator) Valid() bool {
	return op >= Add && op <= Rem
}

func (op Operator) String() string {
	if int(op) < len(operatorTokens) {
		return operatorTokens[op]
	}
	return fmt.Sprintf("Operator(%d)", uint8(op))
}
