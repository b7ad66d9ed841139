package autodiff

import "strconv"

// Op identifies the operation that produced a Value.
//
// Negation and subtraction are not separate ops: they are built from
// multiplication and addition and carry OpMul / OpAdd.
type Op uint8

// Supported operations.
const (
	OpNone Op = iota // Leaf, no producing operation
	OpAdd            // a + b
	OpMul            // a * b
	OpTanh           // tanh(a)
	OpExp            // e^a
	OpPow            // a^p for a constant p
)

var opNames = [...]string{
	OpNone: "",
	OpAdd:  "ADD",
	OpMul:  "MUL",
	OpTanh: "TANH",
	OpExp:  "EXP",
	OpPow:  "POW",
}

// String returns the op name, or an empty string for OpNone.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}
