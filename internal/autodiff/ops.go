package autodiff

import "math"

// Add returns v + other.
//
// Backward: d(a+b)/da = 1, d(a+b)/db = 1.
func (v *Value) Add(other *Value) *Value {
	return newNode(v.data+other.data, OpAdd, v, other)
}

// AddScalar returns v + x, lifting x into a leaf.
func (v *Value) AddScalar(x float64) *Value {
	return v.Add(New(x))
}

// Mul returns v * other.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func (v *Value) Mul(other *Value) *Value {
	return newNode(v.data*other.data, OpMul, v, other)
}

// MulScalar returns v * x, lifting x into a leaf.
func (v *Value) MulScalar(x float64) *Value {
	return v.Mul(New(x))
}

// Neg returns -v, built as v * -1.
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, built as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// SubScalar returns v - x, lifting x into a leaf.
func (v *Value) SubScalar(x float64) *Value {
	return v.Sub(New(x))
}

// Div returns v / other, built as v * other^-1.
//
// Division by zero yields ±Inf or NaN like any float64 division.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// DivScalar returns v / x, lifting x into a leaf.
func (v *Value) DivScalar(x float64) *Value {
	return v.Div(New(x))
}

// Pow returns v^p for a constant exponent p.
//
// Backward: d(a^p)/da = p * a^(p-1). A negative base with a fractional
// exponent produces NaN, which propagates unchanged.
func (v *Value) Pow(p float64) *Value {
	out := newNode(math.Pow(v.data, p), OpPow, v)
	out.exponent = p
	return out
}

// Tanh returns tanh(v).
//
// Backward: d(tanh(a))/da = 1 - tanh²(a), computed from the output.
func (v *Value) Tanh() *Value {
	return newNode(math.Tanh(v.data), OpTanh, v)
}

// Exp returns e^v.
//
// Backward: d(e^a)/da = e^a, which is the output itself.
func (v *Value) Exp() *Value {
	return newNode(math.Exp(v.data), OpExp, v)
}

// Sum returns the sum of vs as a left-leaning chain of additions.
//
// Sum of an empty slice is a zero leaf. A single element is returned as is.
func Sum(vs ...*Value) *Value {
	if len(vs) == 0 {
		return New(0)
	}
	out := vs[0]
	for _, v := range vs[1:] {
		out = out.Add(v)
	}
	return out
}
