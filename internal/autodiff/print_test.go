package autodiff_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/micrograd/internal/autodiff"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		v    func() *autodiff.Value
		want string
	}{
		{
			name: "leaf",
			v:    func() *autodiff.Value { return autodiff.New(2) },
			want: "Value {\n Data = 2\n Grad = 0\n}",
		},
		{
			name: "mul",
			v: func() *autodiff.Value {
				return autodiff.New(2).Mul(autodiff.New(3))
			},
			want: "Value {\n Data = 6\n Grad = 0\n Op   = MUL\n Prev = 2, 3\n}",
		},
		{
			name: "self multiply lists operand once",
			v: func() *autodiff.Value {
				a := autodiff.New(1.5)
				return a.Mul(a)
			},
			want: "Value {\n Data = 2.25\n Grad = 0\n Op   = MUL\n Prev = 1.5\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.v().String()); diff != "" {
				t.Errorf("String() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValue_String_AfterBackward(t *testing.T) {
	a := autodiff.New(2)
	y := a.Pow(3)
	y.Backward()

	s := a.String()
	assert.Contains(t, s, " Grad = 12")
	assert.Contains(t, y.String(), " Op   = POW")
}

func TestTree(t *testing.T) {
	a := autodiff.New(3)
	y := a.Mul(a).Add(a)
	y.Backward()

	tree := autodiff.Tree(y)
	lines := strings.Split(strings.TrimRight(tree, "\n"), "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, "#2 ADD 12 (grad 1)", lines[0])
	assert.Contains(t, tree, "#1 MUL 9 (grad 1)")
	assert.Contains(t, tree, "#0 3 (grad 7)")
	assert.Equal(t, 2, strings.Count(tree, "#0 ^"))
}

func TestTree_Pow(t *testing.T) {
	y := autodiff.New(2).Pow(3)

	tree := autodiff.Tree(y)
	assert.Contains(t, tree, "#1 POW^3 8 (grad 0)")
	assert.Contains(t, tree, "#0 2 (grad 0)")
}
