package command

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/micrograd/internal/autodiff"
)

// GraphCommand builds a single tanh neuron, differentiates it and prints
// the graph and the input gradients.
type GraphCommand struct {
	Meta
}

func (c *GraphCommand) Run(args []string) int {
	var (
		x1, x2, w1, w2, b float64
		noBackward        bool
	)

	fs := flag.NewFlagSet("graph", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Float64Var(&x1, "x1", 2, "first input")
	fs.Float64Var(&x2, "x2", 0, "second input")
	fs.Float64Var(&w1, "w1", -3, "first weight")
	fs.Float64Var(&w2, "w2", 1, "second weight")
	fs.Float64Var(&b, "b", 6.8813735870195432, "bias")
	fs.BoolVar(&noBackward, "no-backward", false, "print the forward graph only")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(fmt.Sprintf("Error parsing command-line flags: %s\n", err))
		c.Ui.Error(c.Help())
		return 1
	}

	leaves := []struct {
		name string
		v    *autodiff.Value
	}{
		{"x1", autodiff.New(x1)},
		{"x2", autodiff.New(x2)},
		{"w1", autodiff.New(w1)},
		{"w2", autodiff.New(w2)},
		{"b", autodiff.New(b)},
	}
	in1, in2, wt1, wt2, bias := leaves[0].v, leaves[1].v, leaves[2].v, leaves[3].v, leaves[4].v

	// o = tanh(x1*w1 + x2*w2 + b)
	o := in1.Mul(wt1).Add(in2.Mul(wt2)).Add(bias).Tanh()
	if !noBackward {
		o.Backward()
	}

	c.Ui.Output(autodiff.Tree(o))
	for _, l := range leaves {
		c.Ui.Output(fmt.Sprintf("%-2s data=%g grad=%g", l.name, l.v.Data(), l.v.Grad()))
	}
	return 0
}

func (c *GraphCommand) Help() string {
	return helpText(`
Usage: micrograd graph [options]

  Builds o = tanh(x1*w1 + x2*w2 + b), runs the backward pass and prints the
  computation graph followed by the value and gradient of every input.

Options:

  -x1, -x2=x         Inputs. Default 2 and 0.
  -w1, -w2=x         Weights. Default -3 and 1.
  -b=x               Bias. Default 6.8813735870195432.
  -no-backward       Print the forward graph only; all gradients stay 0.
`)
}

func (c *GraphCommand) Synopsis() string {
	return "Print the graph and gradients of a single neuron"
}
