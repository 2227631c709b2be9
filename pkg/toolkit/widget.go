package toolkit

import "fmt"

// Widget is a loadable calculator unit. Inputs and outputs are named
// numeric fields so the HTTP surface can drive any widget uniformly.
type Widget interface {
	ToolID() string
	Evaluate(inputs map[string]float64) (map[string]float64, error)
}

// Factory builds a widget instance for a tool id.
type Factory func() Widget

func requireInput(inputs map[string]float64, name string) (float64, error) {
	v, ok := inputs[name]
	if !ok {
		return 0, fmt.Errorf("missing input %q", name)
	}
	return v, nil
}
