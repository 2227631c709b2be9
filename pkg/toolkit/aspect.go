package toolkit

import (
	"fmt"
	"math"
)

// CommonRatio is a named preset aspect ratio.
type CommonRatio struct {
	Name  string
	Value float64
}

// CommonRatios are the presets offered by the aspect ratio tool.
var CommonRatios = []CommonRatio{
	{Name: "16:9", Value: 16.0 / 9.0},
	{Name: "9:16", Value: 9.0 / 16.0},
	{Name: "4:3", Value: 4.0 / 3.0},
	{Name: "21:9", Value: 21.0 / 9.0},
	{Name: "1:1", Value: 1.0},
	{Name: "2.35:1", Value: 2.35},
}

const ratioTolerance = 0.01

// MatchRatio finds the preset closest to ratio within tolerance.
func MatchRatio(ratio float64) (CommonRatio, bool) {
	for _, r := range CommonRatios {
		if math.Abs(r.Value-ratio) < ratioTolerance {
			return r, true
		}
	}
	return CommonRatio{}, false
}

// HeightForWidth derives the locked-ratio height for a given width.
func HeightForWidth(width int, ratio float64) int {
	return int(math.Round(float64(width) / ratio))
}

// WidthForHeight derives the locked-ratio width for a given height.
func WidthForHeight(height int, ratio float64) int {
	return int(math.Round(float64(height) * ratio))
}

// FormatRatio renders a ratio as "W:H", preferring a preset name, then
// a small integer denominator, then a decimal n:1 form.
func FormatRatio(ratio float64) string {
	if r, ok := MatchRatio(ratio); ok {
		return r.Name
	}
	for denominator := 1; denominator <= 20; denominator++ {
		numerator := math.Round(ratio * float64(denominator))
		if math.Abs(ratio-numerator/float64(denominator)) < ratioTolerance {
			return fmt.Sprintf("%d:%d", int(numerator), denominator)
		}
	}
	return fmt.Sprintf("%.2f:1", ratio)
}

type aspectRatioWidget struct{}

// NewAspectRatio builds the aspect ratio calculator widget.
func NewAspectRatio() Widget { return aspectRatioWidget{} }

func (aspectRatioWidget) ToolID() string { return "aspect-ratio" }

func (aspectRatioWidget) Evaluate(inputs map[string]float64) (map[string]float64, error) {
	width, err := requireInput(inputs, "width")
	if err != nil {
		return nil, err
	}
	height, err := requireInput(inputs, "height")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("width and height must be positive")
	}
	ratio := width / height
	out := map[string]float64{
		"ratio":  ratio,
		"width":  width,
		"height": height,
	}
	if r, ok := MatchRatio(ratio); ok {
		out["matchedRatio"] = r.Value
	}
	return out, nil
}
