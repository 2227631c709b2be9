package toolkit

import "fmt"

// BandwidthMbps computes uncompressed video bandwidth in megabits per
// second from resolution, frame rate and bit depth.
func BandwidthMbps(width, height, frameRate, bitDepth float64) float64 {
	return width * height * frameRate * bitDepth / 1_000_000
}

type bandwidthWidget struct{}

// NewVideoBandwidth builds the video bandwidth widget.
func NewVideoBandwidth() Widget { return bandwidthWidget{} }

func (bandwidthWidget) ToolID() string { return "video-bandwidth-calculator" }

func (bandwidthWidget) Evaluate(inputs map[string]float64) (map[string]float64, error) {
	width, err := requireInput(inputs, "width")
	if err != nil {
		return nil, err
	}
	height, err := requireInput(inputs, "height")
	if err != nil {
		return nil, err
	}
	frameRate, err := requireInput(inputs, "frameRate")
	if err != nil {
		return nil, err
	}
	bitDepth, err := requireInput(inputs, "bitDepth")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 || frameRate <= 0 || bitDepth <= 0 {
		return nil, fmt.Errorf("inputs must be positive")
	}
	return map[string]float64{
		"bandwidthMbps": BandwidthMbps(width, height, frameRate, bitDepth),
	}, nil
}
