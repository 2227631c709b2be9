package logic

import (
	"github.com/aksisonline/AV-Champs-tools-kt/models"
	"github.com/aksisonline/AV-Champs-tools-kt/pkg/toolkit"
)

// catalogTools is the static catalog data. Premium entries carry the
// point cost gating them.
var catalogTools = []models.ToolMetadata{
	{
		ID:          "aspect-ratio",
		Name:        "Aspect Ratio Calculator",
		Description: "Calculate and convert display aspect ratios with common presets",
		Category:    "video",
		Tags:        []string{"video", "display", "resolution"},
		IconName:    "ratio",
		IconColor:   "#3b82f6",
	},
	{
		ID:          "btu-calculator",
		Name:        "BTU Calculator",
		Description: "Estimate cooling requirements for AV equipment rooms",
		Category:    "project",
		Tags:        []string{"cooling", "HVAC", "equipment"},
		IconName:    "thermometer",
		IconColor:   "#f97316",
	},
	{
		ID:          "video-bandwidth-calculator",
		Name:        "Video Bandwidth Calculator",
		Description: "Calculate uncompressed video bandwidth from resolution, frame rate and bit depth",
		Category:    "video",
		Tags:        []string{"video", "network", "bandwidth"},
		IconName:    "gauge",
		IconColor:   "#22c55e",
	},
	{
		ID:             "advanced-room-designer",
		Name:           "Advanced Room Designer",
		Description:    "Professional 3D room design tool with acoustic modeling and equipment placement",
		Category:       "project",
		Tags:           []string{"design", "3D", "acoustics"},
		IconName:       "layout-dashboard",
		IconColor:      "#6366f1",
		IsNew:          true,
		IsPremium:      true,
		PointsRequired: 100,
	},
	{
		ID:             "signal-analyzer",
		Name:           "Signal Analyzer Pro",
		Description:    "Advanced audio signal analysis with frequency response, phase, and distortion measurements",
		Category:       "audio",
		Tags:           []string{"audio", "analysis", "measurement"},
		IconName:       "activity",
		IconColor:      "#ec4899",
		IsPremium:      true,
		PointsRequired: 75,
	},
	{
		ID:             "network-simulator",
		Name:           "AV Network Simulator",
		Description:    "Simulate AV over IP networks with bandwidth analysis and latency testing",
		Category:       "video",
		Tags:           []string{"network", "IP", "bandwidth"},
		IconName:       "network",
		IconColor:      "#14b8a6",
		IsPremium:      true,
		PointsRequired: 150,
	},
}

// ToolCatalog resolves tool ids to metadata and to loadable widget
// units. It holds no business logic beyond the lookup.
type ToolCatalog struct {
	tools     []models.ToolMetadata
	index     map[string]models.ToolMetadata
	factories map[string]toolkit.Factory
}

// NewToolCatalog builds the catalog from the static tool data and
// registers the built-in widget factories.
func NewToolCatalog() *ToolCatalog {
	c := &ToolCatalog{
		tools:     catalogTools,
		index:     make(map[string]models.ToolMetadata, len(catalogTools)),
		factories: make(map[string]toolkit.Factory),
	}
	for _, tool := range catalogTools {
		c.index[tool.ID] = tool
	}
	c.factories["aspect-ratio"] = toolkit.NewAspectRatio
	c.factories["btu-calculator"] = toolkit.NewBTUCalculator
	c.factories["video-bandwidth-calculator"] = toolkit.NewVideoBandwidth
	return c
}

// Resolve looks up a tool by id.
func (c *ToolCatalog) Resolve(toolID string) (models.ToolMetadata, bool) {
	tool, ok := c.index[toolID]
	return tool, ok
}

// List returns the catalog, optionally filtered by the premium flag.
func (c *ToolCatalog) List(premium *bool) []models.ToolMetadata {
	if premium == nil {
		out := make([]models.ToolMetadata, len(c.tools))
		copy(out, c.tools)
		return out
	}
	out := []models.ToolMetadata{}
	for _, tool := range c.tools {
		if tool.IsPremium == *premium {
			out = append(out, tool)
		}
	}
	return out
}

// Component instantiates the widget registered for a tool id, or nil
// when the id has no loadable unit.
func (c *ToolCatalog) Component(toolID string) toolkit.Widget {
	factory, ok := c.factories[toolID]
	if !ok {
		return nil
	}
	return factory()
}

// IDs returns every tool id in catalog order.
func (c *ToolCatalog) IDs() []string {
	ids := make([]string, 0, len(c.tools))
	for _, tool := range c.tools {
		ids = append(ids, tool.ID)
	}
	return ids
}
