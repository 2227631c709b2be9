package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aksisonline/AV-Champs-tools-kt/dao"
	"github.com/aksisonline/AV-Champs-tools-kt/logic"
	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

// ToolController handles HTTP requests for the tool catalog, the
// purchase verification echo and the unlock flow. It owns the set of
// unlocked tool ids, kept under its own store key; the unlock policy
// itself does not track that set.
type ToolController struct {
	catalog *logic.ToolCatalog
	policy  *logic.UnlockPolicy
	ledger  *logic.PointsLedger
	store   dao.Store
}

func NewToolController(catalog *logic.ToolCatalog, policy *logic.UnlockPolicy, ledger *logic.PointsLedger, store dao.Store) *ToolController {
	return &ToolController{catalog: catalog, policy: policy, ledger: ledger, store: store}
}

// ListTools handles GET /tools
func (c *ToolController) ListTools(ctx *gin.Context) {
	var premium *bool
	switch ctx.Query("premium") {
	case "":
	case "true":
		v := true
		premium = &v
	case "false":
		v := false
		premium = &v
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "premium must be true or false"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tools": c.catalog.List(premium)})
}

// GetTool handles GET /tools/:id
func (c *ToolController) GetTool(ctx *gin.Context) {
	tool, ok := c.catalog.Resolve(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return
	}
	ctx.JSON(http.StatusOK, tool)
}

// PurchaseTool handles POST /api/tools/purchase. It validates a claimed
// purchase against the catalog price and echoes a receipt; it does not
// deduct points or persist anything. Stand-in for a real backend.
func (c *ToolController) PurchaseTool(ctx *gin.Context) {
	type Request struct {
		UserID      string `json:"userId"`
		ToolID      string `json:"toolId"`
		PointsSpent int    `json:"pointsSpent"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}
	if req.UserID == "" || req.ToolID == "" || req.PointsSpent == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing required fields"})
		return
	}

	tool, ok := c.catalog.Resolve(req.ToolID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Tool not found"})
		return
	}
	if !tool.IsPremium || tool.PointsRequired == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tool is not a premium tool"})
		return
	}
	if req.PointsSpent != tool.PointsRequired {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": fmt.Sprintf("Incorrect points amount. Required: %d, Spent: %d",
				tool.PointsRequired, req.PointsSpent),
		})
		return
	}

	logrus.Infof("Tool purchase verified: User %s purchased %s for %d points",
		req.UserID, req.ToolID, req.PointsSpent)

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Purchase verified successfully",
		"transaction": models.PurchaseReceipt{
			ID:          fmt.Sprintf("txn-%d", time.Now().UnixMilli()),
			UserID:      req.UserID,
			ToolID:      req.ToolID,
			PointsSpent: req.PointsSpent,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		},
	})
}

// UnlockTool handles POST /tools/:id/unlock
func (c *ToolController) UnlockTool(ctx *gin.Context) {
	toolID := ctx.Param("id")
	tool, ok := c.catalog.Resolve(toolID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return
	}

	success := c.policy.Unlock(toolID, tool.PointsRequired)
	if success {
		c.recordUnlocked(toolID)
	}

	ctx.JSON(http.StatusOK, gin.H{"success": success, "total": c.ledger.GetBalance()})
}

// GetUnlocked handles GET /tools/unlocked
func (c *ToolController) GetUnlocked(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"tools": c.loadUnlocked()})
}

// EvaluateTool handles POST /tools/:id/evaluate, driving the widget
// resolved from the registry. Premium tools must be unlocked first.
func (c *ToolController) EvaluateTool(ctx *gin.Context) {
	toolID := ctx.Param("id")
	tool, ok := c.catalog.Resolve(toolID)
	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return
	}
	if tool.IsPremium && !c.isUnlocked(toolID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Tool is locked"})
		return
	}

	widget := c.catalog.Component(toolID)
	if widget == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Tool has no loadable component"})
		return
	}

	type Request struct {
		Inputs map[string]float64 `json:"inputs"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outputs, err := widget.Evaluate(req.Inputs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"outputs": outputs})
}

func (c *ToolController) loadUnlocked() []string {
	raw, err := c.store.Get(dao.UnlockedKey)
	if err == dao.ErrNotFound {
		return []string{}
	}
	if err != nil {
		logrus.WithError(err).Error("failed to read unlocked tools")
		return []string{}
	}
	var unlocked []string
	if err := json.Unmarshal(raw, &unlocked); err != nil {
		logrus.WithError(err).Error("failed to decode unlocked tools")
		return []string{}
	}
	return unlocked
}

func (c *ToolController) isUnlocked(toolID string) bool {
	for _, id := range c.loadUnlocked() {
		if id == toolID {
			return true
		}
	}
	return false
}

func (c *ToolController) recordUnlocked(toolID string) {
	unlocked := c.loadUnlocked()
	for _, id := range unlocked {
		if id == toolID {
			return
		}
	}
	unlocked = append(unlocked, toolID)
	raw, err := json.Marshal(unlocked)
	if err != nil {
		logrus.WithError(err).Error("failed to encode unlocked tools")
		return
	}
	if err := c.store.Set(dao.UnlockedKey, raw); err != nil {
		logrus.WithError(err).Error("failed to persist unlocked tools")
	}
}
