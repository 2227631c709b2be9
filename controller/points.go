package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aksisonline/AV-Champs-tools-kt/logic"
	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

// PointsController handles HTTP requests for the points ledger
type PointsController struct {
	ledger *logic.PointsLedger
}

func NewPointsController(ledger *logic.PointsLedger) *PointsController {
	return &PointsController{ledger: ledger}
}

// GetBalance handles GET /points/balance
func (c *PointsController) GetBalance(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"total": c.ledger.GetBalance()})
}

// GetTransactions handles GET /points/transactions
func (c *PointsController) GetTransactions(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	ctx.JSON(http.StatusOK, gin.H{"transactions": c.ledger.GetHistory(limit)})
}

// ApplyTransaction handles POST /points/transactions
func (c *PointsController) ApplyTransaction(ctx *gin.Context) {
	type Request struct {
		Amount   int            `json:"amount"`
		Type     string         `json:"type"`
		Reason   string         `json:"reason"`
		Metadata map[string]any `json:"metadata"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	typ := models.TransactionType(req.Type)
	if !typ.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "type must be earn or spend"})
		return
	}
	if req.Reason == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "reason is required"})
		return
	}

	success := c.ledger.Apply(req.Amount, typ, req.Reason, req.Metadata)
	ctx.JSON(http.StatusOK, gin.H{"success": success})
}
