package logic

import (
	"github.com/sirupsen/logrus"

	"github.com/aksisonline/AV-Champs-tools-kt/models"
)

// UnlockPolicy gates access to premium tools behind a point cost. It
// holds no state: the set of unlocked tools belongs to the calling
// surface, this policy only decides and drives the spend.
type UnlockPolicy struct {
	ledger  *PointsLedger
	catalog *ToolCatalog
}

func NewUnlockPolicy(ledger *PointsLedger, catalog *ToolCatalog) *UnlockPolicy {
	return &UnlockPolicy{ledger: ledger, catalog: catalog}
}

// CanUnlock reports whether a balance covers a cost.
func (p *UnlockPolicy) CanUnlock(balance, cost int) bool {
	return balance >= cost
}

// Unlock spends cost points to unlock the given tool. The cost is
// cross-checked against the catalog's declared price, and eligibility
// is enforced against a freshly read balance inside the spend itself;
// balances can change between display and action, so no cached value
// is trusted.
func (p *UnlockPolicy) Unlock(toolID string, cost int) bool {
	tool, ok := p.catalog.Resolve(toolID)
	if !ok {
		logrus.WithField("toolId", toolID).Error("unlock requested for unknown tool")
		return false
	}
	if !tool.IsPremium || tool.PointsRequired == 0 {
		logrus.WithField("toolId", toolID).Error("unlock requested for non-premium tool")
		return false
	}
	if cost != tool.PointsRequired {
		logrus.WithFields(logrus.Fields{
			"toolId":   toolID,
			"required": tool.PointsRequired,
			"offered":  cost,
		}).Error("unlock cost does not match catalog price")
		return false
	}

	return p.ledger.Apply(cost, models.TransactionSpend,
		"Unlocked premium tool: "+toolID,
		map[string]any{"toolId": toolID})
}
