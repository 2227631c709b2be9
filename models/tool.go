package models

// ToolMetadata describes one catalog entry. Premium tools carry a
// non-zero PointsRequired and must be unlocked before use.
type ToolMetadata struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	IconName       string   `json:"iconName,omitempty"`
	IconColor      string   `json:"iconColor,omitempty"`
	IsNew          bool     `json:"isNew,omitempty"`
	IsPremium      bool     `json:"isPremium,omitempty"`
	PointsRequired int      `json:"pointsRequired,omitempty"`
}

// PurchaseReceipt is the synthesized transaction echoed back by the
// purchase verification endpoint. It is not persisted anywhere.
type PurchaseReceipt struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	ToolID      string `json:"toolId"`
	PointsSpent int    `json:"pointsSpent"`
	Timestamp   string `json:"timestamp"`
}
