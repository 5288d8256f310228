package models

// StockAlert is a CMS alert document, created server-side when a
// product's stock crosses a threshold.
type StockAlert struct {
	ID         DocID  `json:"id,omitempty"`
	AlertType  string `json:"alertType"`
	Message    string `json:"message"`
	IsResolved bool   `json:"isResolved"`
}

// StockMovement is a manual stock adjustment record.
type StockMovement struct {
	ID                DocID       `json:"id,omitempty"`
	Type              string      `json:"type"`
	Product           any         `json:"product"`
	Size              string      `json:"size"`
	Quantity          int         `json:"quantity"`
	Reason            string      `json:"reason,omitempty"`
	SupplierReference string      `json:"supplierReference,omitempty"`
	UnitCost          float64     `json:"unitCost,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	Reference         string      `json:"reference,omitempty"`
}

// StockStats is the CMS stock-statistics summary.
type StockStats struct {
	TotalProducts      int     `json:"totalProducts"`
	LowStockProducts   int     `json:"lowStockProducts"`
	OutOfStockProducts int     `json:"outOfStockProducts"`
	StockValue         float64 `json:"stockValue"`
	PendingAlerts      int     `json:"pendingAlerts"`
}

// BulkRestockItem is one line of a bulk restock request.
type BulkRestockItem struct {
	ProductID         string  `json:"productId"`
	Size              string  `json:"size"`
	Quantity          int     `json:"quantity"`
	UnitCost          float64 `json:"unitCost,omitempty"`
	SupplierReference string  `json:"supplierReference,omitempty"`
	Reason            string  `json:"reason,omitempty"`
}

// BulkRestockRequest is the admin bulk-restock payload.
type BulkRestockRequest struct {
	Items  []BulkRestockItem `json:"items"`
	Reason string            `json:"reason,omitempty"`
}

// BulkRestockSummary reports the outcome of a bulk restock.
type BulkRestockSummary struct {
	Total   int `json:"total"`
	Success int `json:"success"`
	Errors  int `json:"errors"`
}

// BulkRestockResult is the bulk-restock response envelope.
type BulkRestockResult struct {
	Summary BulkRestockSummary `json:"summary"`
}
