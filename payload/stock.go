package payload

import (
	"context"
	"net/http"

	"github.com/dorushugo/terra/models"
)

// ActiveStockAlerts lists unresolved stock alerts.
func (c *Client) ActiveStockAlerts(ctx context.Context) ([]models.StockAlert, error) {
	var list struct {
		Docs []models.StockAlert `json:"docs"`
	}
	path := "/stock-alerts?where%5BisResolved%5D%5Bequals%5D=false"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Docs, nil
}

// CreateStockMovement records one stock adjustment.
func (c *Client) CreateStockMovement(ctx context.Context, m *models.StockMovement) (*models.StockMovement, error) {
	var created models.StockMovement
	if err := c.doJSON(ctx, http.MethodPost, "/stock-movements", m, &created, http.StatusCreated); err != nil {
		return nil, err
	}
	return &created, nil
}

// StockStats fetches the admin stock-statistics summary.
func (c *Client) StockStats(ctx context.Context) (*models.StockStats, error) {
	var stats models.StockStats
	if err := c.doJSON(ctx, http.MethodGet, "/admin/stock-stats", nil, &stats, http.StatusOK); err != nil {
		return nil, err
	}
	return &stats, nil
}

// BulkRestock submits a batch of restock lines.
func (c *Client) BulkRestock(ctx context.Context, req *models.BulkRestockRequest) (*models.BulkRestockResult, error) {
	var result models.BulkRestockResult
	if err := c.doJSON(ctx, http.MethodPost, "/admin/bulk-restock", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}
