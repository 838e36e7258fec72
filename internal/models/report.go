package models

import "time"

// OrderRow is one order in the flat orders report, with its denormalized
// quantity columns exploded into items.
type OrderRow struct {
	OrderID      uint        `json:"order_id"`
	OrderDate    time.Time   `json:"order_date"`
	CustomerName string      `json:"customer_name"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderLine `json:"items"`
}

// ProductSales is one row of the per-product sales report. Dollar sales are
// computed against current prices, not the prices in effect when the orders
// were placed; per-order prices are not stored.
type ProductSales struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalSales    float64 `json:"total_sales"`
}

// CategorySales is one row of the per-category (shot type) sales report.
type CategorySales struct {
	CategoryName  string  `json:"category_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalSales    float64 `json:"total_sales"`
}

// ReportSummary accompanies every report kind.
type ReportSummary struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}
