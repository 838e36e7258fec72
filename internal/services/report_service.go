package services

import (
	"fmt"
	"time"

	"kedaikopi/internal/models"
	"kedaikopi/internal/repositories"
)

// Report kinds accepted by the reporting engine.
const (
	ReportOrders     = "orders"
	ReportProducts   = "products"
	ReportCategories = "categories"
)

// ReportService aggregates persisted orders into sales reports.
type ReportService struct {
	orderRepo repositories.OrderRepository
	priceRepo repositories.PriceRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orderRepo repositories.OrderRepository, priceRepo repositories.PriceRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
		priceRepo: priceRepo,
	}
}

// ReportResult holds one report kind's rows plus the shared summary block.
// Exactly one of Orders, Products, Categories is populated.
type ReportResult struct {
	Kind       string
	Orders     []models.OrderRow
	Products   []models.ProductSales
	Categories []models.CategorySales
	Summary    models.ReportSummary
}

// Report builds the requested report over orders placed on the given day, or
// over all orders when date is nil. Dollar figures for product and category
// reports are computed from *current* prices applied to historical
// quantities; per-order prices are not stored, and this approximation is a
// deliberate property of the reports.
func (s *ReportService) Report(kind string, date *time.Time) (*ReportResult, error) {
	switch kind {
	case ReportOrders, ReportProducts, ReportCategories:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidReportKind, kind)
	}

	orders, err := s.orderRepo.List(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders for report: %w", err)
	}

	result := &ReportResult{
		Kind:    kind,
		Summary: summarize(orders),
	}

	switch kind {
	case ReportOrders:
		result.Orders = orderRows(orders)
	case ReportProducts:
		result.Products = s.productSales(orders)
	case ReportCategories:
		result.Categories = s.categorySales(orders)
	}
	return result, nil
}

// summarize computes the summary block shared by every report kind.
func summarize(orders []models.Order) models.ReportSummary {
	summary := models.ReportSummary{TotalOrders: len(orders)}
	for _, order := range orders {
		summary.TotalRevenue += order.TotalAmount
	}
	summary.TotalRevenue = round2(summary.TotalRevenue)
	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = round2(summary.TotalRevenue / float64(summary.TotalOrders))
	}
	return summary
}

func orderRows(orders []models.Order) []models.OrderRow {
	rows := []models.OrderRow{}
	for i := range orders {
		order := &orders[i]
		rows = append(rows, models.OrderRow{
			OrderID:      order.ID,
			OrderDate:    order.OrderDate,
			CustomerName: order.CustomerName,
			TotalAmount:  order.TotalAmount,
			Items:        order.Lines(),
		})
	}
	return rows
}

// productSales sums quantities per order slot and prices them at the current
// rate for that slot. Slots nobody ordered are omitted, not shown as zeros.
func (s *ReportService) productSales(orders []models.Order) []models.ProductSales {
	prices := s.currentPrices()

	sales := []models.ProductSales{}
	for _, slot := range models.AllSlots() {
		var quantity int
		for i := range orders {
			quantity += orders[i].SlotQuantity(slot)
		}
		if quantity <= 0 {
			continue
		}
		price, _ := prices.SlotPrice(slot)
		sales = append(sales, models.ProductSales{
			ProductName:   slot.Label(),
			TotalQuantity: quantity,
			TotalSales:    round2(price * float64(quantity)),
		})
	}
	return sales
}

// categorySales re-buckets the order slots into Regular, Single Shot and
// Double Shot. The dollar figure for a shot category uses the plain average
// of the variant coffees' current price for that shot size, not a
// quantity-weighted mix; this inexact figure is the report's long-standing
// definition and is kept as is.
func (s *ReportService) categorySales(orders []models.Order) []models.CategorySales {
	prices := s.currentPrices()

	var regularQty, singleQty, doubleQty int
	for i := range orders {
		order := &orders[i]
		regularQty += order.SlotQuantity(models.SlotJustJava)
		singleQty += order.SlotQuantity(models.SlotCafeAuLaitSingle) + order.SlotQuantity(models.SlotIcedCappucinoSingle)
		doubleQty += order.SlotQuantity(models.SlotCafeAuLaitDouble) + order.SlotQuantity(models.SlotIcedCappucinoDouble)
	}

	regularPrice, _ := prices.UnitPrice(models.JustJava, models.ShotSingle)
	cafeSingle, _ := prices.UnitPrice(models.CafeAuLait, models.ShotSingle)
	icedSingle, _ := prices.UnitPrice(models.IcedCappucino, models.ShotSingle)
	cafeDouble, _ := prices.UnitPrice(models.CafeAuLait, models.ShotDouble)
	icedDouble, _ := prices.UnitPrice(models.IcedCappucino, models.ShotDouble)

	sales := []models.CategorySales{}
	if regularQty > 0 {
		sales = append(sales, models.CategorySales{
			CategoryName:  "Regular",
			TotalQuantity: regularQty,
			TotalSales:    round2(regularPrice * float64(regularQty)),
		})
	}
	if singleQty > 0 {
		avg := (cafeSingle + icedSingle) / 2
		sales = append(sales, models.CategorySales{
			CategoryName:  "Single Shot",
			TotalQuantity: singleQty,
			TotalSales:    round2(avg * float64(singleQty)),
		})
	}
	if doubleQty > 0 {
		avg := (cafeDouble + icedDouble) / 2
		sales = append(sales, models.CategorySales{
			CategoryName:  "Double Shot",
			TotalQuantity: doubleQty,
			TotalSales:    round2(avg * float64(doubleQty)),
		})
	}
	return sales
}

// currentPrices joins reports against the live price table, falling back to
// the defaults per slot when a row is missing or the store is unreachable.
func (s *ReportService) currentPrices() models.PriceTable {
	defaults := models.DefaultPriceTable()
	rows, err := s.priceRepo.GetAll()
	if err != nil {
		return defaults
	}
	table := models.PriceTableFrom(rows)
	for _, product := range models.AllProducts() {
		if _, ok := table.Single[product]; !ok {
			table.Single[product] = defaults.Single[product]
		}
		if _, ok := table.Double[product]; !ok {
			table.Double[product] = defaults.Double[product]
		}
	}
	return table
}
