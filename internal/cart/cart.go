// Package cart turns raw menu form state into normalized line items and an
// advisory total. It is the client-estimate side of checkout: it never
// touches persisted state, and the server reprices every line on its own
// snapshot before an order is stored.
package cart

import (
	"strconv"
	"strings"

	"kedaikopi/internal/models"
)

// FormState is the raw state of the menu form: the quantity field text and
// the selected shot radio (empty when nothing is picked) per coffee.
type FormState struct {
	Quantities map[models.ProductKey]string `json:"quantities"`
	Shots      map[models.ProductKey]string `json:"shots"`
}

// LineItem is one normalized cart entry prior to server pricing. UnitPrice
// and LineTotal come from the snapshot the caller passed in and are advisory
// only.
type LineItem struct {
	Name      string  `json:"name"`
	ShotType  string  `json:"shotType,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"totalPrice"`
}

// Collect builds line items from the form against an explicit price
// snapshot. A coffee is included only when its quantity parses to an integer
// greater than zero; coffees with a shot choice additionally need a selected
// shot. Anything else means "not ordering this item" and is skipped without
// error.
func Collect(form FormState, prices models.PriceTable) []LineItem {
	items := []LineItem{}
	for _, product := range models.AllProducts() {
		qty, ok := parseQuantity(form.Quantities[product])
		if !ok {
			continue
		}

		var shot models.ShotType
		if product.HasShots() {
			switch models.ShotType(form.Shots[product]) {
			case models.ShotSingle:
				shot = models.ShotSingle
			case models.ShotDouble:
				shot = models.ShotDouble
			default:
				// no shot picked means no order for this coffee
				continue
			}
		}

		unitPrice, ok := prices.UnitPrice(product, shot)
		if !ok {
			continue
		}

		item := LineItem{
			Name:      product.DisplayName(),
			Quantity:  qty,
			UnitPrice: unitPrice,
			LineTotal: unitPrice * float64(qty),
		}
		if product.HasShots() {
			item.ShotType = string(shot)
		}
		items = append(items, item)
	}
	return items
}

// EstimateTotal sums the line totals. The figure is advisory; the
// authoritative total is always recomputed server-side.
func EstimateTotal(items []LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal
	}
	return total
}

func parseQuantity(raw string) (int, bool) {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		return 0, false
	}
	return qty, true
}
