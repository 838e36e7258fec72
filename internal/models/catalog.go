package models

import "strings"

// ProductKey identifies a coffee on the menu. The menu is a closed set:
// dispatching on anything outside these three keys is a caller error.
type ProductKey string

const (
	JustJava      ProductKey = "JustJava"
	CafeAuLait    ProductKey = "CafeAuLait"
	IcedCappucino ProductKey = "IcedCappucino"
)

// ShotType is the espresso shot variant for coffees that offer one.
type ShotType string

const (
	ShotSingle ShotType = "single"
	ShotDouble ShotType = "double"
)

// AllProducts returns the menu in display order.
func AllProducts() []ProductKey {
	return []ProductKey{JustJava, CafeAuLait, IcedCappucino}
}

// DisplayName returns the name stored in the coffee_prices table.
func (p ProductKey) DisplayName() string {
	switch p {
	case JustJava:
		return "Just Java"
	case CafeAuLait:
		return "Cafe au Lait"
	case IcedCappucino:
		return "Iced Cappucino"
	}
	return string(p)
}

// HasShots reports whether the coffee offers a single/double choice.
// Just Java is served one way only.
func (p ProductKey) HasShots() bool {
	return p == CafeAuLait || p == IcedCappucino
}

// ProductByName maps a stored or client-supplied display name back to its key.
// Matching is case-insensitive and ignores surrounding whitespace.
func ProductByName(name string) (ProductKey, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "just java":
		return JustJava, true
	case "cafe au lait":
		return CafeAuLait, true
	case "iced cappucino":
		return IcedCappucino, true
	}
	return "", false
}

// ProductByKey validates a client-supplied key such as "CafeAuLait".
func ProductByKey(key string) (ProductKey, bool) {
	switch ProductKey(strings.TrimSpace(key)) {
	case JustJava:
		return JustJava, true
	case CafeAuLait:
		return CafeAuLait, true
	case IcedCappucino:
		return IcedCappucino, true
	}
	return "", false
}

// Slot is one of the five (product, shot) combinations an order can hold.
// Each slot corresponds to exactly one quantity column on the orders table.
type Slot int

const (
	SlotJustJava Slot = iota
	SlotCafeAuLaitSingle
	SlotCafeAuLaitDouble
	SlotIcedCappucinoSingle
	SlotIcedCappucinoDouble
)

// AllSlots returns the five order slots in column order.
func AllSlots() []Slot {
	return []Slot{
		SlotJustJava,
		SlotCafeAuLaitSingle,
		SlotCafeAuLaitDouble,
		SlotIcedCappucinoSingle,
		SlotIcedCappucinoDouble,
	}
}

// SlotFor resolves a product plus shot choice to its order slot.
// A shot-less product always lands in its single slot, whatever shot says.
func SlotFor(p ProductKey, shot ShotType) (Slot, bool) {
	switch p {
	case JustJava:
		return SlotJustJava, true
	case CafeAuLait:
		switch shot {
		case ShotSingle:
			return SlotCafeAuLaitSingle, true
		case ShotDouble:
			return SlotCafeAuLaitDouble, true
		}
	case IcedCappucino:
		switch shot {
		case ShotSingle:
			return SlotIcedCappucinoSingle, true
		case ShotDouble:
			return SlotIcedCappucinoDouble, true
		}
	}
	return 0, false
}

// Product returns the coffee the slot belongs to.
func (s Slot) Product() ProductKey {
	switch s {
	case SlotCafeAuLaitSingle, SlotCafeAuLaitDouble:
		return CafeAuLait
	case SlotIcedCappucinoSingle, SlotIcedCappucinoDouble:
		return IcedCappucino
	}
	return JustJava
}

// Shot returns the shot variant the slot represents.
func (s Slot) Shot() ShotType {
	if s == SlotCafeAuLaitDouble || s == SlotIcedCappucinoDouble {
		return ShotDouble
	}
	return ShotSingle
}

// Label is the slot's name in product sales reports.
func (s Slot) Label() string {
	p := s.Product()
	if !p.HasShots() {
		return p.DisplayName()
	}
	if s.Shot() == ShotDouble {
		return p.DisplayName() + " (Double)"
	}
	return p.DisplayName() + " (Single)"
}

// PriceTable is an in-memory snapshot of the price store, passed explicitly
// to whoever needs to price an item. There is no ambient "current prices"
// state; callers refresh by fetching a new table.
type PriceTable struct {
	Single map[ProductKey]float64
	Double map[ProductKey]float64
}

// UnitPrice looks up the price for a product and shot choice. Shot-less
// products are priced from the single column regardless of shot.
func (t PriceTable) UnitPrice(p ProductKey, shot ShotType) (float64, bool) {
	if shot == ShotDouble && p.HasShots() {
		price, ok := t.Double[p]
		return price, ok
	}
	price, ok := t.Single[p]
	return price, ok
}

// SlotPrice looks up the current price for an order slot.
func (t PriceTable) SlotPrice(s Slot) (float64, bool) {
	return t.UnitPrice(s.Product(), s.Shot())
}

// DefaultPriceTable is the hard-coded fallback used when the price store is
// empty or unreachable, so the menu stays usable in a read-degraded mode.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		Single: map[ProductKey]float64{
			JustJava:      22.00,
			CafeAuLait:    2.00,
			IcedCappucino: 4.75,
		},
		Double: map[ProductKey]float64{
			JustJava:      22.00, // no double shot, same price
			CafeAuLait:    3.00,
			IcedCappucino: 5.75,
		},
	}
}
