package models

import "time"

// Order is a persisted customer order. Quantities are denormalized into one
// column per (coffee, shot) slot; total_amount is the server-computed total at
// the prices in effect when the order was placed. Orders are immutable once
// inserted.
type Order struct {
	ID                     uint      `json:"order_id" gorm:"primaryKey"`
	CustomerName           string    `json:"customer_name" gorm:"type:varchar(255)"`
	OrderDate              time.Time `json:"order_date" gorm:"column:order_date;autoCreateTime"`
	JustJavaSingleQty      int       `json:"just_java_single_quantity" gorm:"column:just_java_single_quantity"`
	CafeAuLaitSingleQty    int       `json:"cafe_au_lait_single_quantity" gorm:"column:cafe_au_lait_single_quantity"`
	CafeAuLaitDoubleQty    int       `json:"cafe_au_lait_double_quantity" gorm:"column:cafe_au_lait_double_quantity"`
	IcedCappucinoSingleQty int       `json:"iced_cappucino_single_quantity" gorm:"column:iced_cappucino_single_quantity"`
	IcedCappucinoDoubleQty int       `json:"iced_cappucino_double_quantity" gorm:"column:iced_cappucino_double_quantity"`
	TotalAmount            float64   `json:"total_amount"`
}

// TableName pins the GORM table name.
func (Order) TableName() string {
	return "orders"
}

// SlotQuantity returns the quantity stored for a slot.
func (o *Order) SlotQuantity(s Slot) int {
	switch s {
	case SlotJustJava:
		return o.JustJavaSingleQty
	case SlotCafeAuLaitSingle:
		return o.CafeAuLaitSingleQty
	case SlotCafeAuLaitDouble:
		return o.CafeAuLaitDoubleQty
	case SlotIcedCappucinoSingle:
		return o.IcedCappucinoSingleQty
	case SlotIcedCappucinoDouble:
		return o.IcedCappucinoDoubleQty
	}
	return 0
}

// AddSlotQuantity accumulates quantity into a slot's column. Repeated items
// for the same slot in one request sum rather than overwrite.
func (o *Order) AddSlotQuantity(s Slot, qty int) {
	switch s {
	case SlotJustJava:
		o.JustJavaSingleQty += qty
	case SlotCafeAuLaitSingle:
		o.CafeAuLaitSingleQty += qty
	case SlotCafeAuLaitDouble:
		o.CafeAuLaitDoubleQty += qty
	case SlotIcedCappucinoSingle:
		o.IcedCappucinoSingleQty += qty
	case SlotIcedCappucinoDouble:
		o.IcedCappucinoDoubleQty += qty
	}
}

// OrderLine is one non-empty slot of an order, as shown in order listings.
type OrderLine struct {
	CoffeeName string `json:"coffee_name"`
	ShotType   string `json:"shot_type"`
	Quantity   int    `json:"quantity"`
}

// Lines explodes the denormalized columns back into line items, omitting
// slots with zero quantity.
func (o *Order) Lines() []OrderLine {
	lines := []OrderLine{}
	for _, slot := range AllSlots() {
		qty := o.SlotQuantity(slot)
		if qty <= 0 {
			continue
		}
		lines = append(lines, OrderLine{
			CoffeeName: slot.Product().DisplayName(),
			ShotType:   string(slot.Shot()),
			Quantity:   qty,
		})
	}
	return lines
}
