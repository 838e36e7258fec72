package models

// CoffeePrice is one row of the coffee_prices table: the authoritative unit
// prices for a coffee. Shot-less coffees keep their one price in both columns.
type CoffeePrice struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	CoffeeName  string  `json:"coffee_name" gorm:"type:varchar(100)" validate:"required"`
	SinglePrice float64 `json:"single_price" validate:"required,gt=0"`
	DoublePrice float64 `json:"double_price" validate:"gte=0"`
}

// TableName keeps the table name the admin tooling expects.
func (CoffeePrice) TableName() string {
	return "coffee_prices"
}

// PriceTableFrom builds a lookup snapshot from price rows. Rows whose name
// does not map to a menu product are ignored.
func PriceTableFrom(rows []CoffeePrice) PriceTable {
	table := PriceTable{
		Single: make(map[ProductKey]float64),
		Double: make(map[ProductKey]float64),
	}
	for _, row := range rows {
		key, ok := ProductByName(row.CoffeeName)
		if !ok {
			continue
		}
		table.Single[key] = row.SinglePrice
		table.Double[key] = row.DoublePrice
	}
	return table
}
