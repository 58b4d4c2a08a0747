package models

// Price bounds for a RestaurantPizza, inclusive
const (
	MinPrice = 1.0
	MaxPrice = 30.0
)

// RestaurantPizza records that a restaurant offers a pizza at a price.
// Pizza and Restaurant are only declared so the migrator emits the foreign keys;
// they are never preloaded.
type RestaurantPizza struct {
	ID           int         `json:"id" gorm:"primaryKey"`
	Price        float64     `json:"price" gorm:"not null;check:check_price_range_constraint,price >= 1 AND price <= 30"`
	PizzaID      int         `json:"pizza_id" gorm:"not null;index"`
	RestaurantID int         `json:"restaurant_id" gorm:"not null;index"`
	Pizza        *Pizza      `json:"-" gorm:"foreignKey:PizzaID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Restaurant   *Restaurant `json:"-" gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// PriceInRange reports whether price satisfies MinPrice <= price <= MaxPrice
func PriceInRange(price float64) bool {
	return price >= MinPrice && price <= MaxPrice
}
