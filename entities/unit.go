package entities

// Unit is pure reference data for ingredient quantities ("g", "ml", "tbsp").
type Unit struct {
	ID     int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Symbol string `gorm:"size:10;uniqueIndex;not null" json:"symbol"`
}
