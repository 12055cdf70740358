package entities

type Ingredient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`

	Categories []*Category `gorm:"many2many:ingredient_categories" json:"categories"`
}
