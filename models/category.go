package models

// Category groups products on the menu.
type Category struct {
	ID       int    `json:"id" bson:"id" gorm:"primaryKey;autoIncrement:false"`
	Name     string `json:"name" bson:"name"`
	ImageURL string `json:"imageUrl" bson:"imageUrl"`
}

func (c *Category) TableName() string {
	return "categories"
}

func (c *Category) GetID() int   { return c.ID }
func (c *Category) SetID(id int) { c.ID = id }
