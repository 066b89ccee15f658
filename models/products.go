package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a menu item.
// CategoryID is a soft reference; nothing checks that the category exists.
type Product struct {
	ID              int             `json:"id" bson:"id" gorm:"primaryKey;autoIncrement:false"`
	Name            string          `json:"name" bson:"name"`
	Description     string          `json:"description" bson:"description"`
	ImageURL        string          `json:"imageUrl" bson:"imageUrl"`
	Price           decimal.Decimal `json:"price" bson:"price" gorm:"type:numeric"`
	InStoreTaxRate  decimal.Decimal `json:"inStoreTaxRate" bson:"inStoreTaxRate" gorm:"type:numeric"`
	OutStoreTaxRate decimal.Decimal `json:"outStoreTaxRate" bson:"outStoreTaxRate" gorm:"type:numeric"`
	CategoryID      int             `json:"categoryId" bson:"categoryId"`
	HasVariations   bool            `json:"hasVariations" bson:"hasVariations"`
	Variations      Variations      `json:"variations" bson:"variations" gorm:"type:jsonb"`
}

func (p *Product) TableName() string {
	return "products"
}

func (p *Product) GetID() int   { return p.ID }
func (p *Product) SetID(id int) { p.ID = id }
