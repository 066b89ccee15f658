package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDateLayout is the layout clients use for Order.OrderDateString.
const OrderDateLayout = "2006-01-02 / 15:04"

// Order is a single sold line. OrderDate is derived from OrderDateString
// when the order is stored.
type Order struct {
	ID              int             `json:"id" bson:"id" gorm:"primaryKey;autoIncrement:false"`
	CategoryName    string          `json:"categoryName" bson:"categoryName"`
	ProductName     string          `json:"productName" bson:"productName"`
	Quantity        int             `json:"quantity" bson:"quantity"`
	Price           decimal.Decimal `json:"price" bson:"price" gorm:"type:numeric"`
	TaxFreePrice    decimal.Decimal `json:"taxFreePrice" bson:"taxFreePrice" gorm:"type:numeric"`
	TotalPrice      decimal.Decimal `json:"totalPrice" bson:"totalPrice" gorm:"type:numeric"`
	NetPrice        decimal.Decimal `json:"netPrice" bson:"netPrice" gorm:"type:numeric"`
	GrossPrice      decimal.Decimal `json:"grossPrice" bson:"grossPrice" gorm:"type:numeric"`
	PaymentType     string          `json:"paymentType" bson:"paymentType"`
	HasVariations   bool            `json:"hasVariations" bson:"hasVariations"`
	Variations      Variations      `json:"variations" bson:"variations" gorm:"type:jsonb"`
	OrderDateString string          `json:"orderDateString" bson:"orderDateString"`
	OrderDate       time.Time       `json:"orderDate" bson:"orderDate" gorm:"index"`
	TaxValue        decimal.Decimal `json:"taxValue" bson:"taxValue" gorm:"type:numeric"`
}

func (o *Order) TableName() string {
	return "orders"
}

func (o *Order) GetID() int   { return o.ID }
func (o *Order) SetID(id int) { o.ID = id }
