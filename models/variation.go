package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Variation is a priced sub-option (size, flavour, ...) of a product or an
// order line. Its ID is only unique within the parent.
type Variation struct {
	ID    int             `json:"id" bson:"id"`
	Name  string          `json:"name" bson:"name"`
	Price decimal.Decimal `json:"price" bson:"price"`
}

// Variations is stored inline with its parent: as an embedded array in
// document stores and as a jsonb column in relational ones.
type Variations []Variation

// NumberVariations renumbers vs from 1 in list order.
func NumberVariations(vs Variations) {
	for i := range vs {
		vs[i].ID = i + 1
	}
}

func (v Variations) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (v *Variations) Scan(src any) error {
	switch data := src.(type) {
	case nil:
		*v = nil
		return nil
	case []byte:
		return json.Unmarshal(data, v)
	case string:
		return json.Unmarshal([]byte(data), v)
	default:
		return fmt.Errorf("cannot scan %T into Variations", src)
	}
}
