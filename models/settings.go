package models

// Settings holds restaurant-wide options. Only the first record is ever read.
type Settings struct {
	ID             int    `json:"id" bson:"id" gorm:"primaryKey;autoIncrement:false"`
	ReportPassword string `json:"reportPassword" bson:"reportPassword"`
}

func (s *Settings) TableName() string {
	return "settings"
}

func (s *Settings) GetID() int   { return s.ID }
func (s *Settings) SetID(id int) { s.ID = id }
