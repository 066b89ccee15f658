package models

// Admin is a restaurant administrator. PasswordHash is computed by the
// client and compared verbatim on login.
type Admin struct {
	ID             int    `json:"id" bson:"id" gorm:"primaryKey;autoIncrement:false"`
	FirstName      string `json:"firstName" bson:"firstName"`
	LastName       string `json:"lastName" bson:"lastName"`
	RestaurantName string `json:"restaurantName" bson:"restaurantName"`
	Username       string `json:"username" bson:"username" gorm:"index"`
	PasswordHash   string `json:"passwordHash" bson:"passwordHash"`
}

func (a *Admin) TableName() string {
	return "admins"
}

func (a *Admin) GetID() int   { return a.ID }
func (a *Admin) SetID(id int) { a.ID = id }

// AdminProfile is what a successful login reveals about an admin.
type AdminProfile struct {
	ID             int    `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	RestaurantName string `json:"restaurantName"`
	Username       string `json:"username"`
}

func (a *Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		RestaurantName: a.RestaurantName,
		Username:       a.Username,
	}
}
