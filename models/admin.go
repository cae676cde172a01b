package models

// Admin is a back-office operator account. The password column holds a bcrypt
// hash and is never serialized or projected by list queries.
type Admin struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `json:"role"`
	Photo    string `json:"photo"`
}

func (Admin) TableName() string {
	return "tbl_admins"
}
