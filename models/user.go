package models

type User struct {
	ID       uint   `gorm:"column:id_user;primaryKey;autoIncrement" json:"id_user"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

func (User) TableName() string {
	return "tbl_users"
}
