package domain

type User struct {
	UserID   int    `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username string `gorm:"type:varchar(100);not null;unique" json:"username" valid:"required~Username is required"`
	Password string `gorm:"type:varchar(255);not null" json:"password" valid:"required~Password is required"`
	Role     string `gorm:"type:varchar(20);not null" json:"role" valid:"required~Role is required,in(admin|staff)~Invalid role"`
}

func (User) TableName() string {
	return "users"
}
