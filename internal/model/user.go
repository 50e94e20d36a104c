package model

type User struct {
	Name  string `gorm:"primaryKey;size:50"`
	Color string `gorm:"size:6"`
}
