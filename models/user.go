package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Age      int     `json:"age"`
	Height   float64 `json:"height"` // cm
	Weight   float64 `json:"weight"` // kg

	Friends []User `gorm:"many2many:user_friends" json:"friends,omitempty"`
}
