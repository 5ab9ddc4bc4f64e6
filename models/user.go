package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email" binding:"required,email"`
	Name      string    `gorm:"not null" json:"name" binding:"required"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:enum('admin','attendant');default:'attendant'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
