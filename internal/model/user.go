package model

import (
	"strings"
	"time"
)

type UserRole string

const (
	Estudiante UserRole = "estudiante"
	Admin      UserRole = "admin"
)

// swagger:model User
type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	Role      UserRole  `gorm:"size:20;default:'estudiante'" json:"role"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) NombreCompleto() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
