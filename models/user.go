// models/user.go
package models

import (
	"fmt"
	"time"
)

// User is an account. New accounts start unapproved and cannot log in
// until an administrator sets Aprobado.
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"column:first_name;size:100;not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;size:100;not null" json:"lastName"`
	Cuit      string    `gorm:"size:20;not null" json:"cuit"`
	Email     string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:50;not null" json:"role"`
	Aprobado  bool      `gorm:"not null;default:false" json:"aprobado"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "usuarios" }

// FullName is the display name returned by the current-user endpoint.
func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
