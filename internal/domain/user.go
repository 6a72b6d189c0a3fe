package domain

import "time"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"column:email;size:255;uniqueIndex"`
	Login     string    `json:"login" gorm:"column:login;size:64;uniqueIndex"`
	Name      string    `json:"name"`
	Birthday  *Date     `json:"birthday,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string { return "users" }
