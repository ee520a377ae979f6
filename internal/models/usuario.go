package models

import "time"

const (
	RolAdmin   = "admin"
	RolCliente = "cliente"
)

type Usuario struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-"`
	Rol          string `gorm:"size:20;default:'cliente'" json:"rol"`

	IDGimnasio *uint `gorm:"index" json:"id_gimnasio"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *Usuario) IsAdmin() bool {
	return u != nil && u.Rol == RolAdmin
}
