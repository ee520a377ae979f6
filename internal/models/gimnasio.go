package models

import "time"

type Gimnasio struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Direccion string    `gorm:"size:255" json:"direccion"`
	Telefono  string    `gorm:"size:20" json:"telefono"`
	Email     string    `gorm:"size:100" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
