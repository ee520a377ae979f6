package dto

import "time"

type CrearUsuarioDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`

	// Opcionales; por defecto rol cliente sin gimnasio.
	Rol        string `json:"rol,omitempty"`
	IDGimnasio *uint  `json:"id_gimnasio,omitempty"`
}

type UsuarioDTO struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	Rol        string    `json:"rol"`
	IDGimnasio *uint     `json:"id_gimnasio"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
