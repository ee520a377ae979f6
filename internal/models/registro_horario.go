package models

import "time"

// RegistroHorario es una entrada/salida de un usuario en el gimnasio.
// Salida nil = registro abierto; como mucho uno por usuario.
type RegistroHorario struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	IDUsuario uint       `gorm:"not null;index;uniqueIndex:idx_registro_abierto,where:salida IS NULL" json:"id_usuario"`
	Entrada   time.Time  `gorm:"not null" json:"entrada"`
	Salida    *time.Time `json:"salida"`
	CreatedAt time.Time  `json:"created_at"`
}
