package models

import "time"

// Cliente comparte id con su Usuario: la fila de usuarios se crea primero
// y el cliente reutiliza ese id. Las claves foráneas (usuarios, gimnasios)
// están en migrations/, no en tags de gorm.
type Cliente struct {
	ID uint `gorm:"primaryKey;autoIncrement:false" json:"id"`

	DNI              string `gorm:"column:dni;size:20" json:"dni"`
	Nombre           string `gorm:"size:100;not null" json:"nombre"`
	Apellidos        string `gorm:"size:150" json:"apellidos"`
	FechaNacimiento  string `gorm:"size:10" json:"fecha_nacimiento"`
	FechaInscripcion string `gorm:"size:10" json:"fecha_inscripcion"`
	Email            string `gorm:"size:100" json:"email"`

	Calle        string `gorm:"size:150" json:"calle"`
	CodigoPostal string `gorm:"size:10" json:"codigo_postal"`
	Ciudad       string `gorm:"size:100" json:"ciudad"`
	Provincia    string `gorm:"size:100" json:"provincia"`

	IDGimnasio uint `gorm:"not null;index" json:"id_gimnasio"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
