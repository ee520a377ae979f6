package dto

// CrearClienteDTO es el cuerpo de POST /api/cliente. id_gimnasio y
// fecha_inscripcion se aceptan en el JSON pero el servidor los ignora.
type CrearClienteDTO struct {
	IDGimnasio       uint   `json:"id_gimnasio"`
	DNI              string `json:"dni"`
	Nombre           string `json:"nombre" binding:"required"`
	Apellidos        string `json:"apellidos"`
	Email            string `json:"email"`
	Calle            string `json:"calle"`
	Ciudad           string `json:"ciudad"`
	Provincia        string `json:"provincia"`
	CodigoPostal     string `json:"codigo_postal"`
	FechaNacimiento  string `json:"fecha_nacimiento"`
	FechaInscripcion string `json:"fecha_inscripcion"`
}

// EditarClienteDTO es el cuerpo de PUT: reemplaza todos los campos editables.
type EditarClienteDTO struct {
	DNI             string `json:"dni"`
	Nombre          string `json:"nombre" binding:"required"`
	Apellidos       string `json:"apellidos"`
	Email           string `json:"email"`
	Calle           string `json:"calle"`
	Ciudad          string `json:"ciudad"`
	Provincia       string `json:"provincia"`
	CodigoPostal    string `json:"codigo_postal"`
	FechaNacimiento string `json:"fecha_nacimiento"`
}

type InfoClienteDTO struct {
	ID               uint   `json:"id"`
	DNI              string `json:"dni"`
	Nombre           string `json:"nombre"`
	Apellidos        string `json:"apellidos"`
	Email            string `json:"email"`
	Ciudad           string `json:"ciudad"`
	FechaInscripcion string `json:"fecha_inscripcion"`
	IDGimnasio       uint   `json:"id_gimnasio"`
}
