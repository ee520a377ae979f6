package dto

import "github.com/BruksfildServices01/gym-manager/internal/models"

// ToCliente copia los campos del alta. Gimnasio, fecha de inscripción e id
// los pone el caso de uso.
func ToCliente(in CrearClienteDTO) models.Cliente {
	return models.Cliente{
		DNI:             in.DNI,
		Nombre:          in.Nombre,
		Apellidos:       in.Apellidos,
		FechaNacimiento: in.FechaNacimiento,
		Email:           in.Email,
		Calle:           in.Calle,
		CodigoPostal:    in.CodigoPostal,
		Ciudad:          in.Ciudad,
		Provincia:       in.Provincia,
	}
}

// ApplyEdit sobrescribe todos los campos editables, vacíos incluidos.
func ApplyEdit(dst *models.Cliente, in EditarClienteDTO) {
	dst.DNI = in.DNI
	dst.Nombre = in.Nombre
	dst.Apellidos = in.Apellidos
	dst.FechaNacimiento = in.FechaNacimiento
	dst.Email = in.Email
	dst.Calle = in.Calle
	dst.CodigoPostal = in.CodigoPostal
	dst.Ciudad = in.Ciudad
	dst.Provincia = in.Provincia
}

func ToInfoCliente(c models.Cliente) InfoClienteDTO {
	return InfoClienteDTO{
		ID:               c.ID,
		DNI:              c.DNI,
		Nombre:           c.Nombre,
		Apellidos:        c.Apellidos,
		Email:            c.Email,
		Ciudad:           c.Ciudad,
		FechaInscripcion: c.FechaInscripcion,
		IDGimnasio:       c.IDGimnasio,
	}
}

func ToInfoClientes(cs []models.Cliente) []InfoClienteDTO {
	out := make([]InfoClienteDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, ToInfoCliente(c))
	}
	return out
}

func ToUsuarioDTO(u *models.Usuario) UsuarioDTO {
	return UsuarioDTO{
		ID:         u.ID,
		Username:   u.Username,
		Rol:        u.Rol,
		IDGimnasio: u.IDGimnasio,
		CreatedAt:  u.CreatedAt,
	}
}
