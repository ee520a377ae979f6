package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Madrid"

// LayoutFecha es dd/MM/yyyy, el formato de fecha_inscripcion.
const LayoutFecha = "02/01/2006"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// Clock devuelve un reloj fijado a la zona tz, inyectable en los casos de uso.
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func FormatFecha(t time.Time) string {
	return t.Format(LayoutFecha)
}
