// Package testutil arranca una base sqlite en memoria por test con el mismo
// esquema que usa la aplicación.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/config"
	dbpkg "github.com/BruksfildServices01/gym-manager/internal/db"
	"github.com/BruksfildServices01/gym-manager/internal/models"
)

const JWTSecret = "test-secret"

func Config() *config.Config {
	return &config.Config{
		Env:              "test",
		ServerPort:       "0",
		DBDriver:         config.DriverSQLite,
		DBUrl:            fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		JWTSecret:        JWTSecret,
		JWTTTL:           time.Hour,
		Timezone:         "UTC",
		BcryptCost:       bcrypt.MinCost,
		LoginMaxAttempts: 3,
		LoginWindow:      time.Minute,
	}
}

func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	return NewDBWithConfig(t, Config())
}

func NewDBWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func SeedGimnasio(t *testing.T, db *gorm.DB, nombre string) *models.Gimnasio {
	t.Helper()

	g := &models.Gimnasio{Nombre: nombre}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("seed gimnasio: %v", err)
	}
	return g
}

// SeedUsuario crea un usuario con la contraseña hasheada con coste mínimo.
func SeedUsuario(t *testing.T, db *gorm.DB, username, password, rol string, idGimnasio *uint) *models.Usuario {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	u := &models.Usuario{
		Username:     username,
		PasswordHash: string(hashed),
		Rol:          rol,
		IDGimnasio:   idGimnasio,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed usuario: %v", err)
	}
	return u
}

func SeedAdmin(t *testing.T, db *gorm.DB, idGimnasio uint) *models.Usuario {
	t.Helper()
	return SeedUsuario(t, db, "admin-"+uuid.NewString()[:8], "admin-pass", models.RolAdmin, &idGimnasio)
}
