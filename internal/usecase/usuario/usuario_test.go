package usuario

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	usuarioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/infra/repository"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
	"github.com/BruksfildServices01/gym-manager/internal/testutil"
)

func setup(t *testing.T) (*gorm.DB, *CreateUsuario, *DeleteUsuario) {
	t.Helper()

	db := testutil.NewDB(t)
	usuarios := services.NewUsuarioService(repository.NewUsuarioGormRepository(db), bcrypt.MinCost)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return db,
		NewCreateUsuario(usuarios, dispatcher),
		NewDeleteUsuario(repository.NewClienteGormRepository(db), usuarios, dispatcher)
}

func TestCreateUsuario_InheritsCallerGym(t *testing.T) {
	db, create, _ := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	admin := testutil.SeedAdmin(t, db, gym.ID)

	u, err := create.Execute(context.Background(), dto.CrearUsuarioDTO{Username: "recepcion", Password: "x"}, admin)
	require.NoError(t, err)

	require.NotNil(t, u.IDGimnasio)
	assert.Equal(t, gym.ID, *u.IDGimnasio)
	assert.Equal(t, models.RolCliente, u.Rol)
}

func TestDeleteUsuario(t *testing.T) {
	db, create, del := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, db, "Gym")
	admin := testutil.SeedAdmin(t, db, gym.ID)

	u, err := create.Execute(ctx, dto.CrearUsuarioDTO{Username: "temporal", Password: "x"}, admin)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.RegistroHorario{IDUsuario: u.ID, Entrada: time.Now()}).Error)

	require.NoError(t, del.Execute(ctx, u.ID, admin))

	var n int64
	require.NoError(t, db.Model(&models.RegistroHorario{}).Where("id_usuario = ?", u.ID).Count(&n).Error)
	assert.Zero(t, n)

	err = del.Execute(ctx, u.ID, admin)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeNotFound))
}

func TestDeleteUsuario_RefusesClienteUser(t *testing.T) {
	db, _, del := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	admin := testutil.SeedAdmin(t, db, gym.ID)
	ana := testutil.SeedUsuario(t, db, "Ana", "Ana", models.RolCliente, &gym.ID)
	require.NoError(t, db.Create(&models.Cliente{ID: ana.ID, Nombre: "Ana", IDGimnasio: gym.ID}).Error)

	err := del.Execute(context.Background(), ana.ID, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeHasCliente))

	var n int64
	require.NoError(t, db.Model(&models.Usuario{}).Where("id = ?", ana.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateUsuario_RejectsOtherGym(t *testing.T) {
	db, create, _ := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	ajeno := testutil.SeedGimnasio(t, db, "Ajeno")
	admin := testutil.SeedAdmin(t, db, gym.ID)

	_, err := create.Execute(context.Background(), dto.CrearUsuarioDTO{
		Username:   "intruso",
		Password:   "x",
		Rol:        models.RolAdmin,
		IDGimnasio: &ajeno.ID,
	}, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeOtherGimnasio))

	var n int64
	require.NoError(t, db.Model(&models.Usuario{}).Where("username = ?", "intruso").Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreateUsuario_SameGymInBodyIsAccepted(t *testing.T) {
	db, create, _ := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	admin := testutil.SeedAdmin(t, db, gym.ID)

	u, err := create.Execute(context.Background(), dto.CrearUsuarioDTO{
		Username:   "recepcion",
		Password:   "x",
		Rol:        "ADMIN",
		IDGimnasio: &gym.ID,
	}, admin)
	require.NoError(t, err)
	assert.Equal(t, models.RolAdmin, u.Rol)
	require.NotNil(t, u.IDGimnasio)
	assert.Equal(t, gym.ID, *u.IDGimnasio)
}

func TestCreateUsuario_UnknownRol(t *testing.T) {
	db, create, _ := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	admin := testutil.SeedAdmin(t, db, gym.ID)

	_, err := create.Execute(context.Background(), dto.CrearUsuarioDTO{
		Username: "root",
		Password: "x",
		Rol:      "superuser",
	}, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeInvalidRol))

	var n int64
	require.NoError(t, db.Model(&models.Usuario{}).Where("username = ?", "root").Count(&n).Error)
	assert.Zero(t, n)
}

func TestDeleteUsuario_RefusesOtherGym(t *testing.T) {
	db, _, del := setup(t)

	gym := testutil.SeedGimnasio(t, db, "Gym")
	ajeno := testutil.SeedGimnasio(t, db, "Ajeno")
	admin := testutil.SeedAdmin(t, db, gym.ID)
	otro := testutil.SeedUsuario(t, db, "otro", "x", models.RolAdmin, &ajeno.ID)
	require.NoError(t, db.Create(&models.RegistroHorario{IDUsuario: otro.ID, Entrada: time.Now()}).Error)

	err := del.Execute(context.Background(), otro.ID, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeOtherGimnasio))

	var n int64
	require.NoError(t, db.Model(&models.Usuario{}).Where("id = ?", otro.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, db.Model(&models.RegistroHorario{}).Where("id_usuario = ?", otro.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n, "registros untouched")
}
