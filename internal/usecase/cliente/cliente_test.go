package cliente

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/gym-manager/internal/audit"
	"github.com/BruksfildServices01/gym-manager/internal/domain"
	clienteDomain "github.com/BruksfildServices01/gym-manager/internal/domain/cliente"
	usuarioDomain "github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
	"github.com/BruksfildServices01/gym-manager/internal/infra/repository"
	"github.com/BruksfildServices01/gym-manager/internal/models"
	"github.com/BruksfildServices01/gym-manager/internal/services"
	"github.com/BruksfildServices01/gym-manager/internal/testutil"
)

var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

type fixture struct {
	db       *gorm.DB
	repo     *repository.ClienteGormRepository
	usuarios *services.UsuarioService

	create *CreateCliente
	list   *ListClientes
	get    *GetCliente
	update *UpdateCliente
	delete *DeleteCliente
}

func setup(t *testing.T) *fixture {
	t.Helper()

	db := testutil.NewDB(t)
	repo := repository.NewClienteGormRepository(db)
	usuarios := services.NewUsuarioService(repository.NewUsuarioGormRepository(db), bcrypt.MinCost)
	dispatcher := audit.NewDispatcher(audit.New(db))

	return &fixture{
		db:       db,
		repo:     repo,
		usuarios: usuarios,
		create:   NewCreateCliente(repo, usuarios, dispatcher, func() time.Time { return fixedNow }),
		list:     NewListClientes(repo),
		get:      NewGetCliente(repo),
		update:   NewUpdateCliente(repo, dispatcher),
		delete:   NewDeleteCliente(repo, usuarios, dispatcher),
	}
}

func (f *fixture) count(t *testing.T, model any, where ...any) int64 {
	t.Helper()
	var n int64
	q := f.db.Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

func TestCreateCliente_AssignsGymDateAndProvisionsUser(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym Norte")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)

	created, err := f.create.Execute(ctx, dto.CrearClienteDTO{
		IDGimnasio:       gym.ID + 100,
		FechaInscripcion: "01/01/1990",
		DNI:              "123",
		Nombre:           "Ana",
		Apellidos:        "García",
	}, admin)
	require.NoError(t, err)

	assert.Equal(t, gym.ID, created.IDGimnasio, "gym comes from the caller, not the body")
	assert.Equal(t, "05/03/2024", created.FechaInscripcion)
	assert.Equal(t, "123", created.DNI)

	u, err := f.usuarios.FindByID(ctx, created.ID)
	require.NoError(t, err, "cliente and usuario share id")
	assert.Equal(t, "Ana", u.Username)
	assert.Equal(t, models.RolCliente, u.Rol)
	require.NotNil(t, u.IDGimnasio)
	assert.Equal(t, gym.ID, *u.IDGimnasio)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Ana")))

	_, err = f.usuarios.Authenticate(ctx, "Ana", "Ana")
	assert.NoError(t, err)

	assert.EqualValues(t, 1, f.count(t, &models.AuditLog{}, "action = ?", audit.ActionClienteCreated))
}

func TestCreateCliente_CallerWithoutGym(t *testing.T) {
	f := setup(t)

	noGym := testutil.SeedUsuario(t, f.db, "suelto", "x", models.RolAdmin, nil)

	_, err := f.create.Execute(context.Background(), dto.CrearClienteDTO{Nombre: "Ana"}, noGym)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeCallerWithoutGym))

	assert.EqualValues(t, 0, f.count(t, &models.Cliente{}))
	assert.EqualValues(t, 1, f.count(t, &models.Usuario{}))
}

func TestCreateCliente_DuplicateNameRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)

	_, err := f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: "Ana", DNI: "1"}, admin)
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: "Ana", DNI: "2"}, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuarioDomain.CodeDuplicate))

	assert.EqualValues(t, 1, f.count(t, &models.Cliente{}), "no orphan cliente")
	assert.EqualValues(t, 0, f.count(t, &models.Cliente{}, "dni = ?", "2"))
}

func TestListClientes(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.list.Execute(ctx)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeNoClientes))

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)
	for _, n := range []string{"Carla", "Ana", "Beto"} {
		_, err := f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: n}, admin)
		require.NoError(t, err)
	}

	out, err := f.list.Execute(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Less(t, out[0].ID, out[1].ID)
	assert.Less(t, out[1].ID, out[2].ID)
	assert.Equal(t, "Carla", out[0].Nombre)
}

func TestGetCliente(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)
	created, err := f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: "Ana"}, admin)
	require.NoError(t, err)

	got, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.get.Execute(ctx, created.ID+50)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeNotFound))
}

func TestUpdateCliente_KeepsServerOwnedFields(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)
	created, err := f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: "Ana", Email: "ana@example.com"}, admin)
	require.NoError(t, err)

	updated, err := f.update.Execute(ctx, created.ID, dto.EditarClienteDTO{Nombre: "Ana María", Calle: "Mayor 1"}, admin)
	require.NoError(t, err)

	assert.Equal(t, "Ana María", updated.Nombre)
	assert.Equal(t, "Mayor 1", updated.Calle)
	assert.Empty(t, updated.Email)
	assert.Equal(t, gym.ID, updated.IDGimnasio)
	assert.Equal(t, "05/03/2024", updated.FechaInscripcion)

	reloaded, err := f.get.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana María", reloaded.Nombre)

	_, err = f.update.Execute(ctx, created.ID+9, dto.EditarClienteDTO{Nombre: "X"}, admin)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeNotFound))
	assert.EqualValues(t, 1, f.count(t, &models.Cliente{}), "update never inserts")
}

func TestDeleteCliente_Cascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)
	created, err := f.create.Execute(ctx, dto.CrearClienteDTO{Nombre: "Ana"}, admin)
	require.NoError(t, err)

	salida := fixedNow.Add(time.Hour)
	for i := 0; i < 3; i++ {
		require.NoError(t, f.db.Create(&models.RegistroHorario{IDUsuario: created.ID, Entrada: fixedNow, Salida: &salida}).Error)
	}
	require.NoError(t, f.db.Create(&models.RegistroHorario{IDUsuario: admin.ID, Entrada: fixedNow}).Error)

	require.NoError(t, f.delete.Execute(ctx, created.ID, admin))

	assert.EqualValues(t, 0, f.count(t, &models.Cliente{}))
	assert.EqualValues(t, 0, f.count(t, &models.RegistroHorario{}, "id_usuario = ?", created.ID))
	assert.EqualValues(t, 1, f.count(t, &models.RegistroHorario{}, "id_usuario = ?", admin.ID))
	assert.EqualValues(t, 0, f.count(t, &models.Usuario{}, "id = ?", created.ID))

	_, err = f.get.Execute(ctx, created.ID)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeNotFound))
}

func TestDeleteCliente_MissingDoesNothing(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)
	require.NoError(t, f.db.Create(&models.RegistroHorario{IDUsuario: 42, Entrada: fixedNow}).Error)

	err := f.delete.Execute(ctx, 42, admin)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeNotFound))

	assert.EqualValues(t, 1, f.count(t, &models.RegistroHorario{}))
	assert.EqualValues(t, 1, f.count(t, &models.Usuario{}))
}

func TestCreationFailedWrapsNotFound(t *testing.T) {
	err := clienteDomain.ErrCreationFailed(clienteDomain.ErrNotFound(3))

	assert.True(t, httperr.IsBusiness(err, clienteDomain.CodeCreationFailed))

	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 500, be.Status)
	assert.True(t, httperr.IsBusiness(errors.Unwrap(err), clienteDomain.CodeNotFound))
}

// lostAfterWrite escribe con normalidad pero no encuentra el cliente al
// releerlo.
type lostAfterWrite struct {
	clienteDomain.Repository
}

func (r lostAfterWrite) FindByID(context.Context, uint) (*models.Cliente, error) {
	return nil, domain.ErrNotFound
}

func (r lostAfterWrite) Transaction(ctx context.Context, fn func(tx clienteDomain.Repository) error) error {
	return r.Repository.Transaction(ctx, func(tx clienteDomain.Repository) error {
		return fn(lostAfterWrite{tx})
	})
}

func TestCreateCliente_MissingAfterWrite(t *testing.T) {
	f := setup(t)

	gym := testutil.SeedGimnasio(t, f.db, "Gym")
	admin := testutil.SeedAdmin(t, f.db, gym.ID)

	create := NewCreateCliente(
		lostAfterWrite{f.repo},
		f.usuarios,
		audit.NewDispatcher(audit.New(f.db)),
		func() time.Time { return fixedNow },
	)

	created, err := create.Execute(context.Background(), dto.CrearClienteDTO{Nombre: "Ana", DNI: "1"}, admin)
	require.Error(t, err)
	assert.Nil(t, created)

	var be httperr.BusinessError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, clienteDomain.CodeCreationFailed, be.Code)
	assert.Equal(t, 500, be.Status)
	assert.True(t, httperr.IsBusiness(errors.Unwrap(err), clienteDomain.CodeNotFound))

	assert.EqualValues(t, 0, f.count(t, &models.AuditLog{}), "no audit event")
	assert.EqualValues(t, 0, f.count(t, &models.Cliente{}), "rolled back")
	assert.EqualValues(t, 1, f.count(t, &models.Usuario{}), "only the admin")
}
