package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/gym-manager/internal/domain/usuario"
	"github.com/BruksfildServices01/gym-manager/internal/dto"
	"github.com/BruksfildServices01/gym-manager/internal/httperr"
)

func TestUserDetailsService(t *testing.T) {
	usuarios := newUsuarioService(t)
	details := NewUserDetailsService(usuarios)
	ctx := context.Background()

	created, err := usuarios.Create(ctx, dto.CrearUsuarioDTO{Username: "ana", Password: "ana"})
	require.NoError(t, err)

	byName, err := details.LoadUserByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	byID, err := details.LoadUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", byID.Username)

	_, err = details.LoadUserByUsername(ctx, "luis")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, usuario.CodeNotFound))
	assert.EqualError(t, err, "Usuario luis no encontrado")

	_, err = details.LoadUserByID(ctx, created.ID+1)
	assert.True(t, httperr.IsBusiness(err, usuario.CodeNotFound))
}
