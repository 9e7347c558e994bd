package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

func TestClienteSaveAndGet(t *testing.T) {
	c := newTestStore(t)

	cl := &model.Cliente{
		Nome:                "Ana Lima",
		Telefone:            "11977776666",
		Email:               "ana@example.com",
		Endereco:            "Av. Brasil, 45",
		BairrosCidadeEstado: "Centro, Campinas - SP",
	}
	id, err := c.Clientes.Save(cl)
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.False(t, cl.DataCriacao.IsZero())

	got, err := c.Clientes.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Lima", got.Nome)
	assert.Equal(t, "ana@example.com", got.Email)

	got.Telefone = "11900001111"
	_, err = c.Clientes.Save(got)
	require.NoError(t, err)

	again, err := c.Clientes.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "11900001111", again.Telefone)
	assert.True(t, again.DataCriacao.Equal(got.DataCriacao))
}

func TestClienteFindByNomeNormalizes(t *testing.T) {
	c := newTestStore(t)

	_, err := c.Clientes.Save(&model.Cliente{Nome: "João Silva", Telefone: "1"})
	require.NoError(t, err)

	got, err := c.Clientes.FindByNome("  joão silva ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "João Silva", got.Nome)

	missing, err := c.Clientes.FindByNome("Outro Nome")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClienteFindByNomeFoldsAccentedCase(t *testing.T) {
	c := newTestStore(t)

	_, err := c.Clientes.Save(&model.Cliente{Nome: "João Silva", Telefone: "1"})
	require.NoError(t, err)

	// Case folding must cover non-ASCII letters, not just A-Z.
	got, err := c.Clientes.FindByNome("JOÃO SILVA")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "João Silva", got.Nome)

	got, err = c.Clientes.FindByNome("joão silva")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "João Silva", got.Nome)
}

func TestClienteFindByNomeFirstMatchWins(t *testing.T) {
	c := newTestStore(t)

	first, err := c.Clientes.Save(&model.Cliente{Nome: "Carlos", Telefone: "1"})
	require.NoError(t, err)
	_, err = c.Clientes.Save(&model.Cliente{Nome: "carlos", Telefone: "2"})
	require.NoError(t, err)

	got, err := c.Clientes.FindByNome("CARLOS")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first, got.ID)
}

func TestClienteListAlphabetical(t *testing.T) {
	c := newTestStore(t)

	for _, nome := range []string{"maria", "Ana", "Carlos"} {
		_, err := c.Clientes.Save(&model.Cliente{Nome: nome})
		require.NoError(t, err)
	}

	list, err := c.Clientes.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Ana", list[0].Nome)
	assert.Equal(t, "Carlos", list[1].Nome)
	assert.Equal(t, "maria", list[2].Nome)
}

func TestClienteDelete(t *testing.T) {
	c := newTestStore(t)

	id, err := c.Clientes.Save(&model.Cliente{Nome: "Temp"})
	require.NoError(t, err)
	require.NoError(t, c.Clientes.Delete(id))

	got, err := c.Clientes.Get(id)
	require.NoError(t, err)
	assert.Nil(t, got)
}
