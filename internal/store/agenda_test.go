package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

func TestAgendaSaveListDelete(t *testing.T) {
	c := newTestStore(t)

	later := time.Now().Add(48 * time.Hour)
	sooner := time.Now().Add(24 * time.Hour)

	_, err := c.Agenda.Save(&model.EventoAgenda{
		OrcamentoID: 1, DataInicio: &later, Titulo: "Obra B", Bairro: "Centro",
	})
	require.NoError(t, err)

	id, err := c.Agenda.Save(&model.EventoAgenda{
		OrcamentoID: 2, DataInicio: &sooner, Titulo: "Obra A", Bairro: "Jardins",
	})
	require.NoError(t, err)

	undatedID, err := c.Agenda.Save(&model.EventoAgenda{
		OrcamentoID: 3, Titulo: "Visita sem data", Bairro: "Centro",
	})
	require.NoError(t, err)

	list, err := c.Agenda.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Obra A", list[0].Titulo)
	assert.Equal(t, "Obra B", list[1].Titulo)
	assert.Equal(t, undatedID, list[2].ID, "undated events sort last")
	assert.Nil(t, list[2].DataInicio)

	byQuote, err := c.Agenda.ListByOrcamento(2)
	require.NoError(t, err)
	require.Len(t, byQuote, 1)
	assert.Equal(t, id, byQuote[0].ID)

	require.NoError(t, c.Agenda.Delete(id))
	list, err = c.Agenda.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestAgendaUpdate(t *testing.T) {
	c := newTestStore(t)

	e := &model.EventoAgenda{OrcamentoID: 1, Titulo: "Visita"}
	id, err := c.Agenda.Save(e)
	require.NoError(t, err)

	start := time.Now().Add(time.Hour)
	e.DataInicio = &start
	e.Titulo = "Visita técnica"
	_, err = c.Agenda.Save(e)
	require.NoError(t, err)

	list, err := c.Agenda.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, "Visita técnica", list[0].Titulo)
	require.NotNil(t, list[0].DataInicio)
	assert.Equal(t, start.Unix(), list[0].DataInicio.Unix())
}
