package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maozinhaws/pintor-pro/internal/infra/logger"
	"github.com/maozinhaws/pintor-pro/internal/model"
)

func newTestStore(t *testing.T) *Container {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "pintor.db"), logger.New("test", "ERROR"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return NewContainer(s)
}

func sampleOrcamento() *model.Orcamento {
	return &model.Orcamento{
		Cliente: model.Cliente{
			Nome:                "João Silva",
			Telefone:            "11988887777",
			Endereco:            "Rua das Flores, 123",
			BairrosCidadeEstado: "Centro, Campinas - SP",
		},
		Comodos: []model.Comodo{{
			Nome:    "Sala",
			Medidas: model.Medidas{Largura: 4, Altura: 3},
			Itens: []model.ItemOrcamento{{
				Nome:   "Parede norte",
				Base:   "4",
				Altura: "2.8",
				Valor:  "350",
			}},
		}},
		FormasPagamento: []string{"Pix", "Dinheiro"},
		Formato:         model.FormatoCompleto,
		Status:          model.StatusPendente,
		Validade:        15,
	}
}

func TestOrcamentoSaveRoundTrip(t *testing.T) {
	c := newTestStore(t)

	o := sampleOrcamento()
	id, err := c.Orcamentos.Save(o)
	require.NoError(t, err)
	require.NotZero(t, id)
	assert.False(t, o.DataCriacao.IsZero())
	assert.Equal(t, int64(1), o.Versao)
	assert.False(t, o.Sincronizado)

	got, err := c.Orcamentos.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o.Cliente.Nome, got.Cliente.Nome)
	assert.Equal(t, o.Comodos, got.Comodos)
	assert.Equal(t, o.FormasPagamento, got.FormasPagamento)
	assert.True(t, got.DataCriacao.Equal(o.DataCriacao))
}

func TestOrcamentoUpdatePreservesDataCriacao(t *testing.T) {
	c := newTestStore(t)

	o := sampleOrcamento()
	id, err := c.Orcamentos.Save(o)
	require.NoError(t, err)
	criacao := o.DataCriacao
	modificacao := o.DataModificacao

	time.Sleep(10 * time.Millisecond)

	o.Status = model.StatusAprovado
	// A caller passing a bogus creation date must not be able to rewrite it.
	o.DataCriacao = criacao.Add(-24 * time.Hour)
	_, err = c.Orcamentos.Save(o)
	require.NoError(t, err)

	got, err := c.Orcamentos.Get(id)
	require.NoError(t, err)
	assert.True(t, got.DataCriacao.Equal(criacao))
	assert.True(t, got.DataModificacao.After(modificacao))
	assert.Equal(t, int64(2), got.Versao)
	assert.Equal(t, model.StatusAprovado, got.Status)
}

func TestOrcamentoSaveResetsSincronizado(t *testing.T) {
	c := newTestStore(t)

	o := sampleOrcamento()
	id, err := c.Orcamentos.Save(o)
	require.NoError(t, err)

	ok, err := c.Orcamentos.MarkSynced(id, o.Versao)
	require.NoError(t, err)
	assert.True(t, ok)

	got, _ := c.Orcamentos.Get(id)
	assert.True(t, got.Sincronizado)

	_, err = c.Orcamentos.Save(got)
	require.NoError(t, err)

	got, _ = c.Orcamentos.Get(id)
	assert.False(t, got.Sincronizado)
}

func TestMarkSyncedIsConditionalOnVersion(t *testing.T) {
	c := newTestStore(t)

	o := sampleOrcamento()
	id, err := c.Orcamentos.Save(o)
	require.NoError(t, err)
	staleVersion := o.Versao

	// A newer save lands while the stale push is still in flight.
	_, err = c.Orcamentos.Save(o)
	require.NoError(t, err)

	ok, err := c.Orcamentos.MarkSynced(id, staleVersion)
	require.NoError(t, err)
	assert.False(t, ok, "stale push must not mark a newer edit as synced")

	got, _ := c.Orcamentos.Get(id)
	assert.False(t, got.Sincronizado)

	ok, err = c.Orcamentos.MarkSynced(id, got.Versao)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOrcamentoListOrder(t *testing.T) {
	c := newTestStore(t)

	first := sampleOrcamento()
	_, err := c.Orcamentos.Save(first)
	require.NoError(t, err)

	second := sampleOrcamento()
	second.Cliente.Nome = "Maria Souza"
	_, err = c.Orcamentos.Save(second)
	require.NoError(t, err)

	list, err := c.Orcamentos.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Maria Souza", list[0].Cliente.Nome)
	assert.Equal(t, "João Silva", list[1].Cliente.Nome)
}

func TestOrcamentoSearch(t *testing.T) {
	c := newTestStore(t)

	inCentro := sampleOrcamento() // client location contains "Centro"
	_, err := c.Orcamentos.Save(inCentro)
	require.NoError(t, err)

	inRoomObs := sampleOrcamento()
	inRoomObs.Cliente.BairrosCidadeEstado = "Jardim Paulista, São Paulo - SP"
	inRoomObs.Comodos[0].Observacoes = "parede central perto do centro da sala"
	_, err = c.Orcamentos.Save(inRoomObs)
	require.NoError(t, err)

	unrelated := sampleOrcamento()
	unrelated.Cliente.Nome = "Pedro"
	unrelated.Cliente.BairrosCidadeEstado = "Vila Nova, Santos - SP"
	unrelated.Comodos = nil
	_, err = c.Orcamentos.Save(unrelated)
	require.NoError(t, err)

	got, err := c.Orcamentos.Search("centro")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, o := range got {
		assert.NotEqual(t, "Pedro", o.Cliente.Nome)
	}
}

func TestOrcamentoDeleteLeavesAgendaDangling(t *testing.T) {
	c := newTestStore(t)

	o := sampleOrcamento()
	id, err := c.Orcamentos.Save(o)
	require.NoError(t, err)

	_, err = c.Agenda.Save(&model.EventoAgenda{
		OrcamentoID:     id,
		Titulo:          "Início da obra",
		Bairro:          "Centro",
		TelefoneCliente: o.Cliente.Telefone,
	})
	require.NoError(t, err)

	require.NoError(t, c.Orcamentos.Delete(id))

	gone, err := c.Orcamentos.Get(id)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The event survives with a dangling reference.
	events, err := c.Agenda.ListByOrcamento(id)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestListUnsynced(t *testing.T) {
	c := newTestStore(t)

	a := sampleOrcamento()
	_, err := c.Orcamentos.Save(a)
	require.NoError(t, err)

	b := sampleOrcamento()
	b.Cliente.Nome = "Maria Souza"
	_, err = c.Orcamentos.Save(b)
	require.NoError(t, err)

	_, err = c.Orcamentos.MarkSynced(a.ID, a.Versao)
	require.NoError(t, err)

	unsynced, err := c.Orcamentos.ListUnsynced()
	require.NoError(t, err)
	require.Len(t, unsynced, 1)
	assert.Equal(t, b.ID, unsynced[0].ID)
}
