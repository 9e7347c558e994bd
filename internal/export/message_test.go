package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

func sampleQuote() *model.Orcamento {
	excluded := false
	return &model.Orcamento{
		Cliente: model.Cliente{
			Nome:                "Maria Souza",
			Telefone:            "11 98888-0000",
			Endereco:            "Rua das Tintas, 10",
			BairrosCidadeEstado: "Centro, São Paulo, SP",
		},
		Formato:  model.FormatoCompleto,
		Status:   model.StatusPendente,
		Validade: 15,
		FormasPagamento: []string{"Pix", "Cartão em 3x"},
		Observacoes:     "Material por conta do cliente",
		DataCriacao:     time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Comodos: []model.Comodo{
			{
				Nome:        "Sala",
				Observacoes: "Parede com infiltração",
				Itens: []model.ItemOrcamento{
					{
						Nome:      "Parede norte",
						Descricao: "Duas demãos",
						Base:      "2",
						Altura:    "2.5",
						Servicos:  []string{"Massa corrida", "Pintura"},
						Valor:     "300",
					},
					{
						Nome:   "Rodapé",
						Base:   "3.5",
						Altura: "",
						Valor:  "80",
					},
					{
						Nome:             "Teto (não cobrado)",
						Base:             "2",
						Altura:           "2",
						IncluirNoCalculo: &excluded,
					},
				},
			},
		},
	}
}

func sampleConfig() *model.ConfigEmpresa {
	return &model.ConfigEmpresa{
		Nome:     "Pinturas Silva",
		Telefone: "11 97777-2222",
		Email:    "contato@pinturassilva.com.br",
		Cnpj:     "12.345.678/0001-00",
	}
}

func TestMensagemCompleto(t *testing.T) {
	texto := Mensagem(sampleQuote(), sampleConfig())

	assert.Contains(t, texto, "*Prezado(a) Maria Souza, segue o orçamento do dia 10/03/2026.*")
	assert.Contains(t, texto, "*ORÇAMENTO DE PINTURA*")
	assert.Contains(t, texto, "Nome: Maria Souza")
	assert.Contains(t, texto, "Local: Centro, São Paulo, SP")
	assert.Contains(t, texto, "*1. SALA*")
	assert.Contains(t, texto, "Obs: Parede com infiltração")
	assert.Contains(t, texto, "Medidas: 2m × 2.5m")
	assert.Contains(t, texto, "Área: 5.00m²")
	// One filled dimension renders as linear meters.
	assert.Contains(t, texto, "Área: 3.50m")
	assert.Contains(t, texto, "Serviços: Massa corrida, Pintura")
	assert.Contains(t, texto, "Valor: R$ 300.00")
	// The excluded item still appears, it just doesn't count toward the
	// total: 2x2.5 + 3.5, without the 2x2 teto.
	assert.Contains(t, texto, "Teto (não cobrado)")
	assert.Contains(t, texto, "*ÁREA TOTAL: 8.50m²*")
	assert.Contains(t, texto, "*VALOR TOTAL: R$ 380.00*")
	assert.Contains(t, texto, "*VALIDADE:* 15 dias")
	assert.Contains(t, texto, "• Pix")
	assert.Contains(t, texto, "• Cartão em 3x")
	assert.Contains(t, texto, "Material por conta do cliente")
	assert.Contains(t, texto, "*Pinturas Silva*")
	assert.Contains(t, texto, "📞 11 97777-2222")
	assert.Contains(t, texto, "CNPJ: 12.345.678/0001-00")
}

func TestMensagemFormatoM2HidesMeasurements(t *testing.T) {
	o := sampleQuote()
	o.Formato = model.FormatoM2

	texto := Mensagem(o, sampleConfig())
	assert.NotContains(t, texto, "Medidas:")
	assert.Contains(t, texto, "Área: 5.00m²")
	assert.Contains(t, texto, "Valor: R$ 300.00")
}

func TestMensagemFormatoValorHidesItemValues(t *testing.T) {
	o := sampleQuote()
	o.Formato = model.FormatoValor

	texto := Mensagem(o, sampleConfig())
	assert.NotContains(t, texto, "Medidas:")
	assert.NotContains(t, texto, "Área: 5.00m²")
	assert.NotContains(t, texto, "Valor: R$ 300.00")
	assert.Contains(t, texto, "*VALOR TOTAL: R$ 380.00*")
}

func TestMensagemCustomHeader(t *testing.T) {
	cfg := sampleConfig()
	cfg.MensagemPadrao = &model.MensagemPadrao{
		Cabecalho: "Olá [NOME DO CLIENTE], aqui é [NOME DO PROFISSIONAL OU EMPRESA].",
	}

	texto := Mensagem(sampleQuote(), cfg)
	assert.True(t, strings.HasPrefix(texto, "*Olá Maria Souza, aqui é Pinturas Silva.*"))
}

func TestMensagemPagador(t *testing.T) {
	o := sampleQuote()
	o.PagadorDiferente = true
	o.Pagador = &model.Pagador{Nome: "José Souza", Telefone: "11 96666-3333", Relacao: "Pai"}

	texto := Mensagem(o, sampleConfig())
	assert.Contains(t, texto, "*PAGADOR*\nNome: José Souza\nTelefone: 11 96666-3333\nRelação: Pai")
}

func TestMensagemNilConfig(t *testing.T) {
	texto := Mensagem(sampleQuote(), nil)
	assert.Contains(t, texto, "*Prezado(a) Maria Souza")
	assert.NotContains(t, texto, "📞")
	assert.NotContains(t, texto, "CNPJ:")
}

func TestMensagemZeroTotalOmitsValueLine(t *testing.T) {
	o := sampleQuote()
	for ci := range o.Comodos {
		for ii := range o.Comodos[ci].Itens {
			o.Comodos[ci].Itens[ii].Valor = ""
		}
	}

	texto := Mensagem(o, sampleConfig())
	assert.NotContains(t, texto, "VALOR TOTAL")
}
