// Package model defines the domain entities of the quoting tool: quotes
// (orçamentos) composed of rooms (cômodos) and priced items, the clients they
// belong to, calendar events and the per-account company configuration.
//
// Field names keep the Portuguese register used throughout the product; JSON
// tags match the persisted document shape so local payloads and remote
// documents stay interchangeable.
package model

import "time"

// StatusOrcamento is the user-settable lifecycle state of a quote.
// There is no enforced transition graph; any value may be set at any time.
type StatusOrcamento string

const (
	StatusPendente            StatusOrcamento = "PENDENTE"
	StatusEmAberto            StatusOrcamento = "EM_ABERTO"
	StatusEnviado             StatusOrcamento = "ENVIADO"
	StatusAguardandoAprovacao StatusOrcamento = "AGUARDANDO_APROVACAO"
	StatusAprovado            StatusOrcamento = "APROVADO"
	StatusCancelado           StatusOrcamento = "CANCELADO"
	StatusObraIniciada        StatusOrcamento = "OBRA_INICIADA"
	StatusObraFinalizada      StatusOrcamento = "OBRA_FINALIZADA"
	StatusFinalizado          StatusOrcamento = "FINALIZADO"
)

// FormatoOrcamento selects how much detail the exported quote shows.
type FormatoOrcamento string

const (
	FormatoCompleto FormatoOrcamento = "completo" // measurements, areas and values
	FormatoM2       FormatoOrcamento = "m2"       // areas and values, no measurements
	FormatoValor    FormatoOrcamento = "valor"    // totals only, no per-item values
)

// Cliente is a client record. Identity is the local surrogate id once
// persisted; before that, clients are matched by normalized name.
type Cliente struct {
	ID                  int64     `json:"id,omitempty"`
	Nome                string    `json:"nome"`
	Telefone            string    `json:"telefone"`
	Email               string    `json:"email,omitempty"`
	Endereco            string    `json:"endereco"`
	Complemento         string    `json:"complemento,omitempty"`
	BairrosCidadeEstado string    `json:"bairrosCidadeEstado"`
	CpfCnpj             string    `json:"cpfCnpj,omitempty"`
	DataCriacao         time.Time `json:"dataCriacao,omitzero"`
}

// Pagador is the payer of a quote when it differs from the client.
// Embedded in the quote, never a standalone record.
type Pagador struct {
	Nome                string `json:"nome"`
	Telefone            string `json:"telefone"`
	Email               string `json:"email,omitempty"`
	Endereco            string `json:"endereco"`
	Complemento         string `json:"complemento,omitempty"`
	BairrosCidadeEstado string `json:"bairrosCidadeEstado"`
	CpfCnpj             string `json:"cpfCnpj,omitempty"`
	Relacao             string `json:"relacao"`
}

// ItemOrcamento is a single priced unit of work within a room (one wall, one
// surface). Base and Altura are numeric strings as typed by the user; blank or
// malformed values count as zero.
type ItemOrcamento struct {
	Nome           string   `json:"nome"`
	Descricao      string   `json:"descricao"`
	Base           string   `json:"base"`
	Altura         string   `json:"altura"`
	UsarPadrao     bool     `json:"usarPadrao"`
	Servicos       []string `json:"servicos"`
	Valor          string   `json:"valor"`
	CobrarPorMetro bool     `json:"cobrarPorMetro,omitempty"`
	FotoAntes      string   `json:"fotoAntes,omitempty"`
	FotoDepois     string   `json:"fotoDepois,omitempty"`

	// IncluirNoCalculo defaults to true when absent; only an explicit false
	// excludes the item from area totals.
	IncluirNoCalculo *bool `json:"incluirNoCalculo,omitempty"`

	// MetroLinear is an informational hint only. Whether an item is priced
	// per linear meter is inferred from which dimensions are filled in
	// (engine.IsLinear), never from this flag.
	MetroLinear bool `json:"metroLinear,omitempty"`
}

// Incluido reports whether the item participates in area totals.
func (i *ItemOrcamento) Incluido() bool {
	return i.IncluirNoCalculo == nil || *i.IncluirNoCalculo
}

// Medidas holds the declared dimensions of a room, in meters.
type Medidas struct {
	Altura      float64 `json:"altura"`
	Largura     float64 `json:"largura"`
	Comprimento float64 `json:"comprimento"`
}

// Comodo is a physical space within a quote. Its item list is owned
// exclusively by the room; items never outlive it.
type Comodo struct {
	Nome           string          `json:"nome"`
	Observacoes    string          `json:"observacoes,omitempty"`
	Servicos       []string        `json:"servicos,omitempty"`
	Valor          string          `json:"valor,omitempty"`
	CobrarPorMetro bool            `json:"cobrarPorMetro,omitempty"`
	Itens          []ItemOrcamento `json:"itens"`
	FotosAntes     []string        `json:"fotosAntes"`
	FotosDepois    []string        `json:"fotosDepois"`
	Medidas        Medidas         `json:"medidas"`
}

// Orcamento is the aggregate root: a client-facing price proposal.
type Orcamento struct {
	ID               int64            `json:"id,omitempty"`
	Cliente          Cliente          `json:"cliente"`
	PagadorDiferente bool             `json:"pagadorDiferente"`
	Pagador          *Pagador         `json:"pagador,omitempty"`
	Comodos          []Comodo         `json:"comodos"`
	FormasPagamento  []string         `json:"formasPagamento"`
	Observacoes      string           `json:"observacoes"`
	Formato          FormatoOrcamento `json:"formatoOrcamento"`
	Status           StatusOrcamento  `json:"status"`

	// Validade is the offer validity in days.
	Validade           int        `json:"validade"`
	DataPrevisaoInicio *time.Time `json:"dataPrevisaoInicio,omitempty"`

	// AreaTotal and ValorTotal are denormalized, recomputed from the rooms
	// and items on every save. Stored values are never trusted as inputs.
	AreaTotal  float64 `json:"areaTotal"`
	ValorTotal float64 `json:"valorTotal"`

	// DataCriacao is stamped at first save and immutable afterwards;
	// DataModificacao advances on every save.
	DataCriacao     time.Time `json:"dataCriacao,omitzero"`
	DataModificacao time.Time `json:"dataModificacao,omitzero"`

	// Sincronizado is true only while the last locally saved state has been
	// mirrored to the remote store. Any local save resets it.
	Sincronizado bool `json:"sincronizado,omitempty"`

	// Versao is a per-save monotonic counter maintained by the local store.
	// The sync coordinator compares it before marking a quote synced, so a
	// stale in-flight push can never flag a newer edit. Not part of the
	// exported document.
	Versao int64 `json:"-"`
}

// EventoAgenda is a calendar entry weakly referencing a quote. Deleting the
// quote leaves the reference dangling; readers treat a missing quote as
// "no longer linked".
type EventoAgenda struct {
	ID              int64      `json:"id,omitempty"`
	OrcamentoID     int64      `json:"orcamentoId"`
	DataInicio      *time.Time `json:"dataInicio,omitempty"`
	Titulo          string     `json:"titulo"`
	Bairro          string     `json:"bairro"`
	TelefoneCliente string     `json:"telefoneCliente"`
}

// RedesSociais holds the company's social media handles.
type RedesSociais struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Whatsapp  string `json:"whatsapp,omitempty"`
}

// MensagemPadrao is the header/footer template pair used by the message
// formatter. The header may carry the [NOME DO CLIENTE],
// [NOME DO PROFISSIONAL OU EMPRESA] and [DATA DE ABERTURA] placeholders.
type MensagemPadrao struct {
	Cabecalho string `json:"cabecalho"`
	Rodape    string `json:"rodape"`
}

// ConfigEmpresa is the per-account company configuration, stored as a
// singleton under the "empresa" config key.
type ConfigEmpresa struct {
	Nome           string          `json:"nome"`
	Telefone       string          `json:"telefone"`
	Email          string          `json:"email"`
	Endereco       string          `json:"endereco"`
	Cnpj           string          `json:"cnpj"`
	Logo           string          `json:"logo,omitempty"`
	RedesSociais   *RedesSociais   `json:"redesSociais,omitempty"`
	MensagemPadrao *MensagemPadrao `json:"mensagemPadrao,omitempty"`
}
