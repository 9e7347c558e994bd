package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// OrcamentoStore handles quote persistence.
//
// A quote is a nested aggregate, so the full document is stored as a JSON
// payload; the columns the UI filters and sorts on (client name, status,
// creation date, planned start) are mirrored from the document on every
// write. The sincronizado flag and the per-save versao counter live only in
// columns: they are local bookkeeping, not part of the document.
type OrcamentoStore struct {
	store *Store
}

// NewOrcamentoStore creates a new OrcamentoStore.
func NewOrcamentoStore(s *Store) *OrcamentoStore {
	return &OrcamentoStore{store: s}
}

// Save inserts the quote when it has no id, otherwise updates it in place.
// First save stamps DataCriacao; DataCriacao is immutable afterwards (the
// stored value wins over whatever the caller passes). Every save advances
// DataModificacao, bumps the version counter and resets the synced flag.
// The quote is mutated: id, timestamps, version and synced flag reflect the
// persisted state on return.
func (s *OrcamentoStore) Save(o *model.Orcamento) (int64, error) {
	now := time.Now()
	o.DataModificacao = now
	o.Sincronizado = false

	if o.ID == 0 {
		o.DataCriacao = now
		o.Versao = 1

		payload, err := json.Marshal(o)
		if err != nil {
			return 0, fmt.Errorf("failed to encode quote: %w", err)
		}

		res, err := s.store.Exec(`
			INSERT INTO pintor_orcamentos (
				cliente_nome, status, data_criacao, data_modificacao,
				data_previsao_inicio, sincronizado, versao, payload
			) VALUES (?, ?, ?, ?, ?, 0, 1, ?)
		`, o.Cliente.Nome, string(o.Status), now.Unix(), now.Unix(),
			nullTime(o.DataPrevisaoInicio), string(payload))
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		o.ID = id
		return id, nil
	}

	existing, err := s.Get(o.ID)
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, fmt.Errorf("quote %d not found", o.ID)
	}
	o.DataCriacao = existing.DataCriacao
	o.Versao = existing.Versao + 1

	payload, err := json.Marshal(o)
	if err != nil {
		return 0, fmt.Errorf("failed to encode quote: %w", err)
	}

	_, err = s.store.Exec(`
		UPDATE pintor_orcamentos SET
			cliente_nome = ?, status = ?, data_modificacao = ?,
			data_previsao_inicio = ?, sincronizado = 0, versao = ?, payload = ?
		WHERE id = ?
	`, o.Cliente.Nome, string(o.Status), now.Unix(),
		nullTime(o.DataPrevisaoInicio), o.Versao, string(payload), o.ID)
	if err != nil {
		return 0, err
	}
	return o.ID, nil
}

// MarkSynced flags the quote as mirrored to the remote store, but only if it
// has not been saved again since the push started: the update is conditional
// on the version the pusher read. Returns false when a newer save superseded
// the push, in which case the quote stays unsynced and will be retried.
func (s *OrcamentoStore) MarkSynced(id, versao int64) (bool, error) {
	res, err := s.store.Exec(`
		UPDATE pintor_orcamentos SET sincronizado = 1 WHERE id = ? AND versao = ?
	`, id, versao)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Get retrieves a quote by id, or nil when absent.
func (s *OrcamentoStore) Get(id int64) (*model.Orcamento, error) {
	row := s.store.QueryRow(`
		SELECT id, sincronizado, versao, payload FROM pintor_orcamentos WHERE id = ?
	`, id)

	o, err := scanOrcamento(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return o, err
}

// List returns all quotes, most recently created first.
func (s *OrcamentoStore) List() ([]*model.Orcamento, error) {
	return s.list(`
		SELECT id, sincronizado, versao, payload FROM pintor_orcamentos
		ORDER BY data_criacao DESC, id DESC
	`)
}

// ListUnsynced returns the quotes whose last saved state has not been pushed
// to the remote store, oldest first so catch-up replays them in save order.
func (s *OrcamentoStore) ListUnsynced() ([]*model.Orcamento, error) {
	return s.list(`
		SELECT id, sincronizado, versao, payload FROM pintor_orcamentos
		WHERE sincronizado = 0
		ORDER BY data_modificacao ASC, id ASC
	`)
}

// ListByStatus returns the quotes in the given lifecycle state, most recently
// created first.
func (s *OrcamentoStore) ListByStatus(status model.StatusOrcamento) ([]*model.Orcamento, error) {
	return s.list(`
		SELECT id, sincronizado, versao, payload FROM pintor_orcamentos
		WHERE status = ?
		ORDER BY data_criacao DESC, id DESC
	`, string(status))
}

// Delete removes a quote unconditionally. Calendar events referencing it are
// not cascade-deleted; their reference simply dangles.
func (s *OrcamentoStore) Delete(id int64) error {
	_, err := s.store.Exec(`DELETE FROM pintor_orcamentos WHERE id = ?`, id)
	return err
}

// Search returns the quotes matching term (case-insensitive substring) in the
// client name, the client's neighborhood/city/state field, the quote-level
// observations, or any room's name or observations.
func (s *OrcamentoStore) Search(term string) ([]*model.Orcamento, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	var matched []*model.Orcamento
	for _, o := range all {
		if MatchesTerm(o, term) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// MatchesTerm reports whether the quote matches a search term in any of the
// searched fields. Exposed so callers filtering an already loaded list reuse
// the same predicate.
func MatchesTerm(o *model.Orcamento, term string) bool {
	term = strings.ToLower(term)
	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), term)
	}

	if contains(o.Cliente.Nome) || contains(o.Cliente.BairrosCidadeEstado) || contains(o.Observacoes) {
		return true
	}
	for i := range o.Comodos {
		if contains(o.Comodos[i].Nome) || contains(o.Comodos[i].Observacoes) {
			return true
		}
	}
	return false
}

func (s *OrcamentoStore) list(query string, args ...interface{}) ([]*model.Orcamento, error) {
	rows, err := s.store.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []*model.Orcamento
	for rows.Next() {
		o, err := scanOrcamento(rows.Scan)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, o)
	}
	return quotes, rows.Err()
}

func scanOrcamento(scan func(...interface{}) error) (*model.Orcamento, error) {
	var id, versao int64
	var sincronizado int
	var payload string

	if err := scan(&id, &sincronizado, &versao, &payload); err != nil {
		return nil, err
	}

	var o model.Orcamento
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		return nil, fmt.Errorf("failed to decode quote %d: %w", id, err)
	}
	o.ID = id
	o.Sincronizado = sincronizado == 1
	o.Versao = versao
	return &o, nil
}
