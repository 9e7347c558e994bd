package store

import (
	"database/sql"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// AgendaStore handles calendar event persistence. Events reference quotes by
// id only; the reference is for lookup, not ownership, and may dangle after
// the quote is deleted.
type AgendaStore struct {
	store *Store
}

// NewAgendaStore creates a new AgendaStore.
func NewAgendaStore(s *Store) *AgendaStore {
	return &AgendaStore{store: s}
}

// Save inserts the event when it has no id, otherwise updates it in place.
func (a *AgendaStore) Save(e *model.EventoAgenda) (int64, error) {
	if e.ID == 0 {
		res, err := a.store.Exec(`
			INSERT INTO pintor_agenda (orcamento_id, data_inicio, titulo, bairro, telefone_cliente)
			VALUES (?, ?, ?, ?, ?)
		`, e.OrcamentoID, nullTime(e.DataInicio), e.Titulo, e.Bairro, e.TelefoneCliente)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		e.ID = id
		return id, nil
	}

	_, err := a.store.Exec(`
		UPDATE pintor_agenda SET
			orcamento_id = ?, data_inicio = ?, titulo = ?, bairro = ?, telefone_cliente = ?
		WHERE id = ?
	`, e.OrcamentoID, nullTime(e.DataInicio), e.Titulo, e.Bairro, e.TelefoneCliente, e.ID)
	return e.ID, err
}

// List returns all events ordered by start date, undated events last.
func (a *AgendaStore) List() ([]*model.EventoAgenda, error) {
	return a.list(`
		SELECT id, orcamento_id, data_inicio, titulo, bairro, telefone_cliente
		FROM pintor_agenda
		ORDER BY data_inicio IS NULL, data_inicio ASC, id ASC
	`)
}

// ListByOrcamento returns the events linked to a quote.
func (a *AgendaStore) ListByOrcamento(orcamentoID int64) ([]*model.EventoAgenda, error) {
	return a.list(`
		SELECT id, orcamento_id, data_inicio, titulo, bairro, telefone_cliente
		FROM pintor_agenda
		WHERE orcamento_id = ?
		ORDER BY data_inicio IS NULL, data_inicio ASC, id ASC
	`, orcamentoID)
}

// Delete removes an event.
func (a *AgendaStore) Delete(id int64) error {
	_, err := a.store.Exec(`DELETE FROM pintor_agenda WHERE id = ?`, id)
	return err
}

func (a *AgendaStore) list(query string, args ...interface{}) ([]*model.EventoAgenda, error) {
	rows, err := a.store.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*model.EventoAgenda
	for rows.Next() {
		var e model.EventoAgenda
		var inicio sql.NullInt64
		if err := rows.Scan(&e.ID, &e.OrcamentoID, &inicio, &e.Titulo, &e.Bairro, &e.TelefoneCliente); err != nil {
			return nil, err
		}
		e.DataInicio = timePtr(inicio)
		events = append(events, &e)
	}
	return events, rows.Err()
}
