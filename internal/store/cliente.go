package store

import (
	"database/sql"
	"strings"
	"time"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// ClienteStore handles client persistence.
type ClienteStore struct {
	store *Store
}

// NewClienteStore creates a new ClienteStore.
func NewClienteStore(s *Store) *ClienteStore {
	return &ClienteStore{store: s}
}

// Save inserts the client when it has no id, otherwise updates it in place.
// DataCriacao is stamped on first save only. Returns the assigned id.
func (c *ClienteStore) Save(cl *model.Cliente) (int64, error) {
	if cl.DataCriacao.IsZero() {
		cl.DataCriacao = time.Now()
	}

	if cl.ID == 0 {
		res, err := c.store.Exec(`
			INSERT INTO pintor_clientes (
				nome, telefone, email, endereco, complemento,
				bairros_cidade_estado, cpf_cnpj, data_criacao
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, cl.Nome, cl.Telefone, nullString(cl.Email), cl.Endereco,
			nullString(cl.Complemento), cl.BairrosCidadeEstado,
			nullString(cl.CpfCnpj), cl.DataCriacao.Unix())
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		cl.ID = id
		return id, nil
	}

	_, err := c.store.Exec(`
		UPDATE pintor_clientes SET
			nome = ?, telefone = ?, email = ?, endereco = ?, complemento = ?,
			bairros_cidade_estado = ?, cpf_cnpj = ?
		WHERE id = ?
	`, cl.Nome, cl.Telefone, nullString(cl.Email), cl.Endereco,
		nullString(cl.Complemento), cl.BairrosCidadeEstado,
		nullString(cl.CpfCnpj), cl.ID)
	return cl.ID, err
}

// Get retrieves a client by id, or nil when absent.
func (c *ClienteStore) Get(id int64) (*model.Cliente, error) {
	row := c.store.QueryRow(selectCliente+` WHERE id = ?`, id)
	cl, err := scanCliente(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return cl, err
}

// FindByNome looks a client up by name, case-insensitively and ignoring
// surrounding whitespace. The comparison happens in Go because SQLite's
// NOCASE collation folds ASCII only and client names are routinely
// accented ("João" must match "JOÃO"). When several clients share a
// normalized name the earliest record is treated as canonical. Returns nil
// when no client matches.
func (c *ClienteStore) FindByNome(nome string) (*model.Cliente, error) {
	target := strings.ToLower(strings.TrimSpace(nome))
	if target == "" {
		return nil, nil
	}

	rows, err := c.store.Query(selectCliente + ` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		cl, err := scanCliente(rows.Scan)
		if err != nil {
			return nil, err
		}
		if strings.ToLower(strings.TrimSpace(cl.Nome)) == target {
			return cl, nil
		}
	}
	return nil, rows.Err()
}

// List returns all clients in alphabetical order.
func (c *ClienteStore) List() ([]*model.Cliente, error) {
	rows, err := c.store.Query(selectCliente + ` ORDER BY nome COLLATE NOCASE ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []*model.Cliente
	for rows.Next() {
		cl, err := scanCliente(rows.Scan)
		if err != nil {
			return nil, err
		}
		clients = append(clients, cl)
	}
	return clients, rows.Err()
}

// Delete removes a client.
func (c *ClienteStore) Delete(id int64) error {
	_, err := c.store.Exec(`DELETE FROM pintor_clientes WHERE id = ?`, id)
	return err
}

const selectCliente = `
	SELECT id, nome, telefone, email, endereco, complemento,
		bairros_cidade_estado, cpf_cnpj, data_criacao
	FROM pintor_clientes`

func scanCliente(scan func(...interface{}) error) (*model.Cliente, error) {
	var cl model.Cliente
	var email, complemento, cpfCnpj sql.NullString
	var criacao int64

	err := scan(&cl.ID, &cl.Nome, &cl.Telefone, &email, &cl.Endereco,
		&complemento, &cl.BairrosCidadeEstado, &cpfCnpj, &criacao)
	if err != nil {
		return nil, err
	}

	cl.Email = email.String
	cl.Complemento = complemento.String
	cl.CpfCnpj = cpfCnpj.String
	cl.DataCriacao = time.Unix(criacao, 0)
	return &cl, nil
}
