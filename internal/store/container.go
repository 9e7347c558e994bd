package store

// Container provides unified access to all entity stores.
type Container struct {
	Store *Store

	Orcamentos *OrcamentoStore
	Clientes   *ClienteStore
	Config     *ConfigStore
	Agenda     *AgendaStore
}

// NewContainer creates a Container with all sub-stores initialized.
func NewContainer(s *Store) *Container {
	return &Container{
		Store:      s,
		Orcamentos: NewOrcamentoStore(s),
		Clientes:   NewClienteStore(s),
		Config:     NewConfigStore(s),
		Agenda:     NewAgendaStore(s),
	}
}

// Close closes the underlying store.
func (c *Container) Close() error {
	return c.Store.Close()
}

// Stats returns current entity counts.
type Stats struct {
	Orcamentos int
	Clientes   int
	Eventos    int
}

// GetStats returns how many records each collection holds.
func (c *Container) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := c.Store.QueryRow(`SELECT COUNT(*) FROM pintor_orcamentos`).Scan(&stats.Orcamentos); err != nil {
		return nil, err
	}
	if err := c.Store.QueryRow(`SELECT COUNT(*) FROM pintor_clientes`).Scan(&stats.Clientes); err != nil {
		return nil, err
	}
	if err := c.Store.QueryRow(`SELECT COUNT(*) FROM pintor_agenda`).Scan(&stats.Eventos); err != nil {
		return nil, err
	}

	return stats, nil
}
