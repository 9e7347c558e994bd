// Package quoting implements the save flow around quotes: totals are
// stamped, clients are deduplicated into the client book and the sync
// coordinator is nudged afterwards.
package quoting

import (
	"fmt"
	"strings"

	waLog "go.mau.fi/whatsmeow/util/log"

	"github.com/maozinhaws/pintor-pro/internal/engine"
	"github.com/maozinhaws/pintor-pro/internal/model"
	"github.com/maozinhaws/pintor-pro/internal/store"
	syncsvc "github.com/maozinhaws/pintor-pro/internal/sync"
)

// Service wraps the local store with the quote save flow.
type Service struct {
	store *store.Container
	coord *syncsvc.Coordinator
	log   waLog.Logger
}

// NewService creates a Service. coord may be nil for a purely local setup.
func NewService(container *store.Container, coord *syncsvc.Coordinator, log waLog.Logger) *Service {
	return &Service{
		store: container,
		coord: coord,
		log:   log.Sub("Quoting"),
	}
}

// SaveOrcamento persists the quote locally and returns its id. The stored
// totals are recomputed from the rooms and items, never trusted from the
// caller. When the quote names a client not yet in the client book, the
// client is created first; a client book failure aborts the whole save.
// The remote push afterwards is fire-and-forget.
func (s *Service) SaveOrcamento(o *model.Orcamento) (int64, error) {
	o.AreaTotal = engine.TotalArea(o)
	o.ValorTotal = engine.TotalValue(o)

	newClient, err := s.ensureCliente(o)
	if err != nil {
		return 0, err
	}

	id, err := s.store.Orcamentos.Save(o)
	if err != nil {
		return 0, err
	}

	saved, err := s.store.Orcamentos.Get(id)
	if err != nil {
		return 0, err
	}
	*o = *saved

	if s.coord != nil {
		if newClient != nil {
			s.coord.OnClientCreated(newClient)
		}
		s.coord.OnQuoteSaved(saved)
	}
	return id, nil
}

// ensureCliente adds the quote's client to the client book when no client
// with the same name exists yet. Matching is case-insensitive on the
// trimmed name and the first match wins; existing entries are never
// updated from quote data. Returns the created client, or nil when none
// was created.
func (s *Service) ensureCliente(o *model.Orcamento) (*model.Cliente, error) {
	nome := strings.TrimSpace(o.Cliente.Nome)
	if nome == "" {
		return nil, nil
	}

	existing, err := s.store.Clientes.FindByNome(nome)
	if err != nil {
		return nil, fmt.Errorf("failed to look up client %q: %w", nome, err)
	}
	if existing != nil {
		return nil, nil
	}

	cl := o.Cliente
	cl.ID = 0
	id, err := s.store.Clientes.Save(&cl)
	if err != nil {
		return nil, fmt.Errorf("failed to create client %q: %w", nome, err)
	}
	cl.ID = id
	s.log.Infof("Created client %q from quote", nome)
	return &cl, nil
}

// SaveEmpresa stores the company profile and pushes it remotely.
func (s *Service) SaveEmpresa(cfg *model.ConfigEmpresa) error {
	if err := s.store.Config.SaveEmpresa(cfg); err != nil {
		return err
	}
	if s.coord != nil {
		s.coord.OnConfigSaved(cfg)
	}
	return nil
}

// PendingData reports whether the quote's client record is still missing
// contact or address fields the painter will need before the job starts.
func (s *Service) PendingData(o *model.Orcamento) bool {
	return engine.HasMissingClientData(o)
}
