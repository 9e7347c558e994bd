// Package sync coordinates best-effort replication of local data to the
// remote store. The local store is always the source of truth; sync never
// blocks a save and failures only mean the record stays flagged as
// unsynced until the next opportunity.
package sync

import (
	"context"
	"sync"
	"time"

	waLog "go.mau.fi/whatsmeow/util/log"

	"github.com/maozinhaws/pintor-pro/internal/infra/config"
	"github.com/maozinhaws/pintor-pro/internal/model"
	"github.com/maozinhaws/pintor-pro/internal/remote"
	"github.com/maozinhaws/pintor-pro/internal/session"
	"github.com/maozinhaws/pintor-pro/internal/store"
	"github.com/maozinhaws/pintor-pro/internal/utils/retry"
)

// Coordinator watches saves, connectivity and sign-in and pushes pending
// records to the remote store whenever all three line up. Without an
// active session or connectivity it is inert.
type Coordinator struct {
	store   *store.Container
	remote  remote.Store
	session *session.Session
	cfg     config.SyncConfig
	log     waLog.Logger

	mu     sync.Mutex
	online bool
	// inflight maps quote id to the version currently being pushed, so a
	// save arriving mid-push doesn't spawn a second push for an older
	// version and catch-up doesn't double-push what a save just sent.
	inflight map[int64]int64

	wg sync.WaitGroup
}

// NewCoordinator creates a Coordinator. remote may be nil, in which case
// every trigger is a no-op.
func NewCoordinator(container *store.Container, rs remote.Store, sess *session.Session, cfg config.SyncConfig, log waLog.Logger) *Coordinator {
	return &Coordinator{
		store:    container,
		remote:   rs,
		session:  sess,
		cfg:      cfg,
		online:   cfg.AssumeOnline,
		log:      log.Sub("Sync"),
		inflight: make(map[int64]int64),
	}
}

// ready returns the signed-in account when sync can actually run.
func (c *Coordinator) ready() (string, bool) {
	if c.remote == nil {
		return "", false
	}
	c.mu.Lock()
	online := c.online
	c.mu.Unlock()
	if !online {
		return "", false
	}
	return c.session.AccountID()
}

// SetOnline feeds the connectivity signal. A transition from offline to
// online kicks off a catch-up pass in the background.
func (c *Coordinator) SetOnline(online bool) {
	c.mu.Lock()
	wasOnline := c.online
	c.online = online
	c.mu.Unlock()

	if online && !wasOnline {
		c.log.Infof("Connectivity restored")
		c.spawnCatchUp()
	}
}

// OnSignIn is called after a session opens. It bootstraps remote company
// configuration and pushes everything pending.
func (c *Coordinator) OnSignIn() {
	c.spawnCatchUp()
}

func (c *Coordinator) spawnCatchUp() {
	if _, ok := c.ready(); !ok {
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		c.BootstrapConfig(ctx)
		c.CatchUp(ctx)
	}()
}

// OnQuoteSaved pushes a freshly saved quote in the background. The save
// itself has already committed locally; this never reports back to the
// caller.
func (c *Coordinator) OnQuoteSaved(o *model.Orcamento) {
	accountID, ok := c.ready()
	if !ok {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		c.pushQuote(ctx, accountID, o, c.cfg.PushAttempts)
	}()
}

// OnClientCreated pushes a newly created client in the background.
// Create-only on the remote side, so duplicates can't happen on retry.
func (c *Coordinator) OnClientCreated(cl *model.Cliente) {
	accountID, ok := c.ready()
	if !ok {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := c.remote.PushClient(ctx, accountID, cl); err != nil {
			c.log.Warnf("Failed to push client %d: %v", cl.ID, err)
		}
	}()
}

// OnConfigSaved pushes the company profile in the background.
func (c *Coordinator) OnConfigSaved(cfg *model.ConfigEmpresa) {
	accountID, ok := c.ready()
	if !ok {
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := c.remote.PushConfig(ctx, accountID, cfg); err != nil {
			c.log.Warnf("Failed to push company config: %v", err)
		}
	}()
}

// CatchUp pushes every locally pending quote once, oldest first. Failures
// are logged and left pending for the next trigger.
func (c *Coordinator) CatchUp(ctx context.Context) {
	accountID, ok := c.ready()
	if !ok {
		return
	}

	pending, err := c.store.Orcamentos.ListUnsynced()
	if err != nil {
		c.log.Errorf("Failed to list pending quotes: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	c.log.Infof("Catching up %d pending quote(s)", len(pending))
	for _, o := range pending {
		if ctx.Err() != nil {
			return
		}
		c.pushQuote(ctx, accountID, o, 1)
	}
}

// BootstrapConfig pulls the company profile from the remote store when the
// local store has none yet. An existing local profile always wins.
func (c *Coordinator) BootstrapConfig(ctx context.Context) {
	accountID, ok := c.ready()
	if !ok {
		return
	}

	local, err := c.store.Config.Empresa()
	if err != nil {
		c.log.Warnf("Failed to read local company config: %v", err)
		return
	}
	if local != nil {
		return
	}

	remoteCfg, found, err := c.remote.GetConfig(ctx, accountID)
	if err != nil {
		c.log.Warnf("Failed to fetch remote company config: %v", err)
		return
	}
	if !found {
		return
	}

	if err := c.store.Config.SaveEmpresa(remoteCfg); err != nil {
		c.log.Warnf("Failed to store remote company config: %v", err)
		return
	}
	c.log.Infof("Bootstrapped company config from remote store")
}

// pushQuote pushes one quote and, on success, flags the exact version it
// pushed as synced. If a newer save happened in the meantime the flag is
// skipped and the quote stays pending.
func (c *Coordinator) pushQuote(ctx context.Context, accountID string, o *model.Orcamento, attempts int) {
	c.mu.Lock()
	if v, ok := c.inflight[o.ID]; ok && v >= o.Versao {
		c.mu.Unlock()
		return
	}
	c.inflight[o.ID] = o.Versao
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		if c.inflight[o.ID] == o.Versao {
			delete(c.inflight, o.ID)
		}
		c.mu.Unlock()
	}()

	err := retry.DoSimple(ctx, attempts, func() error {
		_, err := c.remote.PushQuote(ctx, accountID, o)
		return err
	})
	if err != nil {
		c.log.Warnf("Failed to push quote %d: %v", o.ID, err)
		return
	}

	flagged, err := c.store.Orcamentos.MarkSynced(o.ID, o.Versao)
	if err != nil {
		c.log.Errorf("Failed to flag quote %d as synced: %v", o.ID, err)
		return
	}
	if !flagged {
		c.log.Debugf("Quote %d changed during push, leaving it pending", o.ID)
		return
	}
	c.log.Debugf("Pushed quote %d (version %d)", o.ID, o.Versao)
}

// Wait blocks until every background push spawned so far has finished.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}
