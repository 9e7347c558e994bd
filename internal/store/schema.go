package store

// migrations holds the schema, one entry per version. Entry N upgrades a
// database at user_version N to N+1. Only append; never edit a shipped entry.
//
// Tables:
//   - pintor_orcamentos - quote aggregates (indexed columns + JSON payload)
//   - pintor_clientes   - client records
//   - pintor_config     - key/value configuration ("empresa")
//   - pintor_agenda     - calendar events weakly referencing quotes
//
// Quotes are nested aggregates (rooms owning items), so the full document
// lives in a JSON payload column while the fields the UI filters and sorts
// on are mirrored into indexed columns at write time.
var migrations = []string{`
CREATE TABLE IF NOT EXISTS pintor_orcamentos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    cliente_nome TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'PENDENTE',
    data_criacao INTEGER NOT NULL,
    data_modificacao INTEGER NOT NULL,
    data_previsao_inicio INTEGER,
    sincronizado INTEGER NOT NULL DEFAULT 0,
    versao INTEGER NOT NULL DEFAULT 1,
    payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pintor_orcamentos_cliente ON pintor_orcamentos(cliente_nome);
CREATE INDEX IF NOT EXISTS idx_pintor_orcamentos_status ON pintor_orcamentos(status);
CREATE INDEX IF NOT EXISTS idx_pintor_orcamentos_criacao ON pintor_orcamentos(data_criacao);
CREATE INDEX IF NOT EXISTS idx_pintor_orcamentos_previsao ON pintor_orcamentos(data_previsao_inicio);
CREATE INDEX IF NOT EXISTS idx_pintor_orcamentos_sync ON pintor_orcamentos(sincronizado) WHERE sincronizado = 0;

CREATE TABLE IF NOT EXISTS pintor_clientes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL,
    telefone TEXT NOT NULL DEFAULT '',
    email TEXT,
    endereco TEXT NOT NULL DEFAULT '',
    complemento TEXT,
    bairros_cidade_estado TEXT NOT NULL DEFAULT '',
    cpf_cnpj TEXT,
    data_criacao INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pintor_clientes_nome ON pintor_clientes(nome COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_pintor_clientes_telefone ON pintor_clientes(telefone);
CREATE INDEX IF NOT EXISTS idx_pintor_clientes_email ON pintor_clientes(email);

CREATE TABLE IF NOT EXISTS pintor_config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS pintor_agenda (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    orcamento_id INTEGER NOT NULL,
    data_inicio INTEGER,
    titulo TEXT NOT NULL DEFAULT '',
    bairro TEXT NOT NULL DEFAULT '',
    telefone_cliente TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_pintor_agenda_orcamento ON pintor_agenda(orcamento_id);
CREATE INDEX IF NOT EXISTS idx_pintor_agenda_inicio ON pintor_agenda(data_inicio);
`}
