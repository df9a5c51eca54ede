// ABOUTME: SQLite database schema for coaching memory storage
// ABOUTME: Creates all tables and indexes for memories, summaries, and triggers
package storage

// Schema contains all SQL statements for database initialization
const Schema = `
-- Conversation memories (soft-deleted via is_active, never dropped)
CREATE TABLE IF NOT EXISTS conversation_memories (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    session_id TEXT,
    memory_type TEXT NOT NULL,
    memory_text TEXT NOT NULL,
    embedding BLOB,
    source_excerpt TEXT,
    frameworks TEXT,
    issues TEXT,
    primary_affect TEXT,
    affect_intensity REAL DEFAULT 0,
    importance_score REAL NOT NULL DEFAULT 0.5,
    is_active INTEGER NOT NULL DEFAULT 1,
    superseded_by TEXT,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Session summaries (one row per closed session)
CREATE TABLE IF NOT EXISTS session_summaries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    session_id TEXT,
    session_number INTEGER NOT NULL,
    topics TEXT,
    techniques TEXT,
    homework TEXT,
    affect_trajectory TEXT,
    triage_colors TEXT,
    breakthrough TEXT,
    message_count INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Cross-pillar trigger rows (queryable, toggled via is_active)
CREATE TABLE IF NOT EXISTS cross_pillar_triggers (
    id TEXT PRIMARY KEY,
    keywords TEXT NOT NULL,
    affected_pillars TEXT NOT NULL,
    presenting_symptom TEXT,
    root_cause TEXT,
    recommended_domains TEXT,
    is_active INTEGER NOT NULL DEFAULT 1
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_memories_user ON conversation_memories(user_id, is_active);
CREATE INDEX IF NOT EXISTS idx_memories_created ON conversation_memories(created_at);
CREATE INDEX IF NOT EXISTS idx_memories_session ON conversation_memories(session_id);
CREATE INDEX IF NOT EXISTS idx_summaries_user ON session_summaries(user_id, session_number);
CREATE INDEX IF NOT EXISTS idx_triggers_active ON cross_pillar_triggers(is_active);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
