package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: tests load it via GetSchemaSQL() instead of hardcoding
// CREATE TABLE statements, and it must stay in sync with the migration list.
const SchemaSQL = `
-- Games (one row per completed game)
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	winner TEXT NOT NULL CHECK(winner IN ('good', 'evil')),
	victory_type TEXT NOT NULL CHECK(victory_type IN ('assassination', 'quest')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Role assignments (one row per player per game)
CREATE TABLE IF NOT EXISTS player_roles (
	game_id TEXT NOT NULL,
	name TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('assassin', 'merlin', 'minion', 'mordred', 'morgana', 'oberon', 'percival', 'reverseoberon', 'servant')),
	PRIMARY KEY (game_id, name),
	FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
);

-- Quests (position preserves play order within a game)
CREATE TABLE IF NOT EXISTS quests (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	fails INTEGER NOT NULL DEFAULT 0 CHECK(fails >= 0),
	status TEXT NOT NULL CHECK(status IN ('success', 'fail')),
	UNIQUE(game_id, position),
	FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
);

-- Quest participants (names reference the owning game's player set)
CREATE TABLE IF NOT EXISTS quest_participants (
	quest_id TEXT NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (quest_id, name),
	FOREIGN KEY (quest_id) REFERENCES quests(id) ON DELETE CASCADE
);
`

// InitSchema initializes the database schema. Fresh installs get the modern
// schema directly with every migration marked as applied; existing
// databases run any pending migrations instead.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	var versionTableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&versionTableCount)
	if err != nil {
		return err
	}

	if versionTableCount == 0 {
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
				return err
			}
		}
		return nil
	}

	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
