// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema. Do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tanaythan/avalon-tracker/internal/core/game"
	"github.com/tanaythan/avalon-tracker/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// fivePlayerGame builds the canonical test game: evil wins by
// assassination.
func fivePlayerGame(t *testing.T) *game.Game {
	t.Helper()
	g, err := game.NewGame(
		map[string]game.Role{
			"player1": game.RoleMerlin,
			"player2": game.RoleMorgana,
			"player3": game.RolePercival,
			"player4": game.RoleServant,
			"player5": game.RoleAssassin,
		},
		[]game.Quest{
			{Status: game.QuestSuccess, Fails: 0, Participants: []string{"player1", "player2"}},
			{Status: game.QuestFail, Fails: 1, Participants: []string{"player1", "player2", "player4"}},
			{Status: game.QuestFail, Fails: 2, Participants: []string{"player2", "player4", "player5"}},
		},
		game.EndResult{Winner: game.AlignmentEvil, Type: game.VictoryAssassination},
	)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}
