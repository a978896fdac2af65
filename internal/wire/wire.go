// Package wire provides dependency injection for the tracker.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/tanaythan/avalon-tracker/internal/adapters/cli"
	"github.com/tanaythan/avalon-tracker/internal/adapters/sqlite"
	"github.com/tanaythan/avalon-tracker/internal/app"
	"github.com/tanaythan/avalon-tracker/internal/db"
	"github.com/tanaythan/avalon-tracker/internal/ports/primary"
)

var (
	gameService primary.GameService
	once        sync.Once
)

// GameService returns the singleton GameService instance.
func GameService() primary.GameService {
	once.Do(initServices)
	return gameService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	gameRepo := sqlite.NewGameRepository(database)
	gameService = app.NewGameService(gameRepo)
}

// GameAdapter returns a new GameAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GameAdapter() *cliadapter.GameAdapter {
	return GameAdapterWithOutput(os.Stdout)
}

// GameAdapterWithOutput returns a new GameAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func GameAdapterWithOutput(out io.Writer) *cliadapter.GameAdapter {
	once.Do(initServices)
	return cliadapter.NewGameAdapter(gameService, out)
}

// StandingsAdapter returns a new StandingsAdapter writing to stdout.
func StandingsAdapter() *cliadapter.StandingsAdapter {
	return StandingsAdapterWithOutput(os.Stdout)
}

// StandingsAdapterWithOutput returns a new StandingsAdapter writing to the given output.
func StandingsAdapterWithOutput(out io.Writer) *cliadapter.StandingsAdapter {
	once.Do(initServices)
	return cliadapter.NewStandingsAdapter(gameService, out)
}
