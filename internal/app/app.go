// Package app wires configuration, storage, and services together.
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/kingvictorvector/portfolio-note-generator/internal/common"
	"github.com/kingvictorvector/portfolio-note-generator/internal/interfaces"
	"github.com/kingvictorvector/portfolio-note-generator/internal/services/note"
	"github.com/kingvictorvector/portfolio-note-generator/internal/storage"
)

// App holds all initialized services and shared state for the server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Store       interfaces.TemplateStore
	NoteService interfaces.NoteService
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes config, logging, the template store, and the note
// service. configPath may be empty, in which case the default resolution
// logic is used.
func NewApp(configPath string) (*App, error) {
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("NOTEGEN_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "notegen.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/notegen.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	// Resolve relative data path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	store, err := storage.NewFileStore(logger, &config.Storage)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:      config,
		Logger:      logger,
		Store:       store,
		NoteService: note.NewService(store, logger),
		StartupTime: time.Now(),
	}, nil
}

// Close releases app resources. The file store holds no open handles,
// so this only logs shutdown.
func (a *App) Close() {
	a.Logger.Debug().Msg("App closed")
}
