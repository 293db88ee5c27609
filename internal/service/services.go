package service

import (
	"github.com/morshues/msync/internal/adapter"
	"github.com/morshues/msync/internal/config"
	"github.com/morshues/msync/internal/logger"
	"github.com/morshues/msync/internal/store"
	"github.com/morshues/msync/models"
)

// Services groups the sync engine's components, fully wired.
type Services struct {
	TokenService  TokenService
	LocalFiles    LocalFileService
	Scanner       ScannerService
	Dispatcher    DispatcherService
	Enqueuer      Enqueuer
	Executor      TransferExecutor
	Cleanup       CleanupService
	Settings      SettingsService
	ServerAdapter adapter.ServerAdapter
}

// NewServices wires the engine. Construction order matters: the token service
// and the adapter reference each other, and the enqueuer needs an executor
// that needs the adapter, so both cycles are closed with late binding.
func NewServices(
	cfg *config.StructuredConfig,
	storages *store.Storages,
	network NetworkChecker,
	media MediaScanner,
	log *logger.Logger,
) (*Services, error) {
	tokenSvc := NewTokenService(storages.SessionRepository, log)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Server, tokenSvc, log)
	if err != nil {
		return nil, err
	}
	tokenSvc.SetAuthAPI(serverAdapter)

	if network == nil {
		network = NewAlwaysAllowedNetwork()
	}

	localFiles := NewLocalFileService(media, log)
	executor := NewTransferExecutor(storages.TaskRepository, serverAdapter, localFiles, log)
	enq := NewEnqueuer(storages.TaskRepository, func() TransferExecutor { return executor }, log)

	mode, err := models.ParseSyncMode(cfg.Sync.Mode)
	if err != nil {
		return nil, err
	}

	settings := NewSettingsService(
		storages.TaskRepository,
		storages.FolderRepository,
		enq,
		mode,
		models.NetworkType(cfg.Sync.NetworkType),
		log,
	)

	scanner := NewScannerService(
		storages.TaskRepository,
		storages.FolderRepository,
		localFiles,
		serverAdapter,
		settings,
		log,
	)

	dispatcher := NewDispatcherService(
		storages.TaskRepository,
		enq,
		settings,
		network,
		cfg.Sync.MaxConcurrent,
		cfg.Workers.DispatchPoll,
		log,
	)

	// the dispatch trigger is attached by the worker layer, which owns the
	// scheduling channel
	settings.Bind(scanner, nil)

	return &Services{
		TokenService:  tokenSvc,
		LocalFiles:    localFiles,
		Scanner:       scanner,
		Dispatcher:    dispatcher,
		Enqueuer:      enq,
		Executor:      executor,
		Cleanup:       NewCleanupService(storages.TaskRepository, log),
		Settings:      settings,
		ServerAdapter: serverAdapter,
	}, nil
}

// BindDispatchTrigger lets the worker layer attach the function that requests
// an immediate dispatch run after folder or mode changes.
func (s *Services) BindDispatchTrigger(trigger func()) {
	if binder, ok := s.Settings.(*SettingsBinder); ok {
		binder.Bind(s.Scanner, trigger)
	}
}
