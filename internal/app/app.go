package app

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"

	"github.com/fsdevblog/groph-tales/internal/worker"

	"github.com/fsdevblog/groph-tales/pkg/uow"

	"github.com/fsdevblog/groph-tales/internal/config"
	"github.com/fsdevblog/groph-tales/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-tales/internal/service"
	"github.com/fsdevblog/groph-tales/internal/transport/api"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %+v", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	services, sErr := service.Factory(unitOfWork)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:         a.Logger,
		WalletService:  services.WalletService,
		UnlockService:  services.UnlockService,
		TopupService:   services.TopupService,
		StoryService:   services.StoryService,
		CatalogService: services.CatalogService,
		AuthorService:  services.AuthorService,
		TokenSecret:    []byte(a.Config.AuthTokenSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	expirer := worker.New(services.TopupService, a.Config.TopupPendingTTL, a.Logger)
	go expirer.Run(notifyCtx)

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	type registration struct {
		name    repoargs.RepositoryName
		factory uow.RepositoryFactory
	}

	registrations := []registration{
		{repoargs.WalletRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		}},
		{repoargs.LedgerRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLedgerRepository(dbtx)
		}},
		{repoargs.UnlockRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUnlockRepository(dbtx)
		}},
		{repoargs.TopupRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTopupRepository(dbtx)
		}},
		{repoargs.StoryRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewStoryRepository(dbtx)
		}},
		{repoargs.ChapterRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewChapterRepository(dbtx)
		}},
		{repoargs.LibraryRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLibraryRepository(dbtx)
		}},
		{repoargs.AuthorRequestRepoName, func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewAuthorRequestRepository(dbtx)
		}},
	}

	for _, reg := range registrations {
		if regErr := unitOfWork.Register(uow.RepositoryName(reg.name), reg.factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
