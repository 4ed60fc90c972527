package app

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/householdhq/tasks-api/config"
	"github.com/householdhq/tasks-api/database"
	"github.com/householdhq/tasks-api/handlers"
	"github.com/householdhq/tasks-api/router"
	"github.com/householdhq/tasks-api/seed"
	"github.com/householdhq/tasks-api/services/tasks"
	"github.com/householdhq/tasks-api/storage/memstore"
	"github.com/householdhq/tasks-api/storage/mongostore"
)

// SetupAndRunApp handles app and storage start, seeding, and graceful
// shutdown. Seeding completes before the listener binds.
func SetupAndRunApp(port string) error {
	if err := config.LoadENV(); err != nil {
		return err
	}

	l := logrus.New()

	storage, cleanup, err := newStorage()
	if err != nil {
		return err
	}
	defer cleanup()

	if config.GetEnv("SKIP_SEED", "") == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err = seed.Run(ctx, storage, l); err != nil {
			return err
		}
	}

	service := tasks.New(storage)

	// create app
	app := fiber.New()

	// attach middleware
	FiberMiddleware(app)

	// setup routes
	router.SetupRoutes(app, handlers.NewHandler(service, l))

	// attach swagger
	config.AddSwaggerRoutes(app)

	StartServerWithGracefulShutdown(app, port)

	return nil
}

// newStorage picks the storage backend: MongoDB by default, in-memory when
// STORAGE=memory.
func newStorage() (tasks.Storage, func(), error) {
	if config.GetEnv("STORAGE", "mongo") == "memory" {
		return memstore.New(), func() {}, nil
	}

	if err := database.StartMongoDB(); err != nil {
		return nil, nil, err
	}
	store := mongostore.New(
		database.GetCollection(config.GetEnv("TASK_COLLECTION", "tasks")),
		database.GetCollection("counters"),
	)
	return store, database.CloseMongoDB, nil
}
