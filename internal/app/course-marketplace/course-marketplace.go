// Package coursemarketplace собирает и запускает основное приложение
// торговой площадки курсов: хранилище, кеш, брокер событий, сервисы
// и HTTP-сервер с маршрутами.
package coursemarketplace

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/course-marketplace/internal/cache"
	"github.com/magabrotheeeer/course-marketplace/internal/config"
	"github.com/magabrotheeeer/course-marketplace/internal/lib/jwt"
	"github.com/magabrotheeeer/course-marketplace/internal/metrics"
	"github.com/magabrotheeeer/course-marketplace/internal/migrations"
	"github.com/magabrotheeeer/course-marketplace/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/course-marketplace/internal/services/auth"
	courseservice "github.com/magabrotheeeer/course-marketplace/internal/services/course"
	enrollmentservice "github.com/magabrotheeeer/course-marketplace/internal/services/enrollment"
	lessonservice "github.com/magabrotheeeer/course-marketplace/internal/services/lesson"
	paymentservice "github.com/magabrotheeeer/course-marketplace/internal/services/payment"
	reviewservice "github.com/magabrotheeeer/course-marketplace/internal/services/review"
	"github.com/magabrotheeeer/course-marketplace/internal/storage/repository"
)

// App инкапсулирует запущенные компоненты приложения.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	db         *repository.Storage
	rabbitConn *amqp.Connection
}

// New собирает приложение: подключает базу, применяет миграции,
// инициализирует кеш, брокер и сервисы, регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.RabbitConnection, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}
	rabbitChannel, err := rabbitmq.SetupChannel(rabbitConn)
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(rabbitChannel)

	collector := metrics.NewCollector(prometheus.DefaultRegisterer)
	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	courseService := courseservice.NewCourseService(db, cacheRedis, logger)
	lessonService := lessonservice.NewLessonService(db, logger)
	paymentService := paymentservice.NewPaymentService(db, publisher, collector, logger)
	enrollmentService := enrollmentservice.NewEnrollmentService(db, publisher, collector, logger)
	reviewService := reviewservice.NewReviewService(db, collector, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:       authService,
		Course:     courseService,
		Lesson:     lessonService,
		Payment:    paymentService,
		Enrollment: enrollmentService,
		Review:     reviewService,
	}, db, cfg.WebhookSecret)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:     srv,
		logger:     logger,
		db:         db,
		rabbitConn: rabbitConn,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста
// или фатальной ошибки сервера. При остановке закрывает соединения.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.db.DB.Close()
		a.rabbitConn.Close()
		return err
	}
}
