// Package coursemarketplace предоставляет маршруты для основного приложения.
package coursemarketplace

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/auth/register"
	coursecreate "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/create"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/enroll"
	courselist "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/list"
	courseread "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/read"
	courseremove "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/remove"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/students"
	courseupdate "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/course/update"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/health"
	lessoncreate "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/lesson/create"
	lessonlist "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/lesson/list"
	lessonread "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/lesson/read"
	lessonremove "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/lesson/remove"
	lessonupdate "github.com/magabrotheeeer/course-marketplace/internal/http/handlers/lesson/update"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/payment/paymentcreate"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/payment/paymentlist"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/payment/paymentwebhook"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/review/reviewcreate"
	"github.com/magabrotheeeer/course-marketplace/internal/http/handlers/review/reviewlist"
	"github.com/magabrotheeeer/course-marketplace/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/course-marketplace/internal/services/auth"
	courseservice "github.com/magabrotheeeer/course-marketplace/internal/services/course"
	enrollmentservice "github.com/magabrotheeeer/course-marketplace/internal/services/enrollment"
	lessonservice "github.com/magabrotheeeer/course-marketplace/internal/services/lesson"
	paymentservice "github.com/magabrotheeeer/course-marketplace/internal/services/payment"
	reviewservice "github.com/magabrotheeeer/course-marketplace/internal/services/review"
	"github.com/magabrotheeeer/course-marketplace/internal/storage/repository"
)

// Services объединяет бизнес-сервисы приложения для регистрации маршрутов.
type Services struct {
	Auth       *authservice.AuthService
	Course     *courseservice.CourseService
	Lesson     *lessonservice.LessonService
	Payment    *paymentservice.PaymentService
	Enrollment *enrollmentservice.EnrollmentService
	Review     *reviewservice.ReviewService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services, db *repository.Storage, webhookSecret string) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Get("/courses/{id}/reviews", reviewlist.New(logger, svc.Review).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/courses", coursecreate.New(logger, svc.Course).ServeHTTP)
			r.Get("/courses", courselist.New(logger, svc.Course).ServeHTTP)
			r.Get("/courses/{id}", courseread.New(logger, svc.Course).ServeHTTP)
			r.Put("/courses/{id}", courseupdate.New(logger, svc.Course).ServeHTTP)
			r.Delete("/courses/{id}", courseremove.New(logger, svc.Course).ServeHTTP)
			r.Get("/courses/{id}/students", students.New(logger, svc.Enrollment).ServeHTTP)
			r.Post("/courses/{id}/enroll", enroll.New(logger, svc.Enrollment).ServeHTTP)
			r.Post("/courses/{id}/reviews", reviewcreate.New(logger, svc.Review).ServeHTTP)

			r.Post("/lessons", lessoncreate.New(logger, svc.Lesson).ServeHTTP)
			r.Get("/lessons", lessonlist.New(logger, svc.Lesson).ServeHTTP)
			r.Get("/lessons/{id}", lessonread.New(logger, svc.Lesson).ServeHTTP)
			r.Put("/lessons/{id}", lessonupdate.New(logger, svc.Lesson).ServeHTTP)
			r.Delete("/lessons/{id}", lessonremove.New(logger, svc.Lesson).ServeHTTP)

			r.Post("/payments", paymentcreate.New(logger, svc.Payment).ServeHTTP)
			r.Get("/payments", paymentlist.New(logger, svc.Payment).ServeHTTP)
		})

		// Webhook endpoint (без аутентификации)
		r.Post("/payments/webhook", paymentwebhook.New(logger, svc.Payment, webhookSecret).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
