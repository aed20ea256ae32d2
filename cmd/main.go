package main

import (
	"context"
	"log"
	"os"

	"smartlearn-backend/config"
	httpDelivery "smartlearn-backend/internal/delivery/http"
	"smartlearn-backend/internal/domain"
	"smartlearn-backend/internal/repository"
	"smartlearn-backend/internal/usecase"
	"smartlearn-backend/pkg/mailer"
	"smartlearn-backend/pkg/render"
	"smartlearn-backend/pkg/utils"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Connect to databases
	db := config.ConnectDB()
	postgres := db.PG
	mongo := db.Mongo

	// Auto migrate
	if err := config.AutoMigrate(postgres); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(postgres)
	categoryRepo := repository.NewCategoryRepository(postgres)
	courseRepo := repository.NewCourseRepository(postgres)
	lessonRepo := repository.NewLessonRepository(postgres)
	enrollmentRepo := repository.NewEnrollmentRepository(postgres)
	progressRepo := repository.NewLessonProgressRepository(postgres)
	quizRepo := repository.NewQuizRepository(postgres)
	resultRepo := repository.NewQuizResultRepository(postgres)
	certRepo := repository.NewCertificateRepository(postgres)
	paymentRepo := repository.NewPaymentRepository(postgres)

	// External collaborators
	fileStore, err := repository.NewGridFSStore(mongo)
	if err != nil {
		log.Fatal("Failed to initialize file store:", err)
	}
	certRenderer, err := render.NewPNGRenderer()
	if err != nil {
		log.Fatal("Failed to initialize certificate renderer:", err)
	}
	mail := mailer.NewFromEnv()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, mail)
	catalogUsecase := usecase.NewCatalogUsecase(userRepo, categoryRepo, courseRepo, lessonRepo, enrollmentRepo, progressRepo, quizRepo, resultRepo)
	progressUsecase := usecase.NewProgressUsecase(userRepo, courseRepo, lessonRepo, enrollmentRepo, progressRepo, quizRepo)
	certUsecase := usecase.NewCertificateUsecase(certRepo, userRepo, courseRepo, fileStore, certRenderer)
	quizUsecase := usecase.NewQuizUsecase(userRepo, courseRepo, lessonRepo, enrollmentRepo, progressRepo, quizRepo, resultRepo, certUsecase)
	paymentUsecase := usecase.NewPaymentUsecase(paymentRepo, courseRepo, progressUsecase)
	adminUsecase := usecase.NewAdminUsecase(userRepo, courseRepo, categoryRepo, mail)
	dashboardUsecase := usecase.NewDashboardUsecase(userRepo, courseRepo, lessonRepo, enrollmentRepo, progressRepo, quizRepo, resultRepo, certRepo)

	// Seed the admin account (never self-registered)
	seedAdmin(userRepo)

	// Initialize handler and router
	handler := httpDelivery.NewHandler(
		authUsecase,
		catalogUsecase,
		progressUsecase,
		quizUsecase,
		certUsecase,
		paymentUsecase,
		adminUsecase,
		dashboardUsecase,
		fileStore,
	)
	router := httpDelivery.InitRouter(handler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server running on port %s", port)
	log.Printf("API: http://localhost:%s/api/v1", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func seedAdmin(userRepo domain.UserRepository) {
	ctx := context.Background()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@smartlearn.com"
	}
	if existing, err := userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash admin password: %v", err)
		return
	}

	admin := &domain.User{
		Name:       "Administrator",
		Email:      email,
		Password:   hashed,
		Role:       domain.RoleAdmin,
		IsApproved: true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Printf("Failed to seed admin: %v", err)
	}
}
