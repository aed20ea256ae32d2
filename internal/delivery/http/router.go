package http

import (
	"github.com/gin-gonic/gin"
)

func InitRouter(handler *Handler) *gin.Engine {
	r := gin.Default()

	// Public Routes
	api := r.Group("/api/v1")
	{
		api.POST("/register", handler.Register)
		api.POST("/login", handler.Login)
		api.GET("/courses", handler.SearchCourses)
		api.GET("/categories", handler.ListCategories)
	}

	// Course detail carries progress flags when the viewer is known.
	api.GET("/courses/:id", OptionalAuthMiddleware(), handler.GetCourseDetail)

	// Protected Routes (any authenticated user)
	protected := api.Group("/")
	protected.Use(AuthMiddleware())
	{
		protected.GET("/profile", handler.GetProfile)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.GET("/certificates", handler.GetUserCertificates)
		protected.GET("/certificates/:id/download", handler.DownloadCertificate)
		protected.POST("/files", handler.UploadFile)
		protected.GET("/files/:id", handler.StreamFile)
	}

	// Student Routes
	student := api.Group("/")
	student.Use(AuthMiddleware("student"))
	{
		student.POST("/courses/:id/enroll", handler.EnrollCourse)
		student.POST("/courses/:id/pay", handler.PayForCourse)
		student.GET("/courses/:id/resume", handler.ResumeCourse)
		student.GET("/courses/:id/progress", handler.GetCourseProgress)
		student.GET("/courses/:id/lessons/:lessonId", handler.GetLessonPlayer)
		student.POST("/lessons/:id/complete", handler.MarkLessonComplete)
		student.GET("/quizzes/:id", handler.GetQuiz)
		student.POST("/quizzes/:id/submit", handler.SubmitQuiz)
		student.GET("/notes", handler.GetMyNotes)
		student.GET("/payments", handler.GetMyPayments)
		student.GET("/dashboard/student", handler.GetStudentDashboard)
	}

	// Instructor & Admin Only
	instructor := api.Group("/instructor")
	instructor.Use(AuthMiddleware("instructor", "admin"))
	{
		instructor.POST("/courses", handler.CreateCourse)
		instructor.POST("/courses/:id/publish", handler.PublishCourse)
		instructor.GET("/courses", handler.GetInstructorCourses)
		instructor.GET("/students", handler.GetInstructorStudents)
		instructor.POST("/lessons", handler.AddLesson)
		instructor.DELETE("/lessons/:id", handler.DeleteLesson)
		instructor.POST("/quizzes", handler.CreateQuiz)
		instructor.POST("/questions", handler.AddQuestion)
		instructor.GET("/quizzes", handler.GetInstructorQuizzes)
		instructor.GET("/quizzes/:id/results", handler.GetQuizResults)
		instructor.GET("/dashboard", handler.GetInstructorDashboard)
	}

	// Admin Only
	admin := api.Group("/admin")
	admin.Use(AuthMiddleware("admin"))
	{
		admin.POST("/instructors/:id/approve", handler.ApproveInstructor)
		admin.POST("/courses/:id/approve", handler.ApproveCourse)
		admin.POST("/categories", handler.CreateCategory)
		admin.GET("/users", handler.GetAllUsers)
		admin.GET("/dashboard", handler.GetAdminDashboard)
	}

	return r
}
