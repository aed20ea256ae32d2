package http

import (
	"errors"
	"fmt"
	"net/http"
	"smartlearn-backend/internal/domain"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	AuthUsecase      domain.AuthUsecase
	CatalogUsecase   domain.CatalogUsecase
	ProgressUsecase  domain.ProgressUsecase
	QuizUsecase      domain.QuizUsecase
	CertUsecase      domain.CertificateUsecase
	PaymentUsecase   domain.PaymentUsecase
	AdminUsecase     domain.AdminUsecase
	DashboardUsecase domain.DashboardUsecase
	FileStore        domain.FileStore
}

func NewHandler(
	au domain.AuthUsecase,
	cu domain.CatalogUsecase,
	pu domain.ProgressUsecase,
	qu domain.QuizUsecase,
	certu domain.CertificateUsecase,
	payu domain.PaymentUsecase,
	adu domain.AdminUsecase,
	du domain.DashboardUsecase,
	fs domain.FileStore,
) *Handler {
	return &Handler{
		AuthUsecase:      au,
		CatalogUsecase:   cu,
		ProgressUsecase:  pu,
		QuizUsecase:      qu,
		CertUsecase:      certu,
		PaymentUsecase:   payu,
		AdminUsecase:     adu,
		DashboardUsecase: du,
		FileStore:        fs,
	}
}

// ========== UTILITY FUNCTIONS ==========

func formatValidationErrors(err error) gin.H {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		errors := make(map[string]string)
		for _, f := range ve {
			errors[f.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", f.Field(), f.Tag())
		}
		return gin.H{"error": "Validation failed", "details": errors}
	}
	return gin.H{"error": "Invalid request: " + err.Error()}
}

func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, errors.New("user ID not found in token")
	}
	return userID.(uint), nil
}

func getUserRole(c *gin.Context) (string, error) {
	role, exists := c.Get("role")
	if !exists {
		return "", errors.New("role not found in token")
	}
	return role.(string), nil
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// respondError maps domain sentinel errors onto HTTP statuses; anything
// unrecognized is an internal error.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrRoleNotAllowed),
		errors.Is(err, domain.ErrNotApproved),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrNotEligible):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// ========== AUTH HANDLERS ==========

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"required,oneof=student instructor"`
		Mobile   string `json:"mobile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	user := domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Mobile:   req.Mobile,
	}
	if err := h.AuthUsecase.Register(c.Request.Context(), &user, domain.Role(req.Role)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"role":        user.Role,
			"is_approved": user.IsApproved,
		},
	})
}

func (h *Handler) Login(c *gin.Context) {
	var creds struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	token, err := h.AuthUsecase.Login(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := h.AuthUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var user domain.User
	user.ID = userID
	user.Name = c.PostForm("name")
	user.Mobile = c.PostForm("mobile")
	user.Password = c.PostForm("password")

	fileID, err := h.uploadFormFile(c, "profile_picture", userID, 0, "profile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}
	if fileID != "" {
		user.ProfilePicture = fileID
	}

	if err := h.AuthUsecase.UpdateProfile(c.Request.Context(), &user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// ========== CATALOG HANDLERS ==========

func (h *Handler) SearchCourses(c *gin.Context) {
	courses, err := h.CatalogUsecase.SearchCourses(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *Handler) GetCourseDetail(c *gin.Context) {
	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	// Viewer identity is optional here; anonymous visitors see the
	// public shape without progress flags.
	var userIDPtr *uint
	if userID, err := getUserID(c); err == nil {
		userIDPtr = &userID
	}

	detail, err := h.CatalogUsecase.GetCourseDetail(c.Request.Context(), courseID, userIDPtr)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogUsecase.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// ========== STUDENT HANDLERS ==========

func (h *Handler) EnrollCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	enrollment, err := h.ProgressUsecase.Enroll(c.Request.Context(), userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Successfully enrolled in course",
		"enrollment": enrollment,
	})
}

func (h *Handler) GetLessonPlayer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}
	lessonID, ok := parseID(c, "lessonId")
	if !ok {
		return
	}

	data, redirectID, err := h.ProgressUsecase.LessonPlayer(c.Request.Context(), userID, courseID, lessonID)
	if err != nil {
		respondError(c, err)
		return
	}
	if redirectID != 0 {
		// Locked lesson: point the client at the prerequisite instead.
		c.JSON(http.StatusOK, gin.H{
			"locked":       true,
			"redirect_to":  redirectID,
			"redirect_url": fmt.Sprintf("/api/v1/courses/%d/lessons/%d", courseID, redirectID),
		})
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) MarkLessonComplete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lessonID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ProgressUsecase.MarkLessonComplete(c.Request.Context(), userID, lessonID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson marked as complete"})
}

func (h *Handler) ResumeCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	lesson, err := h.ProgressUsecase.Resume(c.Request.Context(), userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}

func (h *Handler) GetCourseProgress(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	percent, err := h.ProgressUsecase.PercentComplete(c.Request.Context(), userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"percent_complete": percent})
}

func (h *Handler) GetMyNotes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	notes, err := h.ProgressUsecase.GetNotes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
		"count": len(notes),
	})
}

// ========== QUIZ HANDLERS ==========

func (h *Handler) GetQuiz(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	quizID, ok := parseID(c, "id")
	if !ok {
		return
	}

	quiz, err := h.QuizUsecase.GetQuiz(c.Request.Context(), quizID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

func (h *Handler) SubmitQuiz(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	quizID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Answers map[uint]int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	result, err := h.QuizUsecase.Submit(c.Request.Context(), quizID, userID, req.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ========== CERTIFICATE HANDLERS ==========

func (h *Handler) GetUserCertificates(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	certs, err := h.CertUsecase.GetUserCertificates(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"certificates": certs,
		"count":        len(certs),
	})
}

func (h *Handler) DownloadCertificate(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	certID, ok := parseID(c, "id")
	if !ok {
		return
	}

	stream, info, err := h.CertUsecase.Download(c.Request.Context(), userID, certID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", info.ContentType)
	c.Header("Content-Length", fmt.Sprintf("%d", info.Size))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", info.Filename))
	c.Status(http.StatusOK)
	streamCopy(c, stream)
}

// ========== PAYMENT HANDLERS ==========

func (h *Handler) PayForCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	payment, enrollment, err := h.PaymentUsecase.PayForCourse(c.Request.Context(), userID, courseID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Payment successful",
		"payment":    payment,
		"enrollment": enrollment,
	})
}

func (h *Handler) GetMyPayments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.PaymentUsecase.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"count":    len(payments),
	})
}

// ========== INSTRUCTOR HANDLERS ==========

func (h *Handler) CreateCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var course domain.Course
	course.Title = c.PostForm("title")
	course.Description = c.PostForm("description")

	if course.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	if categoryIDStr := c.PostForm("category_id"); categoryIDStr != "" {
		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		id := uint(categoryID)
		course.CategoryID = &id
	}

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}
		course.Price = price
	}

	fileID, err := h.uploadFormFile(c, "thumbnail", userID, 0, "thumbnail")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload thumbnail: " + err.Error()})
		return
	}
	course.Thumbnail = fileID

	if err := h.CatalogUsecase.CreateCourse(c.Request.Context(), userID, &course); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (h *Handler) PublishCourse(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.CatalogUsecase.PublishCourse(c.Request.Context(), userID, courseID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course published. It will be listed once an admin approves it."})
}

func (h *Handler) AddLesson(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, err := strconv.ParseUint(c.PostForm("course_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course_id"})
		return
	}
	order, err := strconv.Atoi(c.PostForm("order"))
	if err != nil || order < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order must be a positive number"})
		return
	}

	var lesson domain.Lesson
	lesson.CourseID = uint(courseID)
	lesson.Title = c.PostForm("title")
	lesson.YoutubeURL = c.PostForm("youtube_url")
	lesson.Order = order

	if lesson.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	videoID, err := h.uploadFormFile(c, "video_file", userID, lesson.CourseID, "video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload video: " + err.Error()})
		return
	}
	lesson.VideoFile = videoID

	notesID, err := h.uploadFormFile(c, "pdf_notes", userID, lesson.CourseID, "notes")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload notes: " + err.Error()})
		return
	}
	lesson.PDFNotes = notesID

	if err := h.CatalogUsecase.AddLesson(c.Request.Context(), userID, &lesson); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, lesson)
}

func (h *Handler) DeleteLesson(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	lessonID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.CatalogUsecase.DeleteLesson(c.Request.Context(), userID, lessonID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}

func (h *Handler) GetInstructorCourses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courses, err := h.CatalogUsecase.GetInstructorCourses(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"courses": courses,
		"count":   len(courses),
	})
}

func (h *Handler) GetInstructorStudents(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	enrollments, err := h.CatalogUsecase.GetInstructorStudents(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}

func (h *Handler) CreateQuiz(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		CourseID uint   `json:"course_id" binding:"required"`
		Title    string `json:"title" binding:"required"`
		PassMark int    `json:"pass_mark"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}
	if req.PassMark == 0 {
		req.PassMark = 50
	}

	quiz, err := h.QuizUsecase.CreateQuiz(c.Request.Context(), userID, req.CourseID, req.Title, req.PassMark)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

func (h *Handler) AddQuestion(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		QuizID        uint   `json:"quiz_id" binding:"required"`
		Text          string `json:"text" binding:"required"`
		Option1       string `json:"option1" binding:"required"`
		Option2       string `json:"option2" binding:"required"`
		Option3       string `json:"option3" binding:"required"`
		Option4       string `json:"option4" binding:"required"`
		CorrectOption int    `json:"correct_option" binding:"required,min=1,max=4"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}

	question := domain.Question{
		QuizID:        req.QuizID,
		Text:          req.Text,
		Option1:       req.Option1,
		Option2:       req.Option2,
		Option3:       req.Option3,
		Option4:       req.Option4,
		CorrectOption: req.CorrectOption,
	}
	if err := h.QuizUsecase.AddQuestion(c.Request.Context(), userID, &question); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Question added successfully", "id": question.ID})
}

func (h *Handler) GetInstructorQuizzes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	quizzes, err := h.QuizUsecase.GetInstructorQuizzes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quizzes": quizzes,
		"count":   len(quizzes),
	})
}

func (h *Handler) GetQuizResults(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	quizID, ok := parseID(c, "id")
	if !ok {
		return
	}

	results, err := h.QuizUsecase.GetResults(c.Request.Context(), userID, quizID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// ========== ADMIN HANDLERS ==========

func (h *Handler) ApproveInstructor(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	instructorID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.AdminUsecase.ApproveInstructor(c.Request.Context(), adminID, instructorID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Instructor approved successfully"})
}

func (h *Handler) ApproveCourse(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	courseID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.AdminUsecase.ApproveCourse(c.Request.Context(), adminID, courseID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Course approved successfully"})
}

func (h *Handler) CreateCategory(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, formatValidationErrors(err))
		return
	}
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	if err := h.AdminUsecase.CreateCategory(c.Request.Context(), adminID, &category); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *Handler) GetAllUsers(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	users, err := h.AdminUsecase.GetAllUsers(c.Request.Context(), adminID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// ========== DASHBOARD HANDLERS ==========

func (h *Handler) GetStudentDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	data, err := h.DashboardUsecase.GetStudentDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) GetInstructorDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	data, err := h.DashboardUsecase.GetInstructorDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}

func (h *Handler) GetAdminDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	data, err := h.DashboardUsecase.GetAdminDashboard(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
