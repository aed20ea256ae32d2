package repository

import (
	"context"
	"errors"
	"smartlearn-backend/internal/domain"

	"gorm.io/gorm"
)

// ========== USER REPOSITORY ==========

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepo{db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &user, err
}

func (r *userRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &user, err
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *userRepo) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Where("role = ?", role).Find(&users).Error
	return users, err
}

func (r *userRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepo) CountPendingInstructors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("role = ? AND is_approved = ?", domain.RoleInstructor, false).
		Count(&count).Error
	return count, err
}

// ========== CATEGORY REPOSITORY ==========

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(ctx context.Context, category *domain.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *categoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &category, err
}

// ========== COURSE REPOSITORY ==========

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) domain.CourseRepository {
	return &courseRepo{db}
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) Update(ctx context.Context, course *domain.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	var course domain.Course
	err := r.db.WithContext(ctx).Preload("Instructor").Preload("Category").First(&course, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &course, err
}

func (r *courseRepo) SearchPublic(ctx context.Context, query string) ([]domain.Course, error) {
	var courses []domain.Course
	q := r.db.WithContext(ctx).
		Where("status = ? AND is_approved = ?", domain.CoursePublished, true).
		Preload("Instructor").
		Preload("Category")

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Joins("LEFT JOIN categories ON categories.id = courses.category_id").
			Where("courses.title LIKE ? OR courses.description LIKE ? OR categories.name LIKE ?",
				pattern, pattern, pattern)
	}

	err := q.Order("courses.created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).Where("instructor_id = ?", instructorID).
		Preload("Category").
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Course{}).Count(&count).Error
	return count, err
}

func (r *courseRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Course{}).Where("is_approved = ?", false).Count(&count).Error
	return count, err
}

// ========== LESSON REPOSITORY ==========

type lessonRepo struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) domain.LessonRepository {
	return &lessonRepo{db}
}

func (r *lessonRepo) Create(ctx context.Context, lesson *domain.Lesson) error {
	err := r.db.WithContext(ctx).Create(lesson).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *lessonRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Lesson{}, id).Error
}

func (r *lessonRepo) GetByID(ctx context.Context, id uint) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).First(&lesson, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &lesson, err
}

func (r *lessonRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).
		Order("\"order\" ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *lessonRepo) GetByCourseAndOrder(ctx context.Context, courseID uint, order int) (*domain.Lesson, error) {
	var lesson domain.Lesson
	err := r.db.WithContext(ctx).
		Where("course_id = ? AND \"order\" = ?", courseID, order).
		First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &lesson, err
}

func (r *lessonRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *lessonRepo) GetWithNotes(ctx context.Context, courseIDs []uint) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	if len(courseIDs) == 0 {
		return lessons, nil
	}
	err := r.db.WithContext(ctx).
		Where("course_id IN ? AND pdf_notes <> ''", courseIDs).
		Order("course_id ASC, \"order\" ASC").
		Find(&lessons).Error
	return lessons, err
}

// ========== ENROLLMENT REPOSITORY ==========

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) domain.EnrollmentRepository {
	return &enrollmentRepo{db}
}

func (r *enrollmentRepo) GetOrCreate(ctx context.Context, studentID, courseID uint) (*domain.Enrollment, bool, error) {
	enrollment := &domain.Enrollment{StudentID: studentID, CourseID: courseID}
	existing, err := r.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	err = r.db.WithContext(ctx).Create(enrollment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the race: another request created the row first.
		existing, err = r.GetByStudentAndCourse(ctx, studentID, courseID)
		return existing, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return enrollment, true, nil
}

func (r *enrollmentRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*domain.Enrollment, error) {
	var enrollment domain.Enrollment
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &enrollment, err
}

func (r *enrollmentRepo) GetByStudentID(ctx context.Context, studentID uint) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).Where("student_id = ?", studentID).
		Preload("Course").
		Preload("Course.Instructor").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Enrollment, error) {
	var enrollments []domain.Enrollment
	err := r.db.WithContext(ctx).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Preload("Student").
		Preload("Course").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *enrollmentRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}

func (r *enrollmentRepo) CountDistinctStudentsByInstructor(ctx context.Context, instructorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Enrollment{}).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Distinct("enrollments.student_id").
		Count(&count).Error
	return count, err
}

// ========== LESSON PROGRESS REPOSITORY ==========

type lessonProgressRepo struct {
	db *gorm.DB
}

func NewLessonProgressRepository(db *gorm.DB) domain.LessonProgressRepository {
	return &lessonProgressRepo{db}
}

func (r *lessonProgressRepo) GetOrCreate(ctx context.Context, enrollmentID, lessonID uint) (*domain.LessonProgress, bool, error) {
	existing, err := r.GetByEnrollmentAndLesson(ctx, enrollmentID, lessonID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	progress := &domain.LessonProgress{EnrollmentID: enrollmentID, LessonID: lessonID}
	err = r.db.WithContext(ctx).Create(progress).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, err = r.GetByEnrollmentAndLesson(ctx, enrollmentID, lessonID)
		return existing, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return progress, true, nil
}

func (r *lessonProgressRepo) GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID uint) (*domain.LessonProgress, error) {
	var progress domain.LessonProgress
	err := r.db.WithContext(ctx).
		Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &progress, err
}

func (r *lessonProgressRepo) GetByEnrollmentID(ctx context.Context, enrollmentID uint) ([]domain.LessonProgress, error) {
	var progress []domain.LessonProgress
	err := r.db.WithContext(ctx).Where("enrollment_id = ?", enrollmentID).
		Preload("Lesson").
		Find(&progress).Error
	return progress, err
}

func (r *lessonProgressRepo) MarkCompleted(ctx context.Context, enrollmentID, lessonID uint) error {
	// Completed never goes back to false, so a blind update is safe even
	// when two completion requests race.
	return r.db.WithContext(ctx).Model(&domain.LessonProgress{}).
		Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).
		Update("completed", true).Error
}

func (r *lessonProgressRepo) CountCompleted(ctx context.Context, enrollmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LessonProgress{}).
		Where("enrollment_id = ? AND completed = ?", enrollmentID, true).
		Count(&count).Error
	return count, err
}

func (r *lessonProgressRepo) FirstIncomplete(ctx context.Context, enrollmentID uint) (*domain.LessonProgress, error) {
	var progress domain.LessonProgress
	err := r.db.WithContext(ctx).
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.enrollment_id = ? AND lesson_progresses.completed = ?", enrollmentID, false).
		Order("lessons.\"order\" ASC").
		Preload("Lesson").
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &progress, err
}

// ========== QUIZ REPOSITORY ==========

type quizRepo struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) domain.QuizRepository {
	return &quizRepo{db}
}

func (r *quizRepo) Create(ctx context.Context, quiz *domain.Quiz) error {
	err := r.db.WithContext(ctx).Create(quiz).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *quizRepo) GetByID(ctx context.Context, id uint) (*domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.db.WithContext(ctx).Preload("Course").First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &quiz, err
}

func (r *quizRepo) GetByCourseID(ctx context.Context, courseID uint) (*domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.db.WithContext(ctx).Where("course_id = ?", courseID).First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quiz, err
}

func (r *quizRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	err := r.db.WithContext(ctx).
		Joins("JOIN courses ON courses.id = quizzes.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Preload("Course").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepo) CountByInstructorID(ctx context.Context, instructorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Quiz{}).
		Joins("JOIN courses ON courses.id = quizzes.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Count(&count).Error
	return count, err
}

func (r *quizRepo) CreateQuestion(ctx context.Context, question *domain.Question) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *quizRepo) GetQuestions(ctx context.Context, quizID uint) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error
	return questions, err
}

// ========== QUIZ RESULT REPOSITORY ==========

type quizResultRepo struct {
	db *gorm.DB
}

func NewQuizResultRepository(db *gorm.DB) domain.QuizResultRepository {
	return &quizResultRepo{db}
}

func (r *quizResultRepo) GetOrCreate(ctx context.Context, result *domain.QuizResult) (*domain.QuizResult, bool, error) {
	existing, err := r.GetByQuizAndUser(ctx, result.QuizID, result.UserID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	err = r.db.WithContext(ctx).Create(result).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, err = r.GetByQuizAndUser(ctx, result.QuizID, result.UserID)
		return existing, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}

func (r *quizResultRepo) GetByQuizAndUser(ctx context.Context, quizID, userID uint) (*domain.QuizResult, error) {
	var result domain.QuizResult
	err := r.db.WithContext(ctx).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &result, err
}

func (r *quizResultRepo) GetByQuizID(ctx context.Context, quizID uint) ([]domain.QuizResult, error) {
	var results []domain.QuizResult
	err := r.db.WithContext(ctx).Where("quiz_id = ?", quizID).
		Preload("User").
		Order("attempted_at DESC").
		Find(&results).Error
	return results, err
}

func (r *quizResultRepo) GetRecentByInstructor(ctx context.Context, instructorID uint, limit int) ([]domain.QuizResult, error) {
	var results []domain.QuizResult
	err := r.db.WithContext(ctx).
		Joins("JOIN quizzes ON quizzes.id = quiz_results.quiz_id").
		Joins("JOIN courses ON courses.id = quizzes.course_id").
		Where("courses.instructor_id = ?", instructorID).
		Preload("User").
		Order("quiz_results.attempted_at DESC").
		Limit(limit).
		Find(&results).Error
	return results, err
}

// ========== CERTIFICATE REPOSITORY ==========

type certRepo struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) domain.CertificateRepository {
	return &certRepo{db}
}

func (r *certRepo) GetOrCreate(ctx context.Context, userID, courseID uint) (*domain.Certificate, bool, error) {
	existing, err := r.getByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	cert := &domain.Certificate{UserID: userID, CourseID: courseID}
	err = r.db.WithContext(ctx).Create(cert).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		existing, err = r.getByUserAndCourse(ctx, userID, courseID)
		return existing, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return cert, true, nil
}

func (r *certRepo) getByUserAndCourse(ctx context.Context, userID, courseID uint) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&cert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cert, err
}

func (r *certRepo) GetByID(ctx context.Context, id uint) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		First(&cert, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	return &cert, err
}

func (r *certRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	var certs []domain.Certificate
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Course").
		Order("issue_date DESC").
		Find(&certs).Error
	return certs, err
}

func (r *certRepo) Update(ctx context.Context, cert *domain.Certificate) error {
	return r.db.WithContext(ctx).Save(cert).Error
}

func (r *certRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Certificate{}).Count(&count).Error
	return count, err
}

// ========== PAYMENT REPOSITORY ==========

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &paymentRepo{db}
}

func (r *paymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Payment, error) {
	var payments []domain.Payment
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
