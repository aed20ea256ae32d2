package repository

import (
	"context"
	"fmt"
	"testing"

	"smartlearn-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens an in-memory database with the same TranslateError
// setting as production, so unique violations surface identically.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Category{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.Enrollment{},
		&domain.LessonProgress{},
		&domain.Quiz{},
		&domain.Question{},
		&domain.QuizResult{},
		&domain.Certificate{},
		&domain.Payment{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB) (*domain.User, *domain.User, *domain.Course) {
	t.Helper()
	student := &domain.User{Name: "Student", Email: "student@test.com", Password: "x", Role: domain.RoleStudent, IsApproved: true}
	instructor := &domain.User{Name: "Instructor", Email: "instructor@test.com", Password: "x", Role: domain.RoleInstructor, IsApproved: true}
	require.NoError(t, db.Create(student).Error)
	require.NoError(t, db.Create(instructor).Error)

	course := &domain.Course{Title: "Go Basics", InstructorID: instructor.ID, Status: domain.CoursePublished, IsApproved: true}
	require.NoError(t, db.Create(course).Error)
	return student, instructor, course
}

func TestUserRepositoryUniqueEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Name: "A", Email: "a@test.com", Password: "x", Role: domain.RoleStudent}
	assert.NoError(t, repo.Create(ctx, first))

	second := &domain.User{Name: "B", Email: "a@test.com", Password: "x", Role: domain.RoleStudent}
	assert.ErrorIs(t, repo.Create(ctx, second), domain.ErrDuplicate)

	_, err := repo.GetByEmail(ctx, "missing@test.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLessonOrderUniquePerCourse(t *testing.T) {
	db := setupDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()
	_, _, course := seedCourse(t, db)

	assert.NoError(t, repo.Create(ctx, &domain.Lesson{CourseID: course.ID, Title: "One", Order: 1}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Lesson{CourseID: course.ID, Title: "Dup", Order: 1}), domain.ErrDuplicate)

	// Same order in another course is fine.
	other := &domain.Course{Title: "Other", InstructorID: course.InstructorID}
	require.NoError(t, db.Create(other).Error)
	assert.NoError(t, repo.Create(ctx, &domain.Lesson{CourseID: other.ID, Title: "One", Order: 1}))
}

func TestLessonsOrderedByPosition(t *testing.T) {
	db := setupDB(t)
	repo := NewLessonRepository(db)
	ctx := context.Background()
	_, _, course := seedCourse(t, db)

	require.NoError(t, repo.Create(ctx, &domain.Lesson{CourseID: course.ID, Title: "Third", Order: 3}))
	require.NoError(t, repo.Create(ctx, &domain.Lesson{CourseID: course.ID, Title: "First", Order: 1}))
	require.NoError(t, repo.Create(ctx, &domain.Lesson{CourseID: course.ID, Title: "Second", Order: 2}))

	lessons, err := repo.GetByCourseID(ctx, course.ID)
	assert.NoError(t, err)
	require.Len(t, lessons, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{lessons[0].Order, lessons[1].Order, lessons[2].Order})
}

func TestEnrollmentGetOrCreate(t *testing.T) {
	db := setupDB(t)
	repo := NewEnrollmentRepository(db)
	ctx := context.Background()
	student, _, course := seedCourse(t, db)

	first, created, err := repo.GetOrCreate(ctx, student.ID, course.ID)
	assert.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.GetOrCreate(ctx, student.ID, course.ID)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	count, err := repo.CountByCourseID(ctx, course.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestLessonProgressMarkCompleted(t *testing.T) {
	db := setupDB(t)
	enrollRepo := NewEnrollmentRepository(db)
	lessonRepo := NewLessonRepository(db)
	progressRepo := NewLessonProgressRepository(db)
	ctx := context.Background()
	student, _, course := seedCourse(t, db)

	enrollment, _, err := enrollRepo.GetOrCreate(ctx, student.ID, course.ID)
	require.NoError(t, err)

	lesson := &domain.Lesson{CourseID: course.ID, Title: "One", Order: 1}
	require.NoError(t, lessonRepo.Create(ctx, lesson))

	row, created, err := progressRepo.GetOrCreate(ctx, enrollment.ID, lesson.ID)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.False(t, row.Completed)

	// Idempotent: marking twice leaves one completed row.
	assert.NoError(t, progressRepo.MarkCompleted(ctx, enrollment.ID, lesson.ID))
	assert.NoError(t, progressRepo.MarkCompleted(ctx, enrollment.ID, lesson.ID))

	count, err := progressRepo.CountCompleted(ctx, enrollment.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFirstIncompleteFollowsLessonOrder(t *testing.T) {
	db := setupDB(t)
	enrollRepo := NewEnrollmentRepository(db)
	lessonRepo := NewLessonRepository(db)
	progressRepo := NewLessonProgressRepository(db)
	ctx := context.Background()
	student, _, course := seedCourse(t, db)

	enrollment, _, err := enrollRepo.GetOrCreate(ctx, student.ID, course.ID)
	require.NoError(t, err)

	var lessons []*domain.Lesson
	for i := 1; i <= 3; i++ {
		lesson := &domain.Lesson{CourseID: course.ID, Title: "L", Order: i}
		require.NoError(t, lessonRepo.Create(ctx, lesson))
		_, _, err := progressRepo.GetOrCreate(ctx, enrollment.ID, lesson.ID)
		require.NoError(t, err)
		lessons = append(lessons, lesson)
	}

	require.NoError(t, progressRepo.MarkCompleted(ctx, enrollment.ID, lessons[0].ID))

	row, err := progressRepo.FirstIncomplete(ctx, enrollment.ID)
	assert.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, lessons[1].ID, row.LessonID)

	require.NoError(t, progressRepo.MarkCompleted(ctx, enrollment.ID, lessons[1].ID))
	require.NoError(t, progressRepo.MarkCompleted(ctx, enrollment.ID, lessons[2].ID))

	row, err = progressRepo.FirstIncomplete(ctx, enrollment.ID)
	assert.NoError(t, err)
	assert.Nil(t, row)
}

func TestQuizOnePerCourse(t *testing.T) {
	db := setupDB(t)
	repo := NewQuizRepository(db)
	ctx := context.Background()
	_, _, course := seedCourse(t, db)

	assert.NoError(t, repo.Create(ctx, &domain.Quiz{CourseID: course.ID, Title: "Final", PassMark: 50}))
	assert.ErrorIs(t, repo.Create(ctx, &domain.Quiz{CourseID: course.ID, Title: "Second", PassMark: 50}), domain.ErrDuplicate)

	quiz, err := repo.GetByCourseID(ctx, course.ID)
	assert.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, "Final", quiz.Title)

	missing, err := repo.GetByCourseID(ctx, course.ID+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestQuizResultFirstAttemptWins(t *testing.T) {
	db := setupDB(t)
	quizRepo := NewQuizRepository(db)
	resultRepo := NewQuizResultRepository(db)
	ctx := context.Background()
	student, _, course := seedCourse(t, db)

	quiz := &domain.Quiz{CourseID: course.ID, Title: "Final", PassMark: 50}
	require.NoError(t, quizRepo.Create(ctx, quiz))

	first, created, err := resultRepo.GetOrCreate(ctx, &domain.QuizResult{QuizID: quiz.ID, UserID: student.ID, Score: 25, Passed: false})
	assert.NoError(t, err)
	assert.True(t, created)

	// A better second attempt never replaces the stored row.
	second, created, err := resultRepo.GetOrCreate(ctx, &domain.QuizResult{QuizID: quiz.ID, UserID: student.ID, Score: 100, Passed: true})
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 25, second.Score)
	assert.False(t, second.Passed)
}

func TestCertificateGetOrCreate(t *testing.T) {
	db := setupDB(t)
	repo := NewCertificateRepository(db)
	ctx := context.Background()
	student, _, course := seedCourse(t, db)

	first, created, err := repo.GetOrCreate(ctx, student.ID, course.ID)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Empty(t, first.FileID)

	first.FileID = "file-abc"
	require.NoError(t, repo.Update(ctx, first))

	second, created, err := repo.GetOrCreate(ctx, student.ID, course.ID)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "file-abc", second.FileID)

	count, err := repo.Count(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSearchPublicFiltersUnlisted(t *testing.T) {
	db := setupDB(t)
	repo := NewCourseRepository(db)
	ctx := context.Background()
	_, instructor, published := seedCourse(t, db)

	draft := &domain.Course{Title: "Draft Course", InstructorID: instructor.ID, Status: domain.CourseDraft}
	unapproved := &domain.Course{Title: "Pending Course", InstructorID: instructor.ID, Status: domain.CoursePublished, IsApproved: false}
	require.NoError(t, db.Create(draft).Error)
	require.NoError(t, db.Create(unapproved).Error)

	courses, err := repo.SearchPublic(ctx, "")
	assert.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, published.ID, courses[0].ID)

	courses, err = repo.SearchPublic(ctx, "Go")
	assert.NoError(t, err)
	assert.Len(t, courses, 1)

	courses, err = repo.SearchPublic(ctx, "nonexistent")
	assert.NoError(t, err)
	assert.Empty(t, courses)
}

func TestInstructorScopedQueries(t *testing.T) {
	db := setupDB(t)
	enrollRepo := NewEnrollmentRepository(db)
	ctx := context.Background()
	student, instructor, course := seedCourse(t, db)

	other := &domain.User{Name: "S2", Email: "s2@test.com", Password: "x", Role: domain.RoleStudent}
	require.NoError(t, db.Create(other).Error)

	_, _, err := enrollRepo.GetOrCreate(ctx, student.ID, course.ID)
	require.NoError(t, err)
	_, _, err = enrollRepo.GetOrCreate(ctx, other.ID, course.ID)
	require.NoError(t, err)

	enrollments, err := enrollRepo.GetByInstructorID(ctx, instructor.ID)
	assert.NoError(t, err)
	assert.Len(t, enrollments, 2)

	count, err := enrollRepo.CountDistinctStudentsByInstructor(ctx, instructor.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
