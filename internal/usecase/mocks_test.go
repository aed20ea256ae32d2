package usecase

import (
	"context"
	"io"
	"smartlearn-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ========== REPOSITORY MOCKS ==========

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) CountPendingInstructors(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepo) GetAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepo) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepo) Update(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id uint) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepo) SearchPublic(ctx context.Context, query string) ([]domain.Course, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCourseRepo) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockLessonRepo struct {
	mock.Mock
}

func (m *MockLessonRepo) Create(ctx context.Context, lesson *domain.Lesson) error {
	args := m.Called(ctx, lesson)
	return args.Error(0)
}

func (m *MockLessonRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLessonRepo) GetByID(ctx context.Context, id uint) (*domain.Lesson, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonRepo) GetByCourseID(ctx context.Context, courseID uint) ([]domain.Lesson, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).([]domain.Lesson), args.Error(1)
}

func (m *MockLessonRepo) GetByCourseAndOrder(ctx context.Context, courseID uint, order int) (*domain.Lesson, error) {
	args := m.Called(ctx, courseID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lesson), args.Error(1)
}

func (m *MockLessonRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLessonRepo) GetWithNotes(ctx context.Context, courseIDs []uint) ([]domain.Lesson, error) {
	args := m.Called(ctx, courseIDs)
	return args.Get(0).([]domain.Lesson), args.Error(1)
}

type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) GetOrCreate(ctx context.Context, studentID, courseID uint) (*domain.Enrollment, bool, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Enrollment), args.Bool(1), args.Error(2)
}

func (m *MockEnrollmentRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*domain.Enrollment, error) {
	args := m.Called(ctx, studentID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) GetByStudentID(ctx context.Context, studentID uint) ([]domain.Enrollment, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Enrollment, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) CountByCourseID(ctx context.Context, courseID uint) (int64, error) {
	args := m.Called(ctx, courseID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnrollmentRepo) CountDistinctStudentsByInstructor(ctx context.Context, instructorID uint) (int64, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) GetOrCreate(ctx context.Context, enrollmentID, lessonID uint) (*domain.LessonProgress, bool, error) {
	args := m.Called(ctx, enrollmentID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.LessonProgress), args.Bool(1), args.Error(2)
}

func (m *MockProgressRepo) GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID uint) (*domain.LessonProgress, error) {
	args := m.Called(ctx, enrollmentID, lessonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonProgress), args.Error(1)
}

func (m *MockProgressRepo) GetByEnrollmentID(ctx context.Context, enrollmentID uint) ([]domain.LessonProgress, error) {
	args := m.Called(ctx, enrollmentID)
	return args.Get(0).([]domain.LessonProgress), args.Error(1)
}

func (m *MockProgressRepo) MarkCompleted(ctx context.Context, enrollmentID, lessonID uint) error {
	args := m.Called(ctx, enrollmentID, lessonID)
	return args.Error(0)
}

func (m *MockProgressRepo) CountCompleted(ctx context.Context, enrollmentID uint) (int64, error) {
	args := m.Called(ctx, enrollmentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressRepo) FirstIncomplete(ctx context.Context, enrollmentID uint) (*domain.LessonProgress, error) {
	args := m.Called(ctx, enrollmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LessonProgress), args.Error(1)
}

type MockQuizRepo struct {
	mock.Mock
}

func (m *MockQuizRepo) Create(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizRepo) GetByID(ctx context.Context, id uint) (*domain.Quiz, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepo) GetByCourseID(ctx context.Context, courseID uint) (*domain.Quiz, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizRepo) GetByInstructorID(ctx context.Context, instructorID uint) ([]domain.Quiz, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).([]domain.Quiz), args.Error(1)
}

func (m *MockQuizRepo) CountByInstructorID(ctx context.Context, instructorID uint) (int64, error) {
	args := m.Called(ctx, instructorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuizRepo) CreateQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockQuizRepo) GetQuestions(ctx context.Context, quizID uint) ([]domain.Question, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).([]domain.Question), args.Error(1)
}

type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) GetOrCreate(ctx context.Context, result *domain.QuizResult) (*domain.QuizResult, bool, error) {
	args := m.Called(ctx, result)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.QuizResult), args.Bool(1), args.Error(2)
}

func (m *MockResultRepo) GetByQuizAndUser(ctx context.Context, quizID, userID uint) (*domain.QuizResult, error) {
	args := m.Called(ctx, quizID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizResult), args.Error(1)
}

func (m *MockResultRepo) GetByQuizID(ctx context.Context, quizID uint) ([]domain.QuizResult, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

func (m *MockResultRepo) GetRecentByInstructor(ctx context.Context, instructorID uint, limit int) ([]domain.QuizResult, error) {
	args := m.Called(ctx, instructorID, limit)
	return args.Get(0).([]domain.QuizResult), args.Error(1)
}

type MockCertRepo struct {
	mock.Mock
}

func (m *MockCertRepo) GetOrCreate(ctx context.Context, userID, courseID uint) (*domain.Certificate, bool, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Certificate), args.Bool(1), args.Error(2)
}

func (m *MockCertRepo) GetByID(ctx context.Context, id uint) (*domain.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

func (m *MockCertRepo) GetByUserID(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Certificate), args.Error(1)
}

func (m *MockCertRepo) Update(ctx context.Context, cert *domain.Certificate) error {
	args := m.Called(ctx, cert)
	return args.Error(0)
}

func (m *MockCertRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// ========== COLLABORATOR MOCKS ==========

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, filename, contentType string, r io.Reader, meta domain.FileMetadata) (string, error) {
	args := m.Called(ctx, filename, contentType, r, meta)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Download(ctx context.Context, fileID string) (io.ReadCloser, *domain.FileInfo, error) {
	args := m.Called(ctx, fileID)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	var info *domain.FileInfo
	if args.Get(1) != nil {
		info = args.Get(1).(*domain.FileInfo)
	}
	return rc, info, args.Error(2)
}

func (m *MockFileStore) Delete(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, data domain.CertificateData) ([]byte, string, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}
