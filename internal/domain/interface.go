package domain

import (
	"context"
	"io"
	"time"
)

// ========== REPOSITORIES ==========

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	Update(ctx context.Context, user *User) error
	GetAll(ctx context.Context) ([]User, error)
	GetByRole(ctx context.Context, role Role) ([]User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	CountPendingInstructors(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetAll(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
}

type CourseRepository interface {
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id uint) (*Course, error)
	// SearchPublic returns published, approved courses, optionally
	// filtered by a free-text query over title/description/category.
	SearchPublic(ctx context.Context, query string) ([]Course, error)
	GetByInstructorID(ctx context.Context, instructorID uint) ([]Course, error)
	Count(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type LessonRepository interface {
	Create(ctx context.Context, lesson *Lesson) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Lesson, error)
	// GetByCourseID returns the course's lessons ordered by Order.
	GetByCourseID(ctx context.Context, courseID uint) ([]Lesson, error)
	GetByCourseAndOrder(ctx context.Context, courseID uint, order int) (*Lesson, error)
	CountByCourseID(ctx context.Context, courseID uint) (int64, error)
	// GetWithNotes returns lessons carrying a pdf-notes reference across
	// the given courses.
	GetWithNotes(ctx context.Context, courseIDs []uint) ([]Lesson, error)
}

type EnrollmentRepository interface {
	// GetOrCreate resolves concurrent duplicate enrolls through the
	// unique (student, course) index: first writer wins, the second
	// call observes the existing row.
	GetOrCreate(ctx context.Context, studentID, courseID uint) (*Enrollment, bool, error)
	GetByStudentAndCourse(ctx context.Context, studentID, courseID uint) (*Enrollment, error)
	GetByStudentID(ctx context.Context, studentID uint) ([]Enrollment, error)
	GetByInstructorID(ctx context.Context, instructorID uint) ([]Enrollment, error)
	CountByCourseID(ctx context.Context, courseID uint) (int64, error)
	CountDistinctStudentsByInstructor(ctx context.Context, instructorID uint) (int64, error)
}

type LessonProgressRepository interface {
	GetOrCreate(ctx context.Context, enrollmentID, lessonID uint) (*LessonProgress, bool, error)
	GetByEnrollmentAndLesson(ctx context.Context, enrollmentID, lessonID uint) (*LessonProgress, error)
	GetByEnrollmentID(ctx context.Context, enrollmentID uint) ([]LessonProgress, error)
	// MarkCompleted flips completed to true. Monotonic and idempotent.
	MarkCompleted(ctx context.Context, enrollmentID, lessonID uint) error
	CountCompleted(ctx context.Context, enrollmentID uint) (int64, error)
	// FirstIncomplete returns the incomplete progress row with the
	// lowest lesson order, or nil when everything is done.
	FirstIncomplete(ctx context.Context, enrollmentID uint) (*LessonProgress, error)
}

type QuizRepository interface {
	Create(ctx context.Context, quiz *Quiz) error
	GetByID(ctx context.Context, id uint) (*Quiz, error)
	GetByCourseID(ctx context.Context, courseID uint) (*Quiz, error)
	GetByInstructorID(ctx context.Context, instructorID uint) ([]Quiz, error)
	CountByInstructorID(ctx context.Context, instructorID uint) (int64, error)
	CreateQuestion(ctx context.Context, question *Question) error
	GetQuestions(ctx context.Context, quizID uint) ([]Question, error)
}

type QuizResultRepository interface {
	// GetOrCreate enforces the at-most-one-result invariant on the
	// unique (quiz, user) index. A stored result is never overwritten.
	GetOrCreate(ctx context.Context, result *QuizResult) (*QuizResult, bool, error)
	GetByQuizAndUser(ctx context.Context, quizID, userID uint) (*QuizResult, error)
	GetByQuizID(ctx context.Context, quizID uint) ([]QuizResult, error)
	GetRecentByInstructor(ctx context.Context, instructorID uint, limit int) ([]QuizResult, error)
}

type CertificateRepository interface {
	// GetOrCreate on the unique (user, course) index; re-issue attempts
	// observe the existing row.
	GetOrCreate(ctx context.Context, userID, courseID uint) (*Certificate, bool, error)
	GetByID(ctx context.Context, id uint) (*Certificate, error)
	GetByUserID(ctx context.Context, userID uint) ([]Certificate, error)
	Update(ctx context.Context, cert *Certificate) error
	Count(ctx context.Context) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *Payment) error
	GetByUserID(ctx context.Context, userID uint) ([]Payment, error)
}

// ========== EXTERNAL COLLABORATORS ==========

// FileMetadata is attached to stored files for ownership checks and
// cleanup queries.
type FileMetadata struct {
	UploadedBy uint   `bson:"uploaded_by"`
	Kind       string `bson:"kind"` // video, notes, thumbnail, profile, certificate
	CourseID   uint   `bson:"course_id,omitempty"`
}

type FileInfo struct {
	ID          string       `json:"id"`
	Filename    string       `json:"filename"`
	ContentType string       `json:"content_type"`
	Size        int64        `json:"size"`
	UploadDate  time.Time    `json:"upload_date"`
	Metadata    FileMetadata `json:"metadata"`
}

// FileStore is the binary upload collaborator. The core never inspects
// file bytes, it only passes them through and keeps the returned ID.
type FileStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, meta FileMetadata) (string, error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, *FileInfo, error)
	Delete(ctx context.Context, fileID string) error
}

// CertificateData is the full input contract of the render collaborator.
type CertificateData struct {
	StudentName string
	CourseTitle string
	IssueDate   time.Time
}

// CertificateRenderer produces the certificate artifact bytes. Treated
// as opaque: any failure maps to ErrRenderFailed upstream.
type CertificateRenderer interface {
	Render(ctx context.Context, data CertificateData) ([]byte, string, error) // bytes, content type
}

type Mailer interface {
	Send(to, subject, body string) error
}

// ========== USECASES ==========

type AuthUsecase interface {
	// Register takes the chosen role explicitly; students are
	// auto-approved, instructors wait for admin approval.
	Register(ctx context.Context, user *User, role Role) error
	Login(ctx context.Context, email, password string) (string, error)
	UpdateProfile(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, id uint) (*User, error)
}

type CatalogUsecase interface {
	SearchCourses(ctx context.Context, query string) ([]Course, error)
	GetCourseDetail(ctx context.Context, courseID uint, userID *uint) (*CourseDetail, error)
	CreateCourse(ctx context.Context, instructorID uint, course *Course) error
	PublishCourse(ctx context.Context, instructorID, courseID uint) error
	AddLesson(ctx context.Context, instructorID uint, lesson *Lesson) error
	DeleteLesson(ctx context.Context, instructorID, lessonID uint) error
	GetInstructorCourses(ctx context.Context, instructorID uint) ([]Course, error)
	GetInstructorStudents(ctx context.Context, instructorID uint) ([]Enrollment, error)
	ListCategories(ctx context.Context) ([]Category, error)
}

type ProgressUsecase interface {
	Enroll(ctx context.Context, studentID, courseID uint) (*Enrollment, error)
	// LessonPlayer returns the player view, or the ID of the nearest
	// incomplete prerequisite when the requested lesson is locked.
	LessonPlayer(ctx context.Context, userID, courseID, lessonID uint) (*LessonPlayerData, uint, error)
	MarkLessonComplete(ctx context.Context, userID, lessonID uint) error
	// Resume returns the first incomplete lesson, or the first lesson
	// when everything is complete.
	Resume(ctx context.Context, userID, courseID uint) (*Lesson, error)
	// PercentComplete floors against the course's lesson count, so
	// lessons added after enrollment count as incomplete even before a
	// progress row exists.
	PercentComplete(ctx context.Context, userID, courseID uint) (int, error)
	GetNotes(ctx context.Context, userID uint) ([]Lesson, error)
}

type QuizUsecase interface {
	// GetQuiz enforces eligibility (enrolled + all lessons complete)
	// before exposing questions.
	GetQuiz(ctx context.Context, quizID, userID uint) (*Quiz, error)
	// Submit scores one attempt; answers maps question ID to the chosen
	// option (1..4). A repeat submission is a no-op returning the
	// stored result.
	Submit(ctx context.Context, quizID, userID uint, answers map[uint]int) (*SubmissionResult, error)
	CreateQuiz(ctx context.Context, instructorID, courseID uint, title string, passMark int) (*Quiz, error)
	AddQuestion(ctx context.Context, instructorID uint, question *Question) error
	GetResults(ctx context.Context, instructorID, quizID uint) ([]QuizResult, error)
	GetInstructorQuizzes(ctx context.Context, instructorID uint) ([]Quiz, error)
}

type CertificateUsecase interface {
	// IssueIfAbsent is idempotent per (user, course). A render failure
	// leaves the row artifact-less for a later retry and is reported as
	// ErrRenderFailed alongside the row.
	IssueIfAbsent(ctx context.Context, userID, courseID uint) (*Certificate, error)
	GetUserCertificates(ctx context.Context, userID uint) ([]Certificate, error)
	// Download streams the artifact, rendering it first if a previous
	// attempt failed.
	Download(ctx context.Context, userID, certID uint) (io.ReadCloser, *FileInfo, error)
}

type PaymentUsecase interface {
	// PayForCourse records a completed transaction and performs the
	// idempotent enroll.
	PayForCourse(ctx context.Context, userID, courseID uint) (*Payment, *Enrollment, error)
	GetUserPayments(ctx context.Context, userID uint) ([]Payment, error)
}

type AdminUsecase interface {
	ApproveInstructor(ctx context.Context, adminID, instructorID uint) error
	ApproveCourse(ctx context.Context, adminID, courseID uint) error
	CreateCategory(ctx context.Context, adminID uint, category *Category) error
	GetAllUsers(ctx context.Context, adminID uint) ([]User, error)
}

type DashboardUsecase interface {
	GetStudentDashboard(ctx context.Context, userID uint) (*StudentDashboardData, error)
	GetInstructorDashboard(ctx context.Context, userID uint) (*InstructorDashboardData, error)
	GetAdminDashboard(ctx context.Context, userID uint) (*AdminDashboardData, error)
}
