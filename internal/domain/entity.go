package domain

import (
	"time"
)

type Role string

const (
	RoleUnset      Role = ""
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// Valid reports whether the role is one of the three assignable roles.
// RoleUnset is a real state (account exists, dashboards blocked), not a
// valid registration target.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleInstructor || r == RoleAdmin
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	Role           Role      `json:"role" gorm:"type:varchar(20)"`
	IsApproved     bool      `json:"is_approved" gorm:"default:false"`
	ProfilePicture string    `json:"profile_picture"` // file store reference
	Mobile         string    `json:"mobile" gorm:"type:varchar(15)"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null"`
}

type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
)

type Course struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	Title        string       `json:"title" gorm:"not null"`
	Description  string       `json:"description" gorm:"type:text"`
	Thumbnail    string       `json:"thumbnail"` // file store reference
	InstructorID uint         `json:"instructor_id" gorm:"not null;index"`
	CategoryID   *uint        `json:"category_id" gorm:"index"`
	Status       CourseStatus `json:"status" gorm:"type:varchar(20);default:'draft'"`
	IsApproved   bool         `json:"is_approved" gorm:"default:false"`
	Price        float64      `json:"price" gorm:"default:0"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Instructor User      `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// Listable reports whether the course may appear in public listings and
// accept enrollments.
func (c *Course) Listable() bool {
	return c.Status == CoursePublished && c.IsApproved
}

// Lesson order is 1-based and unique within a course; it defines the
// sequential unlock chain.
type Lesson struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_course_order"`
	Title      string    `json:"title" gorm:"not null"`
	YoutubeURL string    `json:"youtube_url"`
	VideoFile  string    `json:"video_file"` // file store reference
	PDFNotes   string    `json:"pdf_notes"`  // file store reference
	Order      int       `json:"order" gorm:"not null;uniqueIndex:idx_course_order"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"not null;uniqueIndex:idx_student_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_student_course"`
	CreatedAt time.Time `json:"enrolled_at" gorm:"autoCreateTime"`

	// Relations
	Student User   `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Course  Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// LessonProgress rows are materialized eagerly at enroll time, one per
// lesson. Completed is monotonic: it only ever goes false -> true.
type LessonProgress struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	EnrollmentID uint      `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	LessonID     uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	Completed    bool      `json:"completed" gorm:"default:false"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relations
	Lesson Lesson `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
}

// Quiz is 1:1 with its course.
type Quiz struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	CourseID uint   `json:"course_id" gorm:"not null;uniqueIndex"`
	Title    string `json:"title" gorm:"not null"`
	PassMark int    `json:"pass_mark" gorm:"default:50"` // percent needed to pass
	IsActive bool   `json:"is_active" gorm:"default:true"`

	// Relations
	Course    Course     `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
}

type Question struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	QuizID        uint   `json:"quiz_id" gorm:"not null;index"`
	Text          string `json:"text" gorm:"type:text;not null"`
	Option1       string `json:"option1" gorm:"not null"`
	Option2       string `json:"option2" gorm:"not null"`
	Option3       string `json:"option3" gorm:"not null"`
	Option4       string `json:"option4" gorm:"not null"`
	CorrectOption int    `json:"-" gorm:"not null"` // 1..4, hidden from students
}

// QuizResult is immutable once stored: at most one row per (quiz, user),
// first attempt wins.
type QuizResult struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	QuizID      uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_quiz_user"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_quiz_user"`
	Score       int       `json:"score"` // percent
	Passed      bool      `json:"passed"`
	AttemptedAt time.Time `json:"attempted_at" gorm:"autoCreateTime"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// Certificate rows may exist without an artifact when rendering failed;
// the artifact is attached on a later passing event or explicit retry.
type Certificate struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_cert"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_cert"`
	FileID    string    `json:"file_id"` // file store reference, empty until rendered
	IssueDate time.Time `json:"issue_date" gorm:"autoCreateTime"`

	// Relations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
)

type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id" gorm:"not null;index"`
	CourseID      uint          `json:"course_id" gorm:"not null;index"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TransactionID string        `json:"transaction_id"`
	CreatedAt     time.Time     `json:"created_at" gorm:"autoCreateTime"`
}

// ========== RESPONSE DTOs ==========

// LessonState - lesson dengan flag completed/locked untuk sidebar student
type LessonState struct {
	Lesson
	Completed bool `json:"completed"`
	Locked    bool `json:"locked"`
}

// CourseDetail - detail course untuk course page
type CourseDetail struct {
	Course
	Lessons         []LessonState `json:"lessons"`
	Enrolled        bool          `json:"enrolled"`
	ProgressPercent int           `json:"progress_percent"`
	CompletedAll    bool          `json:"completed_all"`
	HasQuiz         bool          `json:"has_quiz"`
	QuizID          *uint         `json:"quiz_id,omitempty"`
	QuizPassed      bool          `json:"quiz_passed"`
	EnrolledCount   int           `json:"enrolled_count"`
}

// LessonPlayerData - data untuk lesson player view
type LessonPlayerData struct {
	Lesson          Lesson        `json:"lesson"`
	Lessons         []LessonState `json:"lessons"`
	ProgressPercent int           `json:"progress_percent"`
	CourseCompleted bool          `json:"course_completed"`
	Quiz            *Quiz         `json:"quiz,omitempty"`
}

// SubmissionResult - hasil satu quiz submission
type SubmissionResult struct {
	Correct     int          `json:"correct"`
	Total       int          `json:"total"`
	Score       int          `json:"score"`
	Passed      bool         `json:"passed"`
	PassMark    int          `json:"pass_mark"`
	Stored      *QuizResult  `json:"result"`
	Certificate *Certificate `json:"certificate,omitempty"`
}

// EnrollmentWithProgress - enrollment dengan percent complete
type EnrollmentWithProgress struct {
	Enrollment
	LessonCount      int `json:"lesson_count"`
	CompletedLessons int `json:"completed_lessons"`
	ProgressPercent  int `json:"progress_percent"`
}

// StudentDashboardData - data untuk dashboard student
type StudentDashboardData struct {
	User              *User                    `json:"user"`
	Enrollments       []EnrollmentWithProgress `json:"enrollments"`
	CompletedCourses  int                      `json:"completed_courses"`
	TotalCertificates int                      `json:"total_certificates"`
}

// InstructorDashboardData - data untuk dashboard instructor
type InstructorDashboardData struct {
	TotalCourses   int          `json:"total_courses"`
	PendingCourses int          `json:"pending_courses"`
	TotalStudents  int          `json:"total_students"`
	TotalQuizzes   int          `json:"total_quizzes"`
	RecentResults  []QuizResult `json:"recent_results"`
}

// AdminDashboardData - data untuk dashboard admin
type AdminDashboardData struct {
	TotalUsers         int `json:"total_users"`
	TotalStudents      int `json:"total_students"`
	TotalInstructors   int `json:"total_instructors"`
	PendingInstructors int `json:"pending_instructors"`
	TotalCourses       int `json:"total_courses"`
	PendingCourses     int `json:"pending_courses"`
	TotalCertificates  int `json:"total_certificates"`
}
