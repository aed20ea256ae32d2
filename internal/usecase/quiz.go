package usecase

import (
	"context"
	"errors"
	"math"
	"smartlearn-backend/internal/domain"
)

type quizUsecase struct {
	userRepo       domain.UserRepository
	courseRepo     domain.CourseRepository
	lessonRepo     domain.LessonRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.LessonProgressRepository
	quizRepo       domain.QuizRepository
	resultRepo     domain.QuizResultRepository
	certUsecase    domain.CertificateUsecase
}

func NewQuizUsecase(
	ur domain.UserRepository,
	cr domain.CourseRepository,
	lr domain.LessonRepository,
	er domain.EnrollmentRepository,
	pr domain.LessonProgressRepository,
	qr domain.QuizRepository,
	rr domain.QuizResultRepository,
	cu domain.CertificateUsecase,
) domain.QuizUsecase {
	return &quizUsecase{
		userRepo:       ur,
		courseRepo:     cr,
		lessonRepo:     lr,
		enrollmentRepo: er,
		progressRepo:   pr,
		quizRepo:       qr,
		resultRepo:     rr,
		certUsecase:    cu,
	}
}

// checkEligibility enforces the quiz gate: enrolled in the course and
// every lesson completed.
func (uc *quizUsecase) checkEligibility(ctx context.Context, userID, courseID uint) error {
	enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return domain.ErrNotEnrolled
	}

	lessonCount, err := uc.lessonRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return err
	}
	completedCount, err := uc.progressRepo.CountCompleted(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if lessonCount == 0 || completedCount < lessonCount {
		return domain.ErrNotEligible
	}
	return nil
}

func (uc *quizUsecase) GetQuiz(ctx context.Context, quizID, userID uint) (*domain.Quiz, error) {
	quiz, err := uc.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == domain.RoleStudent {
		if err := uc.checkEligibility(ctx, userID, quiz.CourseID); err != nil {
			return nil, err
		}
	} else {
		course, err := uc.courseRepo.GetByID(ctx, quiz.CourseID)
		if err != nil {
			return nil, err
		}
		if err := requireCourseOwner(user, course); err != nil {
			return nil, err
		}
	}

	questions, err := uc.quizRepo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	quiz.Questions = questions
	return quiz, nil
}

func (uc *quizUsecase) Submit(ctx context.Context, quizID, userID uint, answers map[uint]int) (*domain.SubmissionResult, error) {
	quiz, err := uc.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireStudent(user); err != nil {
		return nil, err
	}
	if err := uc.checkEligibility(ctx, userID, quiz.CourseID); err != nil {
		return nil, err
	}

	questions, err := uc.quizRepo.GetQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}

	// Unanswered questions count as incorrect.
	correct := 0
	for _, q := range questions {
		if answers[q.ID] == q.CorrectOption {
			correct++
		}
	}
	total := len(questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correct) / float64(total) * 100))
	}

	attempt := &domain.QuizResult{
		QuizID: quizID,
		UserID: userID,
		Score:  score,
		Passed: score >= quiz.PassMark,
	}
	// First attempt wins; a repeat submission observes the stored row
	// untouched.
	stored, _, err := uc.resultRepo.GetOrCreate(ctx, attempt)
	if err != nil {
		return nil, err
	}

	submission := &domain.SubmissionResult{
		Correct:  correct,
		Total:    total,
		Score:    stored.Score,
		Passed:   stored.Passed,
		PassMark: quiz.PassMark,
		Stored:   stored,
	}

	if stored.Passed {
		cert, err := uc.certUsecase.IssueIfAbsent(ctx, userID, quiz.CourseID)
		if err != nil && !errors.Is(err, domain.ErrRenderFailed) {
			return nil, err
		}
		// Render failure is non-fatal: the result stands and the row is
		// retried on the next passing event or download.
		submission.Certificate = cert
	}

	return submission, nil
}

func (uc *quizUsecase) CreateQuiz(ctx context.Context, instructorID, courseID uint, title string, passMark int) (*domain.Quiz, error) {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return nil, err
	}

	if passMark < 0 || passMark > 100 {
		return nil, domain.ErrInvalidInput
	}

	quiz := &domain.Quiz{
		CourseID: courseID,
		Title:    title,
		PassMark: passMark,
		IsActive: true,
	}
	// One quiz per course, enforced by the unique course index.
	if err := uc.quizRepo.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (uc *quizUsecase) AddQuestion(ctx context.Context, instructorID uint, question *domain.Question) error {
	if question.CorrectOption < 1 || question.CorrectOption > 4 {
		return domain.ErrInvalidInput
	}

	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	quiz, err := uc.quizRepo.GetByID(ctx, question.QuizID)
	if err != nil {
		return err
	}
	course, err := uc.courseRepo.GetByID(ctx, quiz.CourseID)
	if err != nil {
		return err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return err
	}

	return uc.quizRepo.CreateQuestion(ctx, question)
}

func (uc *quizUsecase) GetResults(ctx context.Context, instructorID, quizID uint) ([]domain.QuizResult, error) {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	quiz, err := uc.quizRepo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	course, err := uc.courseRepo.GetByID(ctx, quiz.CourseID)
	if err != nil {
		return nil, err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return nil, err
	}

	return uc.resultRepo.GetByQuizID(ctx, quizID)
}

func (uc *quizUsecase) GetInstructorQuizzes(ctx context.Context, instructorID uint) ([]domain.Quiz, error) {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(instructor, domain.RoleInstructor); err != nil {
		return nil, err
	}
	return uc.quizRepo.GetByInstructorID(ctx, instructorID)
}
