package usecase

import (
	"context"
	"smartlearn-backend/internal/domain"
)

type progressUsecase struct {
	userRepo       domain.UserRepository
	courseRepo     domain.CourseRepository
	lessonRepo     domain.LessonRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.LessonProgressRepository
	quizRepo       domain.QuizRepository
}

func NewProgressUsecase(
	ur domain.UserRepository,
	cr domain.CourseRepository,
	lr domain.LessonRepository,
	er domain.EnrollmentRepository,
	pr domain.LessonProgressRepository,
	qr domain.QuizRepository,
) domain.ProgressUsecase {
	return &progressUsecase{
		userRepo:       ur,
		courseRepo:     cr,
		lessonRepo:     lr,
		enrollmentRepo: er,
		progressRepo:   pr,
		quizRepo:       qr,
	}
}

// buildLessonStates computes the completed/locked flag pair for each
// lesson. Order 1 is always unlocked; order k unlocks once the lesson at
// order k-1 is completed. A gap in the order sequence keeps everything
// after it locked.
func buildLessonStates(lessons []domain.Lesson, completed map[uint]bool) []domain.LessonState {
	byOrder := make(map[int]*domain.Lesson, len(lessons))
	for i := range lessons {
		byOrder[lessons[i].Order] = &lessons[i]
	}

	states := make([]domain.LessonState, 0, len(lessons))
	for _, lesson := range lessons {
		state := domain.LessonState{
			Lesson:    lesson,
			Completed: completed[lesson.ID],
		}
		if lesson.Order > 1 {
			prev, ok := byOrder[lesson.Order-1]
			if !ok || !completed[prev.ID] {
				state.Locked = true
			}
		}
		states = append(states, state)
	}
	return states
}

// percentComplete floors to a whole percent; no lessons means 0.
func percentComplete(completed, total int) int {
	if total == 0 {
		return 0
	}
	return completed * 100 / total
}

func (uc *progressUsecase) Enroll(ctx context.Context, studentID, courseID uint) (*domain.Enrollment, error) {
	student, err := uc.userRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := requireStudent(student); err != nil {
		return nil, err
	}

	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.Listable() {
		return nil, domain.ErrNotFound
	}

	enrollment, created, err := uc.enrollmentRepo.GetOrCreate(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}

	if created {
		// Materialize one progress row per lesson up front. Lessons added
		// after enrollment get their row lazily on first completion.
		lessons, err := uc.lessonRepo.GetByCourseID(ctx, courseID)
		if err != nil {
			return nil, err
		}
		for _, lesson := range lessons {
			if _, _, err := uc.progressRepo.GetOrCreate(ctx, enrollment.ID, lesson.ID); err != nil {
				return nil, err
			}
		}
	}

	return enrollment, nil
}

func (uc *progressUsecase) LessonPlayer(ctx context.Context, userID, courseID, lessonID uint) (*domain.LessonPlayerData, uint, error) {
	enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, 0, err
	}
	if enrollment == nil {
		return nil, 0, domain.ErrNotEnrolled
	}

	lessons, err := uc.lessonRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, 0, err
	}

	var current *domain.Lesson
	for i := range lessons {
		if lessons[i].ID == lessonID {
			current = &lessons[i]
			break
		}
	}
	if current == nil {
		return nil, 0, domain.ErrNotFound
	}

	rows, err := uc.progressRepo.GetByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, 0, err
	}
	completed := make(map[uint]bool, len(rows))
	completedCount := 0
	for _, row := range rows {
		if row.Completed {
			completed[row.LessonID] = true
			completedCount++
		}
	}

	states := buildLessonStates(lessons, completed)

	for _, state := range states {
		if state.ID == lessonID && state.Locked {
			// Locked: send the student to the first incomplete lesson in
			// the chain instead.
			for _, s := range states {
				if !s.Completed {
					return nil, s.Lesson.ID, nil
				}
			}
			return nil, lessons[0].ID, nil
		}
	}

	data := &domain.LessonPlayerData{
		Lesson:          *current,
		Lessons:         states,
		ProgressPercent: percentComplete(completedCount, len(lessons)),
		CourseCompleted: len(lessons) > 0 && completedCount == len(lessons),
	}

	if data.CourseCompleted {
		quiz, err := uc.quizRepo.GetByCourseID(ctx, courseID)
		if err != nil {
			return nil, 0, err
		}
		data.Quiz = quiz
	}

	return data, 0, nil
}

func (uc *progressUsecase) MarkLessonComplete(ctx context.Context, userID, lessonID uint) error {
	lesson, err := uc.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return err
	}

	enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, userID, lesson.CourseID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return domain.ErrNotEnrolled
	}

	if _, _, err := uc.progressRepo.GetOrCreate(ctx, enrollment.ID, lessonID); err != nil {
		return err
	}
	return uc.progressRepo.MarkCompleted(ctx, enrollment.ID, lessonID)
}

func (uc *progressUsecase) Resume(ctx context.Context, userID, courseID uint) (*domain.Lesson, error) {
	enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, domain.ErrNotEnrolled
	}

	row, err := uc.progressRepo.FirstIncomplete(ctx, enrollment.ID)
	if err != nil {
		return nil, err
	}
	if row != nil {
		return uc.lessonRepo.GetByID(ctx, row.LessonID)
	}

	// Everything done, land on the first lesson.
	lessons, err := uc.lessonRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, domain.ErrNotFound
	}
	return &lessons[0], nil
}

func (uc *progressUsecase) PercentComplete(ctx context.Context, userID, courseID uint) (int, error) {
	enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, userID, courseID)
	if err != nil {
		return 0, err
	}
	if enrollment == nil {
		return 0, domain.ErrNotEnrolled
	}

	// The denominator is the course's lesson count, not the number of
	// progress rows: a lesson added after enrollment has no row yet and
	// still counts as incomplete.
	total, err := uc.lessonRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return 0, err
	}
	completed, err := uc.progressRepo.CountCompleted(ctx, enrollment.ID)
	if err != nil {
		return 0, err
	}
	return percentComplete(int(completed), int(total)), nil
}

func (uc *progressUsecase) GetNotes(ctx context.Context, userID uint) ([]domain.Lesson, error) {
	enrollments, err := uc.enrollmentRepo.GetByStudentID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return []domain.Lesson{}, nil
	}
	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}
	return uc.lessonRepo.GetWithNotes(ctx, courseIDs)
}
