package usecase

import (
	"context"
	"smartlearn-backend/internal/domain"
)

type catalogUsecase struct {
	userRepo       domain.UserRepository
	categoryRepo   domain.CategoryRepository
	courseRepo     domain.CourseRepository
	lessonRepo     domain.LessonRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.LessonProgressRepository
	quizRepo       domain.QuizRepository
	resultRepo     domain.QuizResultRepository
}

func NewCatalogUsecase(
	ur domain.UserRepository,
	catr domain.CategoryRepository,
	cr domain.CourseRepository,
	lr domain.LessonRepository,
	er domain.EnrollmentRepository,
	pr domain.LessonProgressRepository,
	qr domain.QuizRepository,
	rr domain.QuizResultRepository,
) domain.CatalogUsecase {
	return &catalogUsecase{
		userRepo:       ur,
		categoryRepo:   catr,
		courseRepo:     cr,
		lessonRepo:     lr,
		enrollmentRepo: er,
		progressRepo:   pr,
		quizRepo:       qr,
		resultRepo:     rr,
	}
}

func (uc *catalogUsecase) SearchCourses(ctx context.Context, query string) ([]domain.Course, error) {
	return uc.courseRepo.SearchPublic(ctx, query)
}

func (uc *catalogUsecase) GetCourseDetail(ctx context.Context, courseID uint, userID *uint) (*domain.CourseDetail, error) {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var viewer *domain.User
	if userID != nil {
		viewer, err = uc.userRepo.GetByID(ctx, *userID)
		if err != nil {
			return nil, err
		}
	}

	// Drafts and unapproved courses are visible only to their owner and
	// to admins.
	if !course.Listable() {
		if viewer == nil || requireCourseOwner(viewer, course) != nil {
			return nil, domain.ErrNotFound
		}
	}

	lessons, err := uc.lessonRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolledCount, err := uc.enrollmentRepo.CountByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	detail := &domain.CourseDetail{
		Course:        *course,
		EnrolledCount: int(enrolledCount),
	}

	quiz, err := uc.quizRepo.GetByCourseID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if quiz != nil {
		detail.HasQuiz = true
		detail.QuizID = &quiz.ID
	}

	var completed map[uint]bool
	if viewer != nil {
		enrollment, err := uc.enrollmentRepo.GetByStudentAndCourse(ctx, viewer.ID, courseID)
		if err != nil {
			return nil, err
		}
		if enrollment != nil {
			detail.Enrolled = true

			rows, err := uc.progressRepo.GetByEnrollmentID(ctx, enrollment.ID)
			if err != nil {
				return nil, err
			}
			completed = make(map[uint]bool, len(rows))
			completedCount := 0
			for _, row := range rows {
				if row.Completed {
					completed[row.LessonID] = true
					completedCount++
				}
			}

			detail.ProgressPercent = percentComplete(completedCount, len(lessons))
			detail.CompletedAll = len(lessons) > 0 && completedCount == len(lessons)

			if quiz != nil {
				result, err := uc.resultRepo.GetByQuizAndUser(ctx, quiz.ID, viewer.ID)
				if err != nil {
					return nil, err
				}
				detail.QuizPassed = result != nil && result.Passed
			}
		}
	}

	detail.Lessons = buildLessonStates(lessons, completed)
	return detail, nil
}

func (uc *catalogUsecase) CreateCourse(ctx context.Context, instructorID uint, course *domain.Course) error {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	if err := requireApprovedInstructor(instructor); err != nil {
		return err
	}

	if course.CategoryID != nil {
		if _, err := uc.categoryRepo.GetByID(ctx, *course.CategoryID); err != nil {
			return err
		}
	}

	course.InstructorID = instructorID
	course.Status = domain.CourseDraft
	course.IsApproved = false
	return uc.courseRepo.Create(ctx, course)
}

func (uc *catalogUsecase) PublishCourse(ctx context.Context, instructorID, courseID uint) error {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return err
	}

	course.Status = domain.CoursePublished
	return uc.courseRepo.Update(ctx, course)
}

func (uc *catalogUsecase) AddLesson(ctx context.Context, instructorID uint, lesson *domain.Lesson) error {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	course, err := uc.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return err
	}

	if lesson.Order < 1 {
		return domain.ErrDuplicate
	}
	// Unique (course, order) index rejects a reused order value.
	return uc.lessonRepo.Create(ctx, lesson)
}

func (uc *catalogUsecase) DeleteLesson(ctx context.Context, instructorID, lessonID uint) error {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	lesson, err := uc.lessonRepo.GetByID(ctx, lessonID)
	if err != nil {
		return err
	}
	course, err := uc.courseRepo.GetByID(ctx, lesson.CourseID)
	if err != nil {
		return err
	}
	if err := requireCourseOwner(instructor, course); err != nil {
		return err
	}

	return uc.lessonRepo.Delete(ctx, lessonID)
}

func (uc *catalogUsecase) GetInstructorCourses(ctx context.Context, instructorID uint) ([]domain.Course, error) {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(instructor, domain.RoleInstructor); err != nil {
		return nil, err
	}
	return uc.courseRepo.GetByInstructorID(ctx, instructorID)
}

func (uc *catalogUsecase) GetInstructorStudents(ctx context.Context, instructorID uint) ([]domain.Enrollment, error) {
	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(instructor, domain.RoleInstructor); err != nil {
		return nil, err
	}
	return uc.enrollmentRepo.GetByInstructorID(ctx, instructorID)
}

func (uc *catalogUsecase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categoryRepo.GetAll(ctx)
}
