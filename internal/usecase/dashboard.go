package usecase

import (
	"context"
	"smartlearn-backend/internal/domain"
)

type dashboardUsecase struct {
	userRepo       domain.UserRepository
	courseRepo     domain.CourseRepository
	lessonRepo     domain.LessonRepository
	enrollmentRepo domain.EnrollmentRepository
	progressRepo   domain.LessonProgressRepository
	quizRepo       domain.QuizRepository
	resultRepo     domain.QuizResultRepository
	certRepo       domain.CertificateRepository
}

func NewDashboardUsecase(
	ur domain.UserRepository,
	cr domain.CourseRepository,
	lr domain.LessonRepository,
	er domain.EnrollmentRepository,
	pr domain.LessonProgressRepository,
	qr domain.QuizRepository,
	rr domain.QuizResultRepository,
	certr domain.CertificateRepository,
) domain.DashboardUsecase {
	return &dashboardUsecase{
		userRepo:       ur,
		courseRepo:     cr,
		lessonRepo:     lr,
		enrollmentRepo: er,
		progressRepo:   pr,
		quizRepo:       qr,
		resultRepo:     rr,
		certRepo:       certr,
	}
}

func (uc *dashboardUsecase) GetStudentDashboard(ctx context.Context, userID uint) (*domain.StudentDashboardData, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireStudent(user); err != nil {
		return nil, err
	}

	enrollments, err := uc.enrollmentRepo.GetByStudentID(ctx, userID)
	if err != nil {
		return nil, err
	}

	data := &domain.StudentDashboardData{User: user}
	for _, enrollment := range enrollments {
		lessonCount, err := uc.lessonRepo.CountByCourseID(ctx, enrollment.CourseID)
		if err != nil {
			return nil, err
		}
		completedCount, err := uc.progressRepo.CountCompleted(ctx, enrollment.ID)
		if err != nil {
			return nil, err
		}

		row := domain.EnrollmentWithProgress{
			Enrollment:       enrollment,
			LessonCount:      int(lessonCount),
			CompletedLessons: int(completedCount),
			ProgressPercent:  percentComplete(int(completedCount), int(lessonCount)),
		}
		if lessonCount > 0 && completedCount == lessonCount {
			data.CompletedCourses++
		}
		data.Enrollments = append(data.Enrollments, row)
	}

	certs, err := uc.certRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	data.TotalCertificates = len(certs)

	return data, nil
}

func (uc *dashboardUsecase) GetInstructorDashboard(ctx context.Context, userID uint) (*domain.InstructorDashboardData, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireRole(user, domain.RoleInstructor); err != nil {
		return nil, err
	}

	courses, err := uc.courseRepo.GetByInstructorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	pending := 0
	for _, course := range courses {
		if !course.IsApproved {
			pending++
		}
	}

	studentCount, err := uc.enrollmentRepo.CountDistinctStudentsByInstructor(ctx, userID)
	if err != nil {
		return nil, err
	}
	quizCount, err := uc.quizRepo.CountByInstructorID(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := uc.resultRepo.GetRecentByInstructor(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	return &domain.InstructorDashboardData{
		TotalCourses:   len(courses),
		PendingCourses: pending,
		TotalStudents:  int(studentCount),
		TotalQuizzes:   int(quizCount),
		RecentResults:  recent,
	}, nil
}

func (uc *dashboardUsecase) GetAdminDashboard(ctx context.Context, userID uint) (*domain.AdminDashboardData, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(user); err != nil {
		return nil, err
	}

	students, err := uc.userRepo.CountByRole(ctx, domain.RoleStudent)
	if err != nil {
		return nil, err
	}
	instructors, err := uc.userRepo.CountByRole(ctx, domain.RoleInstructor)
	if err != nil {
		return nil, err
	}
	pendingInstructors, err := uc.userRepo.CountPendingInstructors(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := uc.courseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingCourses, err := uc.courseRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	certs, err := uc.certRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.AdminDashboardData{
		TotalUsers:         int(students + instructors),
		TotalStudents:      int(students),
		TotalInstructors:   int(instructors),
		PendingInstructors: int(pendingInstructors),
		TotalCourses:       int(courses),
		PendingCourses:     int(pendingCourses),
		TotalCertificates:  int(certs),
	}, nil
}
