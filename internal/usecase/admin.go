package usecase

import (
	"context"
	"smartlearn-backend/internal/domain"
	"smartlearn-backend/pkg/utils"
)

type adminUsecase struct {
	userRepo     domain.UserRepository
	courseRepo   domain.CourseRepository
	categoryRepo domain.CategoryRepository
	mailer       domain.Mailer
}

func NewAdminUsecase(
	ur domain.UserRepository,
	cr domain.CourseRepository,
	catr domain.CategoryRepository,
	m domain.Mailer,
) domain.AdminUsecase {
	return &adminUsecase{
		userRepo:     ur,
		courseRepo:   cr,
		categoryRepo: catr,
		mailer:       m,
	}
}

func (uc *adminUsecase) requireAdminByID(ctx context.Context, adminID uint) error {
	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	return requireAdmin(admin)
}

func (uc *adminUsecase) ApproveInstructor(ctx context.Context, adminID, instructorID uint) error {
	if err := uc.requireAdminByID(ctx, adminID); err != nil {
		return err
	}

	instructor, err := uc.userRepo.GetByID(ctx, instructorID)
	if err != nil {
		return err
	}
	if err := requireRole(instructor, domain.RoleInstructor); err != nil {
		return err
	}

	instructor.IsApproved = true
	if err := uc.userRepo.Update(ctx, instructor); err != nil {
		return err
	}

	go uc.mailer.Send(instructor.Email, "Instructor account approved",
		"Your SmartLearn instructor account is now active. You can start creating courses.")
	return nil
}

func (uc *adminUsecase) ApproveCourse(ctx context.Context, adminID, courseID uint) error {
	if err := uc.requireAdminByID(ctx, adminID); err != nil {
		return err
	}

	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	course.IsApproved = true
	return uc.courseRepo.Update(ctx, course)
}

func (uc *adminUsecase) CreateCategory(ctx context.Context, adminID uint, category *domain.Category) error {
	if err := uc.requireAdminByID(ctx, adminID); err != nil {
		return err
	}

	category.Slug = utils.Slugify(category.Name)
	return uc.categoryRepo.Create(ctx, category)
}

func (uc *adminUsecase) GetAllUsers(ctx context.Context, adminID uint) ([]domain.User, error) {
	if err := uc.requireAdminByID(ctx, adminID); err != nil {
		return nil, err
	}
	return uc.userRepo.GetAll(ctx)
}
