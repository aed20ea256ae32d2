package usecase

import (
	"context"
	"smartlearn-backend/internal/domain"

	"github.com/google/uuid"
)

type paymentUsecase struct {
	paymentRepo     domain.PaymentRepository
	courseRepo      domain.CourseRepository
	progressUsecase domain.ProgressUsecase
}

func NewPaymentUsecase(
	pr domain.PaymentRepository,
	cr domain.CourseRepository,
	pu domain.ProgressUsecase,
) domain.PaymentUsecase {
	return &paymentUsecase{
		paymentRepo:     pr,
		courseRepo:      cr,
		progressUsecase: pu,
	}
}

// PayForCourse is a simulated gateway: the transaction always settles
// immediately. Enrollment reuses the idempotent enroll path, so paying
// twice never duplicates the enrollment.
func (uc *paymentUsecase) PayForCourse(ctx context.Context, userID, courseID uint) (*domain.Payment, *domain.Enrollment, error) {
	course, err := uc.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	if !course.Listable() {
		return nil, nil, domain.ErrNotFound
	}

	payment := &domain.Payment{
		UserID:        userID,
		CourseID:      courseID,
		Amount:        course.Price,
		Status:        domain.PaymentCompleted,
		TransactionID: "TXN-" + uuid.NewString(),
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		return nil, nil, err
	}

	enrollment, err := uc.progressUsecase.Enroll(ctx, userID, courseID)
	if err != nil {
		return payment, nil, err
	}
	return payment, enrollment, nil
}

func (uc *paymentUsecase) GetUserPayments(ctx context.Context, userID uint) ([]domain.Payment, error) {
	return uc.paymentRepo.GetByUserID(ctx, userID)
}
