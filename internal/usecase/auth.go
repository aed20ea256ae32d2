package usecase

import (
	"context"
	"errors"
	"smartlearn-backend/internal/domain"
	"smartlearn-backend/pkg/utils"
)

type authUsecase struct {
	userRepo domain.UserRepository
	mailer   domain.Mailer
}

func NewAuthUsecase(ur domain.UserRepository, m domain.Mailer) domain.AuthUsecase {
	return &authUsecase{userRepo: ur, mailer: m}
}

// Register takes the chosen role as an explicit parameter. Students are
// approved immediately; instructors stay unapproved until an admin acts.
// Admin accounts are never self-registered.
func (uc *authUsecase) Register(ctx context.Context, user *domain.User, role domain.Role) error {
	if role != domain.RoleStudent && role != domain.RoleInstructor {
		return domain.ErrRoleNotAllowed
	}

	existing, err := uc.userRepo.GetByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if existing != nil {
		return domain.ErrDuplicate
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.Role = role
	user.IsApproved = role == domain.RoleStudent

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return err
	}

	if role == domain.RoleInstructor {
		go uc.mailer.Send(user.Email, "SmartLearn instructor application received",
			"Your instructor account is awaiting admin approval. You will be notified once it is active.")
	} else {
		go uc.mailer.Send(user.Email, "Welcome to SmartLearn",
			"Your account is ready. Browse the catalog and enroll in your first course.")
	}
	return nil
}

func (uc *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil || user.ID == 0 {
		return "", errors.New("invalid credentials")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid credentials")
	}

	return utils.GenerateJWT(user.ID, string(user.Role))
}

func (uc *authUsecase) UpdateProfile(ctx context.Context, user *domain.User) error {
	existing, err := uc.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if user.Name != "" {
		existing.Name = user.Name
	}
	if user.Mobile != "" {
		existing.Mobile = user.Mobile
	}
	if user.ProfilePicture != "" {
		existing.ProfilePicture = user.ProfilePicture
	}
	if user.Password != "" {
		hashed, err := utils.HashPassword(user.Password)
		if err != nil {
			return err
		}
		existing.Password = hashed
	}

	return uc.userRepo.Update(ctx, existing)
}

func (uc *authUsecase) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}
