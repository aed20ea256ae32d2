package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"smartlearn-backend/internal/domain"
)

type certificateUsecase struct {
	certRepo   domain.CertificateRepository
	userRepo   domain.UserRepository
	courseRepo domain.CourseRepository
	fileStore  domain.FileStore
	renderer   domain.CertificateRenderer
}

func NewCertificateUsecase(
	cr domain.CertificateRepository,
	ur domain.UserRepository,
	cor domain.CourseRepository,
	fs domain.FileStore,
	rend domain.CertificateRenderer,
) domain.CertificateUsecase {
	return &certificateUsecase{
		certRepo:   cr,
		userRepo:   ur,
		courseRepo: cor,
		fileStore:  fs,
		renderer:   rend,
	}
}

func (uc *certificateUsecase) IssueIfAbsent(ctx context.Context, userID, courseID uint) (*domain.Certificate, error) {
	cert, _, err := uc.certRepo.GetOrCreate(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if cert.FileID != "" {
		return cert, nil
	}

	// The row stays without an artifact when rendering fails; the next
	// passing event or download retries it.
	if err := uc.renderAndAttach(ctx, cert); err != nil {
		log.Printf("certificate %d render failed: %v", cert.ID, err)
		return cert, domain.ErrRenderFailed
	}
	return cert, nil
}

func (uc *certificateUsecase) renderAndAttach(ctx context.Context, cert *domain.Certificate) error {
	user, err := uc.userRepo.GetByID(ctx, cert.UserID)
	if err != nil {
		return err
	}
	course, err := uc.courseRepo.GetByID(ctx, cert.CourseID)
	if err != nil {
		return err
	}

	artifact, contentType, err := uc.renderer.Render(ctx, domain.CertificateData{
		StudentName: user.Name,
		CourseTitle: course.Title,
		IssueDate:   cert.IssueDate,
	})
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("certificate_%d_%d.png", cert.UserID, cert.CourseID)
	fileID, err := uc.fileStore.Upload(ctx, filename, contentType, bytes.NewReader(artifact), domain.FileMetadata{
		UploadedBy: cert.UserID,
		Kind:       "certificate",
		CourseID:   cert.CourseID,
	})
	if err != nil {
		return err
	}

	cert.FileID = fileID
	return uc.certRepo.Update(ctx, cert)
}

func (uc *certificateUsecase) GetUserCertificates(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	return uc.certRepo.GetByUserID(ctx, userID)
}

func (uc *certificateUsecase) Download(ctx context.Context, userID, certID uint) (io.ReadCloser, *domain.FileInfo, error) {
	cert, err := uc.certRepo.GetByID(ctx, certID)
	if err != nil {
		return nil, nil, err
	}
	if cert.UserID != userID {
		return nil, nil, domain.ErrNotFound
	}

	if cert.FileID == "" {
		// A previous render failed; retry before serving.
		if err := uc.renderAndAttach(ctx, cert); err != nil {
			return nil, nil, domain.ErrRenderFailed
		}
	}

	return uc.fileStore.Download(ctx, cert.FileID)
}
