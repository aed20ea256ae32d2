package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"smartlearn-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type certFixture struct {
	certRepo   *MockCertRepo
	userRepo   *MockUserRepo
	courseRepo *MockCourseRepo
	fileStore  *MockFileStore
	renderer   *MockRenderer
	uc         domain.CertificateUsecase
}

func newCertFixture() *certFixture {
	f := &certFixture{
		certRepo:   new(MockCertRepo),
		userRepo:   new(MockUserRepo),
		courseRepo: new(MockCourseRepo),
		fileStore:  new(MockFileStore),
		renderer:   new(MockRenderer),
	}
	f.uc = NewCertificateUsecase(f.certRepo, f.userRepo, f.courseRepo, f.fileStore, f.renderer)
	return f
}

func TestIssueIfAbsent(t *testing.T) {
	ctx := context.Background()

	t.Run("renders and attaches the artifact on first issue", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5}
		f.certRepo.On("GetOrCreate", ctx, uint(1), uint(5)).Return(cert, true, nil)
		f.userRepo.On("GetByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ana"}, nil)
		f.courseRepo.On("GetByID", ctx, uint(5)).Return(&domain.Course{ID: 5, Title: "Go Basics"}, nil)
		f.renderer.On("Render", ctx, mock.AnythingOfType("domain.CertificateData")).
			Return([]byte{1, 2, 3}, "image/png", nil)
		f.fileStore.On("Upload", ctx, "certificate_1_5.png", "image/png", mock.Anything, mock.Anything).
			Return("file-abc", nil)
		f.certRepo.On("Update", ctx, cert).Return(nil)

		got, err := f.uc.IssueIfAbsent(ctx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, "file-abc", got.FileID)
	})

	t.Run("existing certificate with artifact is returned untouched", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5, FileID: "file-abc"}
		f.certRepo.On("GetOrCreate", ctx, uint(1), uint(5)).Return(cert, false, nil)

		got, err := f.uc.IssueIfAbsent(ctx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, cert, got)
		f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})

	t.Run("render failure keeps the artifact-less row", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5}
		f.certRepo.On("GetOrCreate", ctx, uint(1), uint(5)).Return(cert, true, nil)
		f.userRepo.On("GetByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ana"}, nil)
		f.courseRepo.On("GetByID", ctx, uint(5)).Return(&domain.Course{ID: 5, Title: "Go Basics"}, nil)
		f.renderer.On("Render", ctx, mock.AnythingOfType("domain.CertificateData")).
			Return(nil, "", errors.New("font missing"))

		got, err := f.uc.IssueIfAbsent(ctx, 1, 5)
		assert.ErrorIs(t, err, domain.ErrRenderFailed)
		assert.NotNil(t, got)
		assert.Empty(t, got.FileID)
		f.certRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDownloadCertificate(t *testing.T) {
	ctx := context.Background()

	t.Run("streams an existing artifact", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5, FileID: "file-abc"}
		f.certRepo.On("GetByID", ctx, uint(9)).Return(cert, nil)
		f.fileStore.On("Download", ctx, "file-abc").
			Return(io.NopCloser(strings.NewReader("png")), &domain.FileInfo{ID: "file-abc", ContentType: "image/png"}, nil)

		stream, info, err := f.uc.Download(ctx, 1, 9)
		assert.NoError(t, err)
		assert.NotNil(t, stream)
		assert.Equal(t, "image/png", info.ContentType)
	})

	t.Run("retries the render when the artifact is missing", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5}
		f.certRepo.On("GetByID", ctx, uint(9)).Return(cert, nil)
		f.userRepo.On("GetByID", ctx, uint(1)).Return(&domain.User{ID: 1, Name: "Ana"}, nil)
		f.courseRepo.On("GetByID", ctx, uint(5)).Return(&domain.Course{ID: 5, Title: "Go Basics"}, nil)
		f.renderer.On("Render", ctx, mock.AnythingOfType("domain.CertificateData")).
			Return([]byte{1}, "image/png", nil)
		f.fileStore.On("Upload", ctx, "certificate_1_5.png", "image/png", mock.Anything, mock.Anything).
			Return("file-new", nil)
		f.certRepo.On("Update", ctx, cert).Return(nil)
		f.fileStore.On("Download", ctx, "file-new").
			Return(io.NopCloser(strings.NewReader("png")), &domain.FileInfo{ID: "file-new"}, nil)

		stream, info, err := f.uc.Download(ctx, 1, 9)
		assert.NoError(t, err)
		assert.NotNil(t, stream)
		assert.Equal(t, "file-new", info.ID)
	})

	t.Run("someone else's certificate is not found", func(t *testing.T) {
		f := newCertFixture()
		cert := &domain.Certificate{ID: 9, UserID: 1, CourseID: 5, FileID: "file-abc"}
		f.certRepo.On("GetByID", ctx, uint(9)).Return(cert, nil)

		_, _, err := f.uc.Download(ctx, 2, 9)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
