package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"path/filepath"
	"smartlearn-backend/internal/domain"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MaxFileSize is the upload ceiling enforced at the handler level.
const MaxFileSize = 50 * 1024 * 1024 // 50MB

type gridFSStore struct {
	db     *mongo.Database
	bucket *gridfs.Bucket
}

// NewGridFSStore backs domain.FileStore with a MongoDB GridFS bucket.
// It holds lesson videos, pdf notes, thumbnails, profile pictures and
// rendered certificate artifacts.
func NewGridFSStore(db *mongo.Database) (domain.FileStore, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName("uploads"))
	if err != nil {
		return nil, fmt.Errorf("failed to create GridFS bucket: %w", err)
	}
	return &gridFSStore{db: db, bucket: bucket}, nil
}

func (s *gridFSStore) Upload(ctx context.Context, filename, contentType string, r io.Reader, meta domain.FileMetadata) (string, error) {
	if contentType == "" {
		contentType = detectContentType(filename)
	}

	ext := filepath.Ext(filename)
	uniqueFilename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), randomString(8), ext)

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"original_name": filename,
		"uploaded_by":   meta.UploadedBy,
		"kind":          meta.Kind,
		"course_id":     meta.CourseID,
		"content_type":  contentType,
	})

	objectID, err := s.bucket.UploadFromStream(uniqueFilename, r, uploadOpts)
	if err != nil {
		return "", fmt.Errorf("file upload failed: %w", err)
	}
	return objectID.Hex(), nil
}

func (s *gridFSStore) Download(ctx context.Context, fileID string) (io.ReadCloser, *domain.FileInfo, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, domain.ErrNotFound
	}

	info, err := s.getFileInfo(ctx, objectID)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.bucket.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, domain.ErrNotFound
	}
	return stream, info, nil
}

func (s *gridFSStore) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return domain.ErrNotFound
	}
	if err := s.bucket.Delete(objectID); err != nil {
		return fmt.Errorf("file delete failed: %w", err)
	}
	return nil
}

func (s *gridFSStore) getFileInfo(ctx context.Context, objectID primitive.ObjectID) (*domain.FileInfo, error) {
	collection := s.db.Collection("uploads.files")

	var result struct {
		ID         primitive.ObjectID `bson:"_id"`
		Filename   string             `bson:"filename"`
		Length     int64              `bson:"length"`
		UploadDate time.Time          `bson:"uploadDate"`
		Metadata   bson.M             `bson:"metadata"`
	}

	err := collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	meta := domain.FileMetadata{}
	contentType := ""
	if result.Metadata != nil {
		if v, ok := result.Metadata["uploaded_by"].(int64); ok {
			meta.UploadedBy = uint(v)
		} else if v, ok := result.Metadata["uploaded_by"].(int32); ok {
			meta.UploadedBy = uint(v)
		}
		if v, ok := result.Metadata["kind"].(string); ok {
			meta.Kind = v
		}
		if v, ok := result.Metadata["course_id"].(int64); ok {
			meta.CourseID = uint(v)
		} else if v, ok := result.Metadata["course_id"].(int32); ok {
			meta.CourseID = uint(v)
		}
		if v, ok := result.Metadata["content_type"].(string); ok {
			contentType = v
		}
	}
	if contentType == "" {
		contentType = detectContentType(result.Filename)
	}

	return &domain.FileInfo{
		ID:          result.ID.Hex(),
		Filename:    result.Filename,
		ContentType: contentType,
		Size:        result.Length,
		UploadDate:  result.UploadDate,
		Metadata:    meta,
	}, nil
}

// Helper functions

func detectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}

// IsAllowedUpload restricts user uploads to the media types lessons and
// profiles actually use. Internally generated artifacts bypass this.
func IsAllowedUpload(contentType, filename string) bool {
	allowedTypes := map[string]bool{
		"application/pdf": true,
		"video/mp4":       true,
		"video/webm":      true,
		"image/jpeg":      true,
		"image/png":       true,
		"image/gif":       true,
		"image/webp":      true,
	}
	if allowedTypes[contentType] {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := map[string]bool{
		".pdf": true, ".mp4": true, ".webm": true,
		".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	}
	return allowedExts[ext]
}

func randomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
