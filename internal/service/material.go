package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"questshare/internal/catalog"
	"questshare/internal/model"
	"questshare/internal/repository"
	"questshare/internal/storage"
)

const (
	// MaxFileSize caps uploads at 5 MiB, matching the portal's upload rule.
	MaxFileSize = 5 * 1024 * 1024

	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

// allowedFileTypes are the accepted upload MIME types: PDF and Word documents.
var allowedFileTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var validate = validator.New()

// UploadInput carries the caller-supplied material metadata. Status is never
// part of the input: every new material enters the store as pending.
type UploadInput struct {
	Title       string             `json:"title" validate:"required,min=5"`
	Description string             `json:"description" validate:"required,min=10"`
	Type        model.MaterialType `json:"type" validate:"required"`
	Department  string             `json:"department" validate:"required"`
	Semester    int                `json:"semester" validate:"required,min=1,max=8"`
	Subject     string             `json:"subject" validate:"required"`
	FileName    string             `json:"file_name" validate:"required"`
	FileSize    int64              `json:"file_size"`
	ContentType string             `json:"content_type"`
}

// CleanupEnqueuer schedules removal of an orphaned blob when the inline
// rollback after a failed record write could not delete it.
type CleanupEnqueuer interface {
	EnqueueCleanup(ctx context.Context, objectKey string) error
}

// MaterialService defines the material lifecycle use cases.
type MaterialService interface {
	// Upload validates the intake, writes the file to object storage, then
	// persists the record with status pending. No writes happen on validation
	// failure; a record-write failure after the blob write surfaces as
	// *UploadError and triggers blob compensation.
	Upload(ctx context.Context, uploader *model.Account, in UploadInput, r io.Reader) (*model.Material, error)

	// ListApproved returns approved materials of one type, newest first,
	// narrowed by the client-side filter.
	ListApproved(ctx context.Context, mtype model.MaterialType, f MaterialFilter) ([]model.Material, error)

	// ListRecent returns the newest approved materials of any type, bounded.
	ListRecent(ctx context.Context, limit int) ([]model.Material, error)

	// ListMine returns every material the account uploaded, any status.
	ListMine(ctx context.Context, uploader *model.Account) ([]model.Material, error)
}

type materialService struct {
	store   storage.Storage
	repo    repository.MaterialRepository
	cleanup CleanupEnqueuer
}

// NewMaterialService constructs a new MaterialService. cleanup may be nil, in
// which case a failed rollback delete is only reported, not compensated.
func NewMaterialService(store storage.Storage, repo repository.MaterialRepository, cleanup CleanupEnqueuer) MaterialService {
	return &materialService{store: store, repo: repo, cleanup: cleanup}
}

func (s *materialService) Upload(ctx context.Context, uploader *model.Account, in UploadInput, r io.Reader) (*model.Material, error) {
	if uploader == nil {
		return nil, ErrUnauthenticated
	}
	if err := validateUpload(in); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, &ValidationError{Fields: map[string]string{"file": "file is required"}}
	}

	// Collision-resistant object key scoped by uploader.
	key := fmt.Sprintf("materials/%s/%d-%s", uploader.ID, time.Now().UnixMilli(), in.FileName)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.FileSize,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.FileName,
			"uploader-id":       uploader.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	m := &model.Material{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Type:         in.Type,
		Department:   in.Department,
		Semester:     in.Semester,
		Subject:      in.Subject,
		FileURL:      s.store.PublicURL(objInfo.Key),
		FileName:     in.FileName,
		FileSize:     objInfo.Size,
		FileType:     in.ContentType,
		UploaderID:   uploader.ID,
		UploaderName: uploader.FullName,
		CreatedAt:    time.Now().UTC(),
		Status:       model.StatusPending,
	}

	stored, err := s.repo.Create(ctx, m)
	if err != nil {
		// Rollback: delete the object from storage. If that also fails, hand
		// the key to the cleanup queue so the worker can retry it.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			if s.cleanup != nil {
				if qErr := s.cleanup.EnqueueCleanup(ctx, key); qErr != nil {
					return nil, &UploadError{ObjectKey: key, Err: fmt.Errorf("record save failed: %v; rollback delete failed: %v; cleanup enqueue failed: %v", err, delErr, qErr)}
				}
			}
			return nil, &UploadError{ObjectKey: key, Err: fmt.Errorf("record save failed: %v; rollback delete failed: %v", err, delErr)}
		}
		return nil, fmt.Errorf("record save failed: %w", err)
	}
	return stored, nil
}

func (s *materialService) ListApproved(ctx context.Context, mtype model.MaterialType, f MaterialFilter) ([]model.Material, error) {
	if !mtype.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"type": "unknown material type"}}
	}
	items, err := s.repo.List(ctx, repository.ListQuery{Type: mtype, Status: model.StatusApproved})
	if err != nil {
		return nil, err
	}
	return ApplyFilter(items, f), nil
}

func (s *materialService) ListRecent(ctx context.Context, limit int) ([]model.Material, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.repo.List(ctx, repository.ListQuery{Status: model.StatusApproved, Limit: limit})
}

func (s *materialService) ListMine(ctx context.Context, uploader *model.Account) ([]model.Material, error) {
	if uploader == nil {
		return nil, ErrUnauthenticated
	}
	return s.repo.List(ctx, repository.ListQuery{UploaderID: uploader.ID})
}

// validateUpload applies the intake rules before any store or blob write.
func validateUpload(in UploadInput) error {
	fields := map[string]string{}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			switch fe.Field() {
			case "Title":
				fields["title"] = "Title must be at least 5 characters."
			case "Description":
				fields["description"] = "Description must be at least 10 characters."
			case "Type":
				fields["type"] = "Please select a material type."
			case "Department":
				fields["department"] = "Please select a department."
			case "Semester":
				fields["semester"] = "Semester must be between 1 and 8."
			case "Subject":
				fields["subject"] = "Please select a subject."
			case "FileName":
				fields["file"] = "file is required"
			}
		}
	}

	if in.Type != "" && !in.Type.Valid() {
		fields["type"] = "Please select a material type."
	}
	if _, ok := fields["department"]; !ok {
		if _, ok := fields["semester"]; !ok {
			if _, ok := fields["subject"]; !ok {
				if !catalog.Valid(in.Department, in.Semester, in.Subject) {
					fields["subject"] = "Subject does not belong to the selected department and semester."
				}
			}
		}
	}
	if in.FileSize > MaxFileSize {
		fields["file"] = "File size must be less than 5MB."
	}
	if in.ContentType != "" && !allowedFileTypes[in.ContentType] {
		fields["file"] = "Only .pdf and .doc/.docx files are allowed."
	}
	if in.ContentType == "" {
		fields["file"] = "Only .pdf and .doc/.docx files are allowed."
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
