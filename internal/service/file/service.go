package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
	"github.com/sitelink-app/sitelink-backend-go/internal/pkg/storage"
)

// maxUploadSize caps document uploads at 10 MB.
const maxUploadSize = 10 << 20

var (
	ErrInvalidFileType = errors.New("invalid file type: only jpg, jpeg, png, pdf allowed")
	ErrFileTooLarge    = fmt.Errorf("file exceeds maximum size of %d bytes", maxUploadSize)
)

type FileService interface {
	// UploadJobAttachment stores a photo or document attached to a job. The
	// actor must be the site's business or the contractor on the job.
	UploadJobAttachment(ctx context.Context, actorProfileID, jobID string, file io.Reader, filename string) (string, error)

	// UploadLicenseDocument stores a contractor's license scan. Only the
	// account owning the contractor record may upload.
	UploadLicenseDocument(ctx context.Context, actorProfileID, contractorID string, file io.Reader, filename string) (string, error)

	// UploadRequirementDocument stores evidence for a site compliance item.
	// Only the site's business may upload.
	UploadRequirementDocument(ctx context.Context, businessID, siteID string, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
	job.JobRepository
	site.SiteRepository
	contractor.ContractorRepository
}

func NewFileService(
	storage storage.FileStorage,
	jobRepository job.JobRepository,
	siteRepository site.SiteRepository,
	contractorRepository contractor.ContractorRepository,
) FileService {
	return &fileServiceImpl{
		storage:              storage,
		JobRepository:        jobRepository,
		SiteRepository:       siteRepository,
		ContractorRepository: contractorRepository,
	}
}

var allowedExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

// upload validates the extension, caps the size, and writes the file under a
// collision-free name.
func (s *fileServiceImpl) upload(ctx context.Context, dir, ownerID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedExts[ext]
	if !ok {
		return "", ErrInvalidFileType
	}

	limited := io.LimitReader(file, maxUploadSize+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > maxUploadSize {
		return "", ErrFileTooLarge
	}

	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join(dir, ownerID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(data), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return uploadedPath, nil
}

// UploadJobAttachment implements FileService.
func (s *fileServiceImpl) UploadJobAttachment(ctx context.Context, actorProfileID, jobID string, file io.Reader, filename string) (string, error) {
	jobData, err := s.JobRepository.GetByID(ctx, jobID)
	if err != nil {
		return "", err
	}

	siteData, err := s.SiteRepository.GetByID(ctx, jobData.SiteID)
	if err != nil {
		return "", err
	}
	if siteData.BusinessID != actorProfileID {
		actorContractor, err := s.ContractorRepository.GetByProfileID(ctx, actorProfileID)
		if err != nil {
			if errors.Is(err, contractor.ErrContractorNotFound) {
				return "", job.ErrContractorNotOnJob
			}
			return "", err
		}
		if jobData.ContractorID == nil || *jobData.ContractorID != actorContractor.ID {
			return "", job.ErrContractorNotOnJob
		}
	}

	return s.upload(ctx, "jobs", jobID, file, filename)
}

// UploadLicenseDocument implements FileService.
func (s *fileServiceImpl) UploadLicenseDocument(ctx context.Context, actorProfileID, contractorID string, file io.Reader, filename string) (string, error) {
	contractorData, err := s.ContractorRepository.GetByID(ctx, contractorID)
	if err != nil {
		return "", err
	}
	if contractorData.ProfileID != actorProfileID {
		return "", contractor.ErrNotContractorOwner
	}

	return s.upload(ctx, "licenses", contractorID, file, filename)
}

// UploadRequirementDocument implements FileService.
func (s *fileServiceImpl) UploadRequirementDocument(ctx context.Context, businessID, siteID string, file io.Reader, filename string) (string, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return "", err
	}
	if siteData.BusinessID != businessID {
		return "", site.ErrNotSiteOwner
	}

	return s.upload(ctx, "requirements", siteID, file, filename)
}

// DeleteFile implements FileService.
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL implements FileService.
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
