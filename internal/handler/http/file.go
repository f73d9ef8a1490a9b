package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
	"github.com/sitelink-app/sitelink-backend-go/internal/service/file"
)

// FileHandler exposes document uploads. The returned URL is stored through
// the owning resource's update endpoint.
type FileHandler interface {
	UploadJobAttachment(w http.ResponseWriter, r *http.Request)
	UploadLicenseDocument(w http.ResponseWriter, r *http.Request)
	UploadRequirementDocument(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &fileHandlerImpl{fileService: fileService}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func handleUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, file.ErrInvalidFileType) || errors.Is(err, file.ErrFileTooLarge) {
		response.BadRequest(w, err.Error(), nil)
		return
	}
	response.HandleError(w, err)
}

// UploadJobAttachment stores a photo or document attached to a job
func (h *fileHandlerImpl) UploadJobAttachment(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	jobID := chi.URLParam(r, "id")
	if jobID == "" {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	formFile, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "File is required", nil)
			return
		}
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}
	defer formFile.Close()

	url, err := h.fileService.UploadJobAttachment(r.Context(), actorProfileID, jobID, formFile, fileHeader.Filename)
	if err != nil {
		slog.Error("Job attachment upload failed", "error", err, "job_id", jobID)
		handleUploadError(w, err)
		return
	}

	response.Created(w, "File uploaded successfully", uploadResponse{URL: url})
}

// UploadLicenseDocument stores a contractor's license scan
func (h *fileHandlerImpl) UploadLicenseDocument(w http.ResponseWriter, r *http.Request) {
	actorProfileID := middleware.ProfileID(r)
	contractorID := chi.URLParam(r, "id")
	if contractorID == "" {
		response.BadRequest(w, "Contractor ID is required", nil)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	formFile, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "File is required", nil)
			return
		}
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}
	defer formFile.Close()

	url, err := h.fileService.UploadLicenseDocument(r.Context(), actorProfileID, contractorID, formFile, fileHeader.Filename)
	if err != nil {
		slog.Error("License document upload failed", "error", err, "contractor_id", contractorID)
		handleUploadError(w, err)
		return
	}

	response.Created(w, "File uploaded successfully", uploadResponse{URL: url})
}

// UploadRequirementDocument stores evidence for a site compliance item
func (h *fileHandlerImpl) UploadRequirementDocument(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	siteID := chi.URLParam(r, "id")
	if siteID == "" {
		response.BadRequest(w, "Site ID is required", nil)
		return
	}

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	formFile, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "File is required", nil)
			return
		}
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}
	defer formFile.Close()

	url, err := h.fileService.UploadRequirementDocument(r.Context(), businessID, siteID, formFile, fileHeader.Filename)
	if err != nil {
		slog.Error("Requirement document upload failed", "error", err, "site_id", siteID)
		handleUploadError(w, err)
		return
	}

	response.Created(w, "File uploaded successfully", uploadResponse{URL: url})
}
