package job

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/notification"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
)

type JobServiceImpl struct {
	job.JobRepository
	site.SiteRepository
	contractor.ContractorRepository
	notificationService notification.Service
}

func NewJobService(
	jobRepository job.JobRepository,
	siteRepository site.SiteRepository,
	contractorRepository contractor.ContractorRepository,
	notificationService notification.Service,
) job.JobService {
	return &JobServiceImpl{
		JobRepository:        jobRepository,
		SiteRepository:       siteRepository,
		ContractorRepository: contractorRepository,
		notificationService:  notificationService,
	}
}

func (s *JobServiceImpl) ownedSite(ctx context.Context, siteID, businessID string) (site.Site, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return site.Site{}, err
	}
	if siteData.BusinessID != businessID {
		return site.Site{}, site.ErrNotSiteOwner
	}
	return siteData, nil
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, businessID string, req job.CreateRequest) (job.Response, error) {
	if _, err := s.ownedSite(ctx, req.SiteID, businessID); err != nil {
		return job.Response{}, err
	}

	var contractorID *string
	if req.ContractorName != nil {
		contractorData, err := s.ContractorRepository.GetByCompanyName(ctx, *req.ContractorName)
		if err != nil {
			return job.Response{}, err
		}
		contractorID = &contractorData.ID
	}

	created, err := s.JobRepository.Create(ctx, job.Job{
		SiteID:        req.SiteID,
		ContractorID:  contractorID,
		ServiceType:   req.ServiceType,
		Title:         req.Title,
		Description:   req.Description,
		Status:        job.StatusPending,
		Priority:      job.Priority(req.Priority),
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return job.Response{}, err
	}

	return job.ToResponse(created), nil
}

// authorizeParticipant checks the actor is the site's business or the
// contractor on the job. Returns the job's site and whether the actor is the
// business.
func (s *JobServiceImpl) authorizeParticipant(ctx context.Context, actorProfileID string, jobData job.Job) (site.Site, bool, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, jobData.SiteID)
	if err != nil {
		return site.Site{}, false, err
	}
	if siteData.BusinessID == actorProfileID {
		return siteData, true, nil
	}

	actorContractor, err := s.ContractorRepository.GetByProfileID(ctx, actorProfileID)
	if err != nil {
		if errors.Is(err, contractor.ErrContractorNotFound) {
			return site.Site{}, false, job.ErrContractorNotOnJob
		}
		return site.Site{}, false, err
	}
	if jobData.ContractorID == nil || *jobData.ContractorID != actorContractor.ID {
		return site.Site{}, false, job.ErrContractorNotOnJob
	}

	return siteData, false, nil
}

// Get implements job.JobService.
func (s *JobServiceImpl) Get(ctx context.Context, actorProfileID, id string) (job.Response, error) {
	jobData, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.Response{}, err
	}
	if _, _, err := s.authorizeParticipant(ctx, actorProfileID, jobData); err != nil {
		return job.Response{}, err
	}
	return job.ToResponse(jobData), nil
}

// ListBySite implements job.JobService.
func (s *JobServiceImpl) ListBySite(ctx context.Context, businessID, siteID string) ([]job.Response, error) {
	if _, err := s.ownedSite(ctx, siteID, businessID); err != nil {
		return nil, err
	}

	jobs, err := s.JobRepository.ListBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}
	return toResponses(jobs), nil
}

// ListMine implements job.JobService.
func (s *JobServiceImpl) ListMine(ctx context.Context, contractorProfileID string) ([]job.Response, error) {
	contractorData, err := s.ContractorRepository.GetByProfileID(ctx, contractorProfileID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.JobRepository.ListByContractor(ctx, contractorData.ID)
	if err != nil {
		return nil, err
	}
	return toResponses(jobs), nil
}

func toResponses(jobs []job.Job) []job.Response {
	responses := make([]job.Response, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, job.ToResponse(j))
	}
	return responses
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, businessID, id string, req job.UpdateRequest) (job.Response, error) {
	jobData, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.Response{}, err
	}
	if _, err := s.ownedSite(ctx, jobData.SiteID, businessID); err != nil {
		return job.Response{}, err
	}

	updated, err := s.JobRepository.Update(ctx, id, req)
	if err != nil {
		return job.Response{}, err
	}
	return job.ToResponse(updated), nil
}

// Transition implements job.JobService.
func (s *JobServiceImpl) Transition(ctx context.Context, actorProfileID, id string, req job.TransitionRequest) (job.Response, error) {
	jobData, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.Response{}, err
	}

	siteData, isBusiness, err := s.authorizeParticipant(ctx, actorProfileID, jobData)
	if err != nil {
		return job.Response{}, err
	}

	next := job.Status(req.Status)
	if !jobData.CanTransitionTo(next) {
		return job.Response{}, job.ErrInvalidTransition
	}

	updated, err := s.JobRepository.UpdateStatus(ctx, id, next)
	if err != nil {
		return job.Response{}, err
	}

	s.notifyTransition(ctx, updated, siteData, actorProfileID, isBusiness)

	return job.ToResponse(updated), nil
}

// notifyTransition tells the other party about the status change.
func (s *JobServiceImpl) notifyTransition(ctx context.Context, jobData job.Job, siteData site.Site, actorProfileID string, actorIsBusiness bool) {
	var recipientID string
	if actorIsBusiness {
		if jobData.ContractorID == nil {
			return
		}
		contractorData, err := s.ContractorRepository.GetByID(ctx, *jobData.ContractorID)
		if err != nil {
			slog.Warn("failed to resolve contractor for job notification", "job_id", jobData.ID, "error", err)
			return
		}
		recipientID = contractorData.ProfileID
	} else {
		recipientID = siteData.BusinessID
	}

	err := s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		SenderID:    &actorProfileID,
		Type:        notification.TypeJobStatusChanged,
		Title:       "Job status updated",
		Message:     fmt.Sprintf("%q is now %s", jobData.Title, jobData.Status),
		Data:        map[string]interface{}{"job_id": jobData.ID, "status": string(jobData.Status)},
	})
	if err != nil {
		slog.Warn("failed to queue job notification", "job_id", jobData.ID, "error", err)
	}
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, businessID, id string) error {
	jobData, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.ownedSite(ctx, jobData.SiteID, businessID); err != nil {
		return err
	}
	return s.JobRepository.Delete(ctx, id)
}
