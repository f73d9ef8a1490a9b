package assignment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/contractor"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/notification"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/site"
)

type AssignmentServiceImpl struct {
	assignment.AssignmentRepository
	contractor.ContractorRepository
	site.SiteRepository
	job.JobRepository
	notificationService notification.Service
}

func NewAssignmentService(
	assignmentRepository assignment.AssignmentRepository,
	contractorRepository contractor.ContractorRepository,
	siteRepository site.SiteRepository,
	jobRepository job.JobRepository,
	notificationService notification.Service,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		AssignmentRepository: assignmentRepository,
		ContractorRepository: contractorRepository,
		SiteRepository:       siteRepository,
		JobRepository:        jobRepository,
		notificationService:  notificationService,
	}
}

// mergeSiteContractors builds the per-site contractor map from both sources.
// Keys are lower-cased contractor names so the same company referenced with
// different casing collapses to one entry. When both sources hold the pair,
// the explicit assignment entry wins and keeps its assignment id.
func mergeSiteContractors(assignments []assignment.AssignmentWithName, refs []job.ContractorRef) assignment.SiteContractorMap {
	merged := make(assignment.SiteContractorMap)

	for _, a := range assignments {
		bySite, ok := merged[a.SiteID]
		if !ok {
			bySite = make(map[string]assignment.SiteContractorEntry)
			merged[a.SiteID] = bySite
		}

		id := a.ID
		level := a.AccessLevel
		bySite[strings.ToLower(a.ContractorName)] = assignment.SiteContractorEntry{
			ContractorID:   a.ContractorID,
			ContractorName: a.ContractorName,
			AssignmentID:   &id,
			AccessLevel:    &level,
			Source:         assignment.SourceAssignment,
		}
	}

	for _, ref := range refs {
		bySite, ok := merged[ref.SiteID]
		if !ok {
			bySite = make(map[string]assignment.SiteContractorEntry)
			merged[ref.SiteID] = bySite
		}

		key := strings.ToLower(ref.ContractorName)
		if _, exists := bySite[key]; exists {
			continue
		}
		bySite[key] = assignment.SiteContractorEntry{
			ContractorID:   ref.ContractorID,
			ContractorName: ref.ContractorName,
			Source:         assignment.SourceJob,
		}
	}

	return merged
}

// SiteContractors implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) SiteContractors(ctx context.Context, siteIDs []string) (map[string][]assignment.SiteContractorResponse, error) {
	assignments, err := s.AssignmentRepository.ListBySiteIDs(ctx, siteIDs)
	if err != nil {
		return nil, err
	}
	refs, err := s.JobRepository.ContractorRefsBySiteIDs(ctx, siteIDs)
	if err != nil {
		return nil, err
	}

	merged := mergeSiteContractors(assignments, refs)

	result := make(map[string][]assignment.SiteContractorResponse, len(merged))
	for siteID, bySite := range merged {
		entries := make([]assignment.SiteContractorResponse, 0, len(bySite))
		for _, entry := range bySite {
			var level *string
			if entry.AccessLevel != nil {
				l := string(*entry.AccessLevel)
				level = &l
			}
			entries = append(entries, assignment.SiteContractorResponse{
				ContractorID:   entry.ContractorID,
				ContractorName: entry.ContractorName,
				AssignmentID:   entry.AssignmentID,
				AccessLevel:    level,
				Source:         string(entry.Source),
			})
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].ContractorName < entries[j].ContractorName
		})
		result[siteID] = entries
	}

	return result, nil
}

// ownedSite loads a site and checks it belongs to the acting business.
func (s *AssignmentServiceImpl) ownedSite(ctx context.Context, siteID, actorProfileID string) (site.Site, error) {
	siteData, err := s.SiteRepository.GetByID(ctx, siteID)
	if err != nil {
		return site.Site{}, err
	}
	if siteData.BusinessID != actorProfileID {
		return site.Site{}, site.ErrNotSiteOwner
	}
	return siteData, nil
}

// Assign implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, siteID string, actorProfileID string, req assignment.AssignRequest) (assignment.AssignResult, error) {
	siteData, err := s.ownedSite(ctx, siteID, actorProfileID)
	if err != nil {
		return assignment.AssignResult{}, err
	}

	contractorData, err := s.ContractorRepository.GetByCompanyName(ctx, req.ContractorName)
	if err != nil {
		return assignment.AssignResult{}, err
	}

	// The directory list the client assigned from may be stale; re-check the
	// resolved contractor still exists before writing.
	exists, err := s.ContractorRepository.ExistsByID(ctx, contractorData.ID)
	if err != nil {
		return assignment.AssignResult{}, err
	}
	if !exists {
		return assignment.AssignResult{}, assignment.ErrContractorGone
	}

	existing, err := s.AssignmentRepository.GetBySiteAndContractor(ctx, siteID, contractorData.ID)
	if err == nil {
		return assignment.AssignResult{
			Assignment:      assignment.ToResponse(existing),
			AlreadyAssigned: true,
			Warning:         fmt.Sprintf("%s is already assigned to this site", contractorData.CompanyName),
		}, nil
	}
	if !errors.Is(err, assignment.ErrAssignmentNotFound) {
		return assignment.AssignResult{}, err
	}

	created, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
		SiteID:       siteID,
		ContractorID: contractorData.ID,
		AccessLevel:  assignment.AccessLevel(req.AccessLevel),
	})
	if err != nil {
		return assignment.AssignResult{}, err
	}

	s.notifyContractor(ctx, contractorData.ProfileID, actorProfileID, notification.TypeContractorAssigned,
		"Assigned to a site",
		fmt.Sprintf("You have been assigned to %s", siteData.Name),
		map[string]interface{}{"site_id": siteID, "assignment_id": created.ID})

	return assignment.AssignResult{Assignment: assignment.ToResponse(created)}, nil
}

// Update implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Update(ctx context.Context, assignmentID string, actorProfileID string, req assignment.UpdateRequest) (assignment.Response, error) {
	assignmentData, err := s.AssignmentRepository.GetByID(ctx, assignmentID)
	if err != nil {
		return assignment.Response{}, err
	}
	if _, err := s.ownedSite(ctx, assignmentData.SiteID, actorProfileID); err != nil {
		return assignment.Response{}, err
	}

	updated, err := s.AssignmentRepository.UpdateAccessLevel(ctx, assignmentID, assignment.AccessLevel(req.AccessLevel))
	if err != nil {
		return assignment.Response{}, err
	}
	return assignment.ToResponse(updated), nil
}

// Delete implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Delete(ctx context.Context, assignmentID string, actorProfileID string) error {
	assignmentData, err := s.AssignmentRepository.GetByID(ctx, assignmentID)
	if err != nil {
		return err
	}
	siteData, err := s.ownedSite(ctx, assignmentData.SiteID, actorProfileID)
	if err != nil {
		return err
	}

	if err := s.AssignmentRepository.Delete(ctx, assignmentID); err != nil {
		return err
	}

	if contractorData, err := s.ContractorRepository.GetByID(ctx, assignmentData.ContractorID); err == nil {
		s.notifyContractor(ctx, contractorData.ProfileID, actorProfileID, notification.TypeContractorRemoved,
			"Removed from a site",
			fmt.Sprintf("You are no longer assigned to %s", siteData.Name),
			map[string]interface{}{"site_id": siteData.ID})
	}

	return nil
}

func (s *AssignmentServiceImpl) notifyContractor(ctx context.Context, recipientID, senderID string, typ notification.NotificationType, title, message string, data map[string]interface{}) {
	err := s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		SenderID:    &senderID,
		Type:        typ,
		Title:       title,
		Message:     message,
		Data:        data,
	})
	if err != nil {
		slog.Warn("failed to queue assignment notification", "recipient_id", recipientID, "error", err)
	}
}
