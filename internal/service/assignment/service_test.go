package assignment

import (
	"testing"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/assignment"
	"github.com/sitelink-app/sitelink-backend-go/internal/domain/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSiteContractors_AssignmentOnly(t *testing.T) {
	assignments := []assignment.AssignmentWithName{
		{
			Assignment: assignment.Assignment{
				ID:           "a1",
				SiteID:       "s1",
				ContractorID: "c1",
				AccessLevel:  assignment.AccessStandard,
			},
			ContractorName: "Acme Plumbing",
		},
	}

	merged := mergeSiteContractors(assignments, nil)

	require.Len(t, merged, 1)
	entry, ok := merged["s1"]["acme plumbing"]
	require.True(t, ok)
	assert.Equal(t, "c1", entry.ContractorID)
	assert.Equal(t, "Acme Plumbing", entry.ContractorName)
	require.NotNil(t, entry.AssignmentID)
	assert.Equal(t, "a1", *entry.AssignmentID)
	assert.Equal(t, assignment.SourceAssignment, entry.Source)
}

func TestMergeSiteContractors_JobRefOnly(t *testing.T) {
	refs := []job.ContractorRef{
		{SiteID: "s1", ContractorID: "c2", ContractorName: "Brightspark Electric"},
	}

	merged := mergeSiteContractors(nil, refs)

	entry, ok := merged["s1"]["brightspark electric"]
	require.True(t, ok)
	assert.Equal(t, "c2", entry.ContractorID)
	assert.Nil(t, entry.AssignmentID)
	assert.Nil(t, entry.AccessLevel)
	assert.Equal(t, assignment.SourceJob, entry.Source)
}

func TestMergeSiteContractors_AssignmentWinsOverJobRef(t *testing.T) {
	assignments := []assignment.AssignmentWithName{
		{
			Assignment: assignment.Assignment{
				ID:           "a1",
				SiteID:       "s1",
				ContractorID: "c1",
				AccessLevel:  assignment.AccessFull,
			},
			ContractorName: "Acme Plumbing",
		},
	}
	refs := []job.ContractorRef{
		{SiteID: "s1", ContractorID: "c1", ContractorName: "ACME PLUMBING"},
	}

	merged := mergeSiteContractors(assignments, refs)

	require.Len(t, merged["s1"], 1)
	entry := merged["s1"]["acme plumbing"]
	require.NotNil(t, entry.AssignmentID)
	assert.Equal(t, "a1", *entry.AssignmentID)
	assert.Equal(t, assignment.SourceAssignment, entry.Source)
	// The explicit assignment's casing is kept.
	assert.Equal(t, "Acme Plumbing", entry.ContractorName)
}

func TestMergeSiteContractors_CaseInsensitiveDeduplication(t *testing.T) {
	refs := []job.ContractorRef{
		{SiteID: "s1", ContractorID: "c1", ContractorName: "Acme Plumbing"},
		{SiteID: "s1", ContractorID: "c1", ContractorName: "acme plumbing"},
		{SiteID: "s1", ContractorID: "c1", ContractorName: "ACME PLUMBING"},
	}

	merged := mergeSiteContractors(nil, refs)

	assert.Len(t, merged["s1"], 1)
}

func TestMergeSiteContractors_MultipleSites(t *testing.T) {
	assignments := []assignment.AssignmentWithName{
		{
			Assignment: assignment.Assignment{
				ID: "a1", SiteID: "s1", ContractorID: "c1", AccessLevel: assignment.AccessStandard,
			},
			ContractorName: "Acme Plumbing",
		},
	}
	refs := []job.ContractorRef{
		{SiteID: "s2", ContractorID: "c2", ContractorName: "Brightspark Electric"},
	}

	merged := mergeSiteContractors(assignments, refs)

	require.Len(t, merged, 2)
	assert.Len(t, merged["s1"], 1)
	assert.Len(t, merged["s2"], 1)
	assert.Equal(t, assignment.SourceAssignment, merged["s1"]["acme plumbing"].Source)
	assert.Equal(t, assignment.SourceJob, merged["s2"]["brightspark electric"].Source)
}

func TestMergeSiteContractors_Empty(t *testing.T) {
	merged := mergeSiteContractors(nil, nil)
	assert.Empty(t, merged)
}
