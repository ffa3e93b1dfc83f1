package service

import (
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	workflowentity "github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"
)

// AvailabilityFilter decides which roster members are eligible for a role on
// an event. It is stateless; two calls with identical inputs return identical
// output, including order.
type AvailabilityFilter struct{}

func NewAvailabilityFilter() *AvailabilityFilter {
	return &AvailabilityFilter{}
}

// CandidatesFor returns members whose role matches, who are not marked busy
// on the event date, and who do not already hold an assignment on the event
// in any role. Roster insertion order is preserved, no ranking.
func (f *AvailabilityFilter) CandidatesFor(roster []entity.TeamMember, event *workflowentity.ScheduledEvent, role entity.Role) []entity.TeamMember {
	candidates := make([]entity.TeamMember, 0, len(roster))
	for i := range roster {
		m := roster[i]
		if m.Role != role {
			continue
		}
		if m.BusyOn(event.Date) {
			continue
		}
		if event.AssignmentFor(m.ID) != nil {
			continue
		}
		candidates = append(candidates, m)
	}
	return candidates
}

// AssignedEntry pairs one assignment with its roster member. Member is nil
// when the id is no longer on the roster; callers treat that as an unknown
// member, not an error.
type AssignedEntry struct {
	Assignment workflowentity.EventAssignment `json:"assignment"`
	Member     *entity.TeamMember             `json:"member,omitempty"`
}

// AssignedFor returns one entry per assignment in assignment order.
func (f *AvailabilityFilter) AssignedFor(event *workflowentity.ScheduledEvent, roster []entity.TeamMember) []AssignedEntry {
	byID := make(map[string]*entity.TeamMember, len(roster))
	for i := range roster {
		byID[roster[i].ID.String()] = &roster[i]
	}

	entries := make([]AssignedEntry, 0, len(event.Assignments))
	for _, a := range event.Assignments {
		entries = append(entries, AssignedEntry{
			Assignment: a,
			Member:     byID[a.TeamMemberID.String()],
		})
	}
	return entries
}
