package dto

import (
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
)

type CreateMemberRequest struct {
	Name         string      `json:"name"`
	Email        *string     `json:"email,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Role         entity.Role `json:"role"`
	IsFreelancer bool        `json:"is_freelancer"`
}

type UpdateMemberRequest struct {
	Name         string      `json:"name"`
	Email        *string     `json:"email,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Role         entity.Role `json:"role"`
	IsFreelancer bool        `json:"is_freelancer"`
}

// SetAvailabilityRequest replaces the member's whole availability calendar.
// Keys are dates (2006-01-02), values "available" or "busy".
type SetAvailabilityRequest struct {
	Availability entity.AvailabilityMap `json:"availability"`
}
