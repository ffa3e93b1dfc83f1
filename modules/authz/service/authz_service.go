package service

import (
	"context"

	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	teamrepo "github.com/DevTechAI/photosyncwork-sub003/modules/team/repository"

	"github.com/google/uuid"
)

// AuthzService answers staffing permission checks. Only production
// coordinators may assign members to events; the check is answered from the
// roster, not from token claims, so a revoked member loses the right
// immediately.
type AuthzService struct {
	roster teamrepo.TeamRepositoryInterface
}

func NewAuthzService(roster teamrepo.TeamRepositoryInterface) *AuthzService {
	return &AuthzService{roster: roster}
}

func (s *AuthzService) MayAssign(ctx context.Context, actorID, eventID uuid.UUID) bool {
	member, err := s.roster.GetMemberByID(ctx, actorID)
	if err != nil {
		logger.Warn("AuthzService:MayAssign:RosterLookupFailed", "error", err, "actor_id", actorID)
		return false
	}
	if member == nil {
		return false
	}
	return member.Role == teamentity.RoleProduction
}
