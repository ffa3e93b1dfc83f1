package service

import (
	"context"
	"strings"

	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/repository"

	"github.com/google/uuid"
)

// TeamService owns roster management.
type TeamService struct {
	repo repository.TeamRepositoryInterface
}

func NewTeamService(repo repository.TeamRepositoryInterface) *TeamService {
	return &TeamService{repo: repo}
}

func (s *TeamService) CreateMember(ctx context.Context, req *dto.CreateMemberRequest) (*entity.TeamMember, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Member name is required", nil)
	}
	if !req.Role.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown role", nil)
	}

	member := &entity.TeamMember{
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		Phone:        req.Phone,
		Role:         req.Role,
		Availability: entity.AvailabilityMap{},
		IsFreelancer: req.IsFreelancer,
	}

	created, err := s.repo.CreateMember(ctx, member)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "Failed to create team member", err)
	}

	logger.Info("TeamService:CreateMember:Success", "member_id", created.ID, "role", created.Role)
	return created, nil
}

func (s *TeamService) GetMember(ctx context.Context, id uuid.UUID) (*entity.TeamMember, *errors.AppError) {
	member, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "Failed to read roster", err)
	}
	if member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Team member not found", nil)
	}
	return member, nil
}

func (s *TeamService) ListMembers(ctx context.Context) ([]entity.TeamMember, *errors.AppError) {
	members, err := s.repo.ListMembers(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "Failed to read roster", err)
	}
	return members, nil
}

func (s *TeamService) UpdateMember(ctx context.Context, id uuid.UUID, req *dto.UpdateMemberRequest) (*entity.TeamMember, *errors.AppError) {
	if !req.Role.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown role", nil)
	}

	member, appErr := s.GetMember(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	if strings.TrimSpace(req.Name) != "" {
		member.Name = strings.TrimSpace(req.Name)
	}
	member.Email = req.Email
	member.Phone = req.Phone
	member.Role = req.Role
	member.IsFreelancer = req.IsFreelancer

	if err := s.repo.UpdateMember(ctx, member); err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "Failed to update team member", err)
	}
	return member, nil
}

// SetAvailability replaces the member's availability calendar. Dates not in
// the map are treated as available.
func (s *TeamService) SetAvailability(ctx context.Context, id uuid.UUID, availability entity.AvailabilityMap) *errors.AppError {
	for date, state := range availability {
		if state != entity.AvailabilityAvailable && state != entity.AvailabilityBusy {
			return errors.NewAppError(errors.ErrInvalidInput, "Unknown availability state for "+date, nil)
		}
	}

	if _, appErr := s.GetMember(ctx, id); appErr != nil {
		return appErr
	}

	if err := s.repo.SetAvailability(ctx, id, availability); err != nil {
		return errors.NewAppError(errors.ErrStoreUnavailable, "Failed to update availability", err)
	}
	return nil
}

func (s *TeamService) DeleteMember(ctx context.Context, id uuid.UUID) *errors.AppError {
	if _, appErr := s.GetMember(ctx, id); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteMember(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrStoreUnavailable, "Failed to delete team member", err)
	}
	return nil
}
