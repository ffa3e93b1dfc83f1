package repository

import (
	"context"
	"database/sql"

	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"

	"github.com/google/uuid"
)

// TeamRepository handles roster database operations.
type TeamRepository struct {
	DB database.IDatabase
}

func NewTeamRepository(db database.IDatabase) *TeamRepository {
	return &TeamRepository{DB: db}
}

// TeamRepositoryInterface defines the roster contract.
type TeamRepositoryInterface interface {
	CreateMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error)
	ListMembers(ctx context.Context) ([]entity.TeamMember, error)
	UpdateMember(ctx context.Context, member *entity.TeamMember) error
	SetAvailability(ctx context.Context, id uuid.UUID, availability entity.AvailabilityMap) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

func (r *TeamRepository) CreateMember(ctx context.Context, member *entity.TeamMember) (*entity.TeamMember, error) {
	query := `
		INSERT INTO team_members (name, email, phone, role, availability, is_freelancer)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, email, phone, role, availability, is_freelancer, created_at, updated_at
	`

	var created entity.TeamMember
	err := r.DB.GetContext(ctx, &created, query,
		member.Name, member.Email, member.Phone, member.Role, member.Availability, member.IsFreelancer)
	if err != nil {
		logger.Error("TeamRepository:CreateMember", err)
		return nil, err
	}

	return &created, nil
}

func (r *TeamRepository) GetMemberByID(ctx context.Context, id uuid.UUID) (*entity.TeamMember, error) {
	query := `
		SELECT id, name, email, phone, role, availability, is_freelancer, created_at, updated_at
		FROM team_members WHERE id = $1
	`

	var member entity.TeamMember
	err := r.DB.GetContext(ctx, &member, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("TeamRepository:GetMemberByID", err)
		return nil, err
	}

	return &member, nil
}

// ListMembers returns the roster in insertion order.
func (r *TeamRepository) ListMembers(ctx context.Context) ([]entity.TeamMember, error) {
	query := `
		SELECT id, name, email, phone, role, availability, is_freelancer, created_at, updated_at
		FROM team_members
		ORDER BY created_at ASC, id ASC
	`

	var members []entity.TeamMember
	err := r.DB.SelectContext(ctx, &members, query)
	if err != nil {
		logger.Error("TeamRepository:ListMembers", err)
		return nil, err
	}

	return members, nil
}

func (r *TeamRepository) UpdateMember(ctx context.Context, member *entity.TeamMember) error {
	query := `
		UPDATE team_members
		SET name = $2, email = $3, phone = $4, role = $5, availability = $6, is_freelancer = $7, updated_at = NOW()
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		member.ID, member.Name, member.Email, member.Phone, member.Role, member.Availability, member.IsFreelancer)
	if err != nil {
		logger.Error("TeamRepository:UpdateMember", err)
		return err
	}

	return nil
}

func (r *TeamRepository) SetAvailability(ctx context.Context, id uuid.UUID, availability entity.AvailabilityMap) error {
	query := `UPDATE team_members SET availability = $2, updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id, availability)
	if err != nil {
		logger.Error("TeamRepository:SetAvailability", err)
		return err
	}
	return nil
}

func (r *TeamRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM team_members WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("TeamRepository:DeleteMember", err)
		return err
	}
	return nil
}
