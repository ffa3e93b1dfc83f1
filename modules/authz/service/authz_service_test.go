package service

import (
	"context"
	"errors"
	"testing"

	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"

	"github.com/google/uuid"
)

type fakeRoster struct {
	members map[uuid.UUID]*teamentity.TeamMember
	err     error
}

func (r *fakeRoster) CreateMember(ctx context.Context, m *teamentity.TeamMember) (*teamentity.TeamMember, error) {
	return m, nil
}

func (r *fakeRoster) GetMemberByID(ctx context.Context, id uuid.UUID) (*teamentity.TeamMember, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.members[id], nil
}

func (r *fakeRoster) ListMembers(ctx context.Context) ([]teamentity.TeamMember, error) {
	return nil, nil
}

func (r *fakeRoster) UpdateMember(ctx context.Context, m *teamentity.TeamMember) error { return nil }

func (r *fakeRoster) SetAvailability(ctx context.Context, id uuid.UUID, a teamentity.AvailabilityMap) error {
	return nil
}

func (r *fakeRoster) DeleteMember(ctx context.Context, id uuid.UUID) error { return nil }

func TestMayAssignRequiresProductionRole(t *testing.T) {
	producer := &teamentity.TeamMember{Name: "Prue", Role: teamentity.RoleProduction}
	producer.ID = uuid.New()
	shooter := &teamentity.TeamMember{Name: "Alice", Role: teamentity.RolePhotographer}
	shooter.ID = uuid.New()

	svc := NewAuthzService(&fakeRoster{members: map[uuid.UUID]*teamentity.TeamMember{
		producer.ID: producer,
		shooter.ID:  shooter,
	}})

	if !svc.MayAssign(context.Background(), producer.ID, uuid.New()) {
		t.Error("production coordinator should be allowed to assign")
	}
	if svc.MayAssign(context.Background(), shooter.ID, uuid.New()) {
		t.Error("photographer should not be allowed to assign")
	}
	if svc.MayAssign(context.Background(), uuid.New(), uuid.New()) {
		t.Error("unknown actor should not be allowed to assign")
	}
}

func TestMayAssignDeniesOnRosterFailure(t *testing.T) {
	svc := NewAuthzService(&fakeRoster{err: errors.New("connection refused")})

	if svc.MayAssign(context.Background(), uuid.New(), uuid.New()) {
		t.Error("roster lookup failure must deny, not allow")
	}
}
