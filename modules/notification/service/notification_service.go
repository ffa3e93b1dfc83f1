package service

import (
	"context"
	"time"

	coreEntity "github.com/DevTechAI/photosyncwork-sub003/core/entity"
	"github.com/DevTechAI/photosyncwork-sub003/core/params"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) error {
	notif := &entity.Notification{
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Body:        req.Body,
		Type:        req.Type,
		Data:        entity.JSONB(req.Data),
		IsRead:      false,
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	return s.repo.Create(ctx, notif)
}

// Notify stores an assignment-update message for the recipient. Delivery is
// in-app only; callers treat failures as non-fatal.
func (s *NotificationService) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	return s.Create(ctx, &dto.CreateNotificationRequest{
		RecipientID: recipientID,
		Subject:     subject,
		Body:        body,
		Type:        entity.TypeAssignmentUpdate,
	})
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, recipientID uuid.UUID, queryParams params.QueryParams) (*entity.PaginatedNotificationEntity, error) {
	return s.repo.GetByRecipientID(ctx, recipientID, queryParams)
}

func (s *NotificationService) MarkAsRead(ctx context.Context, recipientID uuid.UUID, ids []string) error {
	return s.repo.MarkAsRead(ctx, recipientID, ids)
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, recipientID uuid.UUID) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

func (s *NotificationService) CountUnread(ctx context.Context, recipientID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, recipientID)
}
