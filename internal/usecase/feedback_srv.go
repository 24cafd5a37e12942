package usecase

import (
	"context"
	"errors"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error)
	ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error)
	ListEmergencies(ctx context.Context) ([]response.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, feedbackID string, req *request.UpdateFeedbackRequest) (*response.FeedbackResponse, error)
}

type feedbackService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewFeedbackService(repo *repository.Repository, log *zap.Logger) FeedbackService {
	return &feedbackService{
		repo: repo,
		log:  log.With(zap.String("service", "feedback")),
		now:  time.Now,
	}
}

func (s *feedbackService) CreateFeedback(ctx context.Context, req *request.CreateFeedbackRequest) (*response.FeedbackResponse, error) {
	var destinationID *uuid.UUID
	if req.DestinationID != nil {
		id, err := parseID(*req.DestinationID, "destination")
		if err != nil {
			return nil, err
		}
		destinationID = &id
	}

	kind := entity.FeedbackType(req.Type)
	priority := entity.FeedbackPriority(req.Priority)
	if priority == "" {
		priority = entity.FeedbackPriorityNormal
		if kind == entity.FeedbackTypeEmergency {
			priority = entity.FeedbackPriorityUrgent
		}
	}

	now := s.now()
	feedback := &entity.Feedback{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:          kind,
		Subject:       req.Subject,
		Message:       req.Message,
		DestinationID: destinationID,
		Priority:      priority,
		Status:        entity.FeedbackStatusOpen,
	}

	if err := s.repo.Feedback.Create(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFound("destination")
		}
		return nil, err
	}

	if kind == entity.FeedbackTypeEmergency {
		s.log.Warn("Emergency report received",
			zap.String("feedback_id", feedback.ID.String()),
			zap.String("subject", feedback.Subject),
		)
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}

func (s *feedbackService) list(ctx context.Context, kind *entity.FeedbackType) ([]response.FeedbackResponse, error) {
	items, err := s.repo.Feedback.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := make([]response.FeedbackResponse, len(items))
	for i, f := range items {
		out[i] = response.FeedbackToResponse(f)
	}
	return out, nil
}

func (s *feedbackService) ListFeedback(ctx context.Context) ([]response.FeedbackResponse, error) {
	return s.list(ctx, nil)
}

func (s *feedbackService) ListEmergencies(ctx context.Context) ([]response.FeedbackResponse, error) {
	kind := entity.FeedbackTypeEmergency
	return s.list(ctx, &kind)
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, feedbackID string, req *request.UpdateFeedbackRequest) (*response.FeedbackResponse, error) {
	id, err := parseID(feedbackID, "feedback")
	if err != nil {
		return nil, err
	}

	feedback, err := s.repo.Feedback.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, notFound("feedback")
	}

	if req.Status != nil {
		feedback.Status = entity.FeedbackStatus(*req.Status)
	}
	if req.Priority != nil {
		feedback.Priority = entity.FeedbackPriority(*req.Priority)
	}
	feedback.UpdatedAt = s.now()

	if err := s.repo.Feedback.Update(ctx, feedback); err != nil {
		return nil, writeResult(err, "feedback")
	}

	resp := response.FeedbackToResponse(feedback)
	return &resp, nil
}
