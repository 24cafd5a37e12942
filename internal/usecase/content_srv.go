package usecase

import (
	"context"
	"time"

	"pulau-harapan/internal/data/entity"
	"pulau-harapan/internal/data/repository"
	"pulau-harapan/internal/dto/request"
	"pulau-harapan/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultContentLanguage = "id"

type ContentService interface {
	CreateContent(ctx context.Context, req *request.CreateContentRequest) (*response.ContentResponse, error)
	GetContent(ctx context.Context, contentID string) (*response.ContentResponse, error)
	ListContents(ctx context.Context, publishedOnly bool) ([]response.ContentResponse, error)
	UpdateContent(ctx context.Context, contentID string, req *request.UpdateContentRequest) (*response.ContentResponse, error)
	DeleteContent(ctx context.Context, contentID string) error
}

type contentService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewContentService(repo *repository.Repository, log *zap.Logger) ContentService {
	return &contentService{
		repo: repo,
		log:  log.With(zap.String("service", "content")),
		now:  time.Now,
	}
}

func (s *contentService) CreateContent(ctx context.Context, req *request.CreateContentRequest) (*response.ContentResponse, error) {
	language := req.Language
	if language == "" {
		language = defaultContentLanguage
	}
	published := true
	if req.IsPublished != nil {
		published = *req.IsPublished
	}

	now := s.now()
	content := &entity.Content{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Type:        req.Type,
		Title:       req.Title,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		Language:    language,
		IsPublished: published,
	}

	if err := s.repo.Content.Create(ctx, content); err != nil {
		return nil, err
	}

	resp := response.ContentToResponse(content)
	return &resp, nil
}

func (s *contentService) load(ctx context.Context, contentID string) (*entity.Content, error) {
	id, err := parseID(contentID, "content")
	if err != nil {
		return nil, err
	}

	content, err := s.repo.Content.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, notFound("content")
	}
	return content, nil
}

func (s *contentService) GetContent(ctx context.Context, contentID string) (*response.ContentResponse, error) {
	content, err := s.load(ctx, contentID)
	if err != nil {
		return nil, err
	}
	resp := response.ContentToResponse(content)
	return &resp, nil
}

func (s *contentService) ListContents(ctx context.Context, publishedOnly bool) ([]response.ContentResponse, error) {
	contents, err := s.repo.Content.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}

	out := make([]response.ContentResponse, len(contents))
	for i, c := range contents {
		out[i] = response.ContentToResponse(c)
	}
	return out, nil
}

// UpdateContent applies only the fields present in req.
func (s *contentService) UpdateContent(ctx context.Context, contentID string, req *request.UpdateContentRequest) (*response.ContentResponse, error) {
	content, err := s.load(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		content.Type = *req.Type
	}
	if req.Title != nil {
		content.Title = *req.Title
	}
	if req.Body != nil {
		content.Body = *req.Body
	}
	if req.ImageURL != nil {
		content.ImageURL = req.ImageURL
	}
	if req.Language != nil {
		content.Language = *req.Language
	}
	if req.IsPublished != nil {
		content.IsPublished = *req.IsPublished
	}
	content.UpdatedAt = s.now()

	if err := s.repo.Content.Update(ctx, content); err != nil {
		return nil, writeResult(err, "content")
	}

	resp := response.ContentToResponse(content)
	return &resp, nil
}

func (s *contentService) DeleteContent(ctx context.Context, contentID string) error {
	id, err := parseID(contentID, "content")
	if err != nil {
		return err
	}
	return writeResult(s.repo.Content.Delete(ctx, id), "content")
}
