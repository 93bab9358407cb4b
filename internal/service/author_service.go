package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/groph-tales/internal/domain"
	"github.com/fsdevblog/groph-tales/internal/repository/repoargs"
	"github.com/fsdevblog/groph-tales/pkg/uow"
)

// AuthorService заявки юзеров на статус автора.
type AuthorService struct {
	uow               uow.UOW
	authorRequestRepo AuthorRequestRepository
}

func NewAuthorService(u uow.UOW) (*AuthorService, error) {
	rName := uow.RepositoryName(repoargs.AuthorRequestRepoName)
	authorRequestRepo, repoErr := uow.GetRepositoryAs[AuthorRequestRepository](u, rName)
	if repoErr != nil {
		return nil, repoErr
	}
	return &AuthorService{
		uow:               u,
		authorRequestRepo: authorRequestRepo,
	}, nil
}

// SubmitRequest записывает заявку на статус автора. Решение принимает оператор
// вне этой системы.
func (s *AuthorService) SubmitRequest(ctx context.Context, userID, reason string) (*domain.AuthorRequest, error) {
	request, err := s.authorRequestRepo.Create(ctx, userID, reason)
	if err != nil {
		return nil, fmt.Errorf("submitting author request: %w", err)
	}
	return request, nil
}
