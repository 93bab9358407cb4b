package service

import (
	"fmt"

	"github.com/fsdevblog/groph-tales/pkg/uow"
)

type AppServices struct {
	WalletService  *WalletService
	UnlockService  *UnlockService
	TopupService   *TopupService
	StoryService   *StoryService
	CatalogService *CatalogService
	AuthorService  *AuthorService
}

func Factory(unitOfWork uow.UOW) (*AppServices, error) {
	walletService, walletServiceErr := NewWalletService(unitOfWork)
	if walletServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", walletServiceErr.Error())
	}

	unlockService, unlockServiceErr := NewUnlockService(unitOfWork)
	if unlockServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", unlockServiceErr.Error())
	}

	topupService, topupServiceErr := NewTopupService(unitOfWork)
	if topupServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", topupServiceErr.Error())
	}

	storyService, storyServiceErr := NewStoryService(unitOfWork)
	if storyServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", storyServiceErr.Error())
	}

	catalogService, catalogServiceErr := NewCatalogService(unitOfWork)
	if catalogServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", catalogServiceErr.Error())
	}

	authorService, authorServiceErr := NewAuthorService(unitOfWork)
	if authorServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", authorServiceErr.Error())
	}

	return &AppServices{
		WalletService:  walletService,
		UnlockService:  unlockService,
		TopupService:   topupService,
		StoryService:   storyService,
		CatalogService: catalogService,
		AuthorService:  authorService,
	}, nil
}
