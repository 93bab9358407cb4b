package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/groph-tales/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup             = "/api"
	WalletRoute            = "/wallet"
	WalletHistoryRoute     = "/wallet/history"
	TopupRequestRoute      = "/wallet/topup-request"
	UnlockChapterRoute     = "/unlock-chapter"
	StoriesRoute           = "/stories"
	StoryRoute             = "/stories/:id"
	StoryChaptersRoute     = "/stories/:id/chapters"
	MyStoriesRoute         = "/my-stories"
	SearchRoute            = "/search"
	LibraryToggleRoute     = "/library/toggle"
	AuthorRequestRoute     = "/author-request"
	AdminTopupsRoute       = "/admin/topup-requests"
	AdminApproveTopupRoute = "/admin/approve-topup"
	AdminRejectTopupRoute  = "/admin/reject-topup"
	AdminStoriesRoute      = "/admin/stories"
	AdminApproveStoryRoute = "/admin/approve-story"
	AdminWalletAuditRoute  = "/admin/wallet-audit"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	WalletService  WalletServicer
	UnlockService  UnlockServicer
	TopupService   TopupServicer
	StoryService   StoryServicer
	CatalogService CatalogServicer
	AuthorService  AuthorServicer
	TokenSecret    []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %s", err.Error())
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	walletHandler := NewWalletHandler(args.WalletService, args.TopupService, args.UnlockService)
	storiesHandler := NewStoriesHandler(args.StoryService, args.CatalogService)
	libraryHandler := NewLibraryHandler(args.CatalogService)
	authorHandler := NewAuthorHandler(args.AuthorService)
	adminHandler := NewAdminHandler(args.TopupService, args.StoryService, args.WalletService)

	api := r.Group(RouteGroup)

	// публичные роуты: токен не обязателен, но если он есть - ответ
	// персонализируется (баланс, разблокированные главы).
	optional := api.Group("", middlewares.AuthOptional(args.TokenSecret))
	optional.GET(WalletRoute, walletHandler.Show)
	optional.GET(StoryRoute, storiesHandler.Show)
	optional.GET(SearchRoute, storiesHandler.Search)

	authed := api.Group("", middlewares.AuthRequired(args.TokenSecret))
	authed.GET(WalletHistoryRoute, walletHandler.History)
	authed.POST(TopupRequestRoute, walletHandler.CreateTopup)
	authed.POST(UnlockChapterRoute, walletHandler.UnlockChapter)
	authed.POST(StoriesRoute, storiesHandler.Create)
	authed.GET(MyStoriesRoute, storiesHandler.Mine)
	authed.POST(StoryChaptersRoute, storiesHandler.CreateChapter)
	authed.POST(LibraryToggleRoute, libraryHandler.Toggle)
	authed.POST(AuthorRequestRoute, authorHandler.Create)

	admin := api.Group("", middlewares.AuthRequired(args.TokenSecret), middlewares.OperatorRequired())
	admin.GET(AdminTopupsRoute, adminHandler.PendingTopups)
	admin.POST(AdminApproveTopupRoute, adminHandler.ApproveTopup)
	admin.POST(AdminRejectTopupRoute, adminHandler.RejectTopup)
	admin.GET(AdminStoriesRoute, adminHandler.PendingStories)
	admin.POST(AdminApproveStoryRoute, adminHandler.ApproveStory)
	admin.GET(AdminWalletAuditRoute, adminHandler.WalletAudit)

	return r, nil
}
