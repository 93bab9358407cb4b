package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-tales/internal/logger"
	"github.com/fsdevblog/groph-tales/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-tales/internal/transport/api/testutils"
	"github.com/fsdevblog/groph-tales/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type LibraryHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCatalogService *mocks.MockCatalogServicer
	tokenSecret        []byte
}

func TestLibraryHandlerSuite(t *testing.T) {
	suite.Run(t, new(LibraryHandlerTestSuite))
}

func (s *LibraryHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockCatalogService = mocks.NewMockCatalogServicer(mockCtrl)
	s.tokenSecret = []byte("super secret key")

	var err error
	s.router, err = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		CatalogService: s.mockCatalogService,
		TokenSecret:    s.tokenSecret,
	})
	s.Require().NoError(err)
}

func (s *LibraryHandlerTestSuite) TestToggle() {
	userID := gofakeit.UUID()
	token, tokenErr := tokens.GenerateIdentityJWT(userID, false, time.Hour, s.tokenSecret)
	s.Require().NoError(tokenErr)

	s.mockCatalogService.EXPECT().
		ToggleLibrary(gomock.Any(), userID, int64(9)).
		Return(true, nil).Times(1)

	cases := []struct {
		name       string
		payload    string
		token      string
		wantStatus int
	}{
		{name: "all ok", payload: `{"storyId":9}`, token: token, wantStatus: http.StatusOK},
		{name: "bad request", payload: `{}`, token: token, wantStatus: http.StatusBadRequest},
		{name: "not authorized", payload: `{"storyId":9}`, wantStatus: http.StatusUnauthorized},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + LibraryToggleRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if t.token != "" {
				reqOpts = append(reqOpts, testutils.WithBearer(t.token))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantStatus != http.StatusOK {
				return
			}
			var body map[string]bool
			s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
			s.True(body["in_library"])
		})
	}
}
