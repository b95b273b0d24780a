package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/mocks"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/repository"
)

type AuthTestSuite struct {
	suite.Suite
	users        *mocks.UserRepository
	manager      *Manager
	observedLogs *observer.ObservedLogs
	clock        time.Time
	hash         string
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}

func (suite *AuthTestSuite) SetupSuite() {
	hash, err := HashPassword("Sup3rSecretPass")
	suite.Require().NoError(err)
	suite.hash = hash
}

func (suite *AuthTestSuite) SetupTest() {
	suite.users = mocks.NewUserRepository(suite.T())
	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs

	conf := &configs.Config{
		Auth:   configs.Auth{SecretKey: "test-secret", SessionLifetime: 24 * time.Hour, TokenLifetime: time.Hour},
		Server: configs.Server{SecureCookies: true},
	}

	suite.clock = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	suite.manager = NewAuthManager(conf, suite.users, zap.New(observedZapCore))
	suite.manager.now = func() time.Time { return suite.clock }
}

func (suite *AuthTestSuite) user() *model.User {
	return &model.User{ID: 3, Username: "collector", PasswordHash: suite.hash, EmailConfirmed: true}
}

func (suite *AuthTestSuite) TestHashPassword() {
	suite.NotEqual("Sup3rSecretPass", suite.hash)

	other, err := HashPassword("Sup3rSecretPass")
	suite.Require().NoError(err)
	suite.NotEqual(suite.hash, other)
}

func (suite *AuthTestSuite) TestAuthenticate() {
	user := suite.user()
	suite.users.EXPECT().GetUserByName(mock.Anything, "collector").Return(user, nil)

	authenticated, err := suite.manager.Authenticate(context.Background(), "collector", "Sup3rSecretPass")
	suite.Require().NoError(err)
	suite.Equal(user, authenticated)
}

func (suite *AuthTestSuite) TestAuthenticate_WrongPassword() {
	suite.users.EXPECT().GetUserByName(mock.Anything, "collector").Return(suite.user(), nil)

	authenticated, err := suite.manager.Authenticate(context.Background(), "collector", "Wr0ngPassword")
	suite.Require().ErrorIs(err, ErrInvalidCredentials)
	suite.Nil(authenticated)
}

func (suite *AuthTestSuite) TestAuthenticate_UnknownUser() {
	suite.users.EXPECT().GetUserByName(mock.Anything, "nobody").Return(nil, repository.ErrNotFound)

	_, err := suite.manager.Authenticate(context.Background(), "nobody", "Sup3rSecretPass")
	suite.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthTestSuite) TestAuthenticate_Unconfirmed() {
	user := suite.user()
	user.EmailConfirmed = false
	suite.users.EXPECT().GetUserByName(mock.Anything, "collector").Return(user, nil)

	_, err := suite.manager.Authenticate(context.Background(), "collector", "Sup3rSecretPass")
	suite.Require().ErrorIs(err, ErrInvalidCredentials)
	suite.Equal(1, suite.observedLogs.FilterMessage("login refused").Len())
}

func (suite *AuthTestSuite) TestAuthenticate_Deleted() {
	user := suite.user()
	user.IsDeleted = true
	suite.users.EXPECT().GetUserByName(mock.Anything, "collector").Return(user, nil)

	_, err := suite.manager.Authenticate(context.Background(), "collector", "Sup3rSecretPass")
	suite.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (suite *AuthTestSuite) TestToken_RoundTrip() {
	user := suite.user()
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(user, nil)

	token, err := suite.manager.IssueToken(user, PurposeConfirm)
	suite.Require().NoError(err)

	verified, err := suite.manager.VerifyToken(context.Background(), token, PurposeConfirm)
	suite.Require().NoError(err)
	suite.Equal(user, verified)
}

func (suite *AuthTestSuite) TestToken_StaleAfterPasswordChange() {
	token, err := suite.manager.IssueToken(suite.user(), PurposeReset)
	suite.Require().NoError(err)

	changed := suite.user()
	changed.PasswordHash = "$2a$10$differenthashdifferenthashdifferenthashdifferentha"
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(changed, nil)

	_, err = suite.manager.VerifyToken(context.Background(), token, PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)
}

func (suite *AuthTestSuite) TestToken_UnknownOrDeletedUser() {
	token, err := suite.manager.IssueToken(suite.user(), PurposeReset)
	suite.Require().NoError(err)

	deleted := suite.user()
	deleted.IsDeleted = true
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(nil, repository.ErrNotFound).Once()
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(deleted, nil).Once()

	_, err = suite.manager.VerifyToken(context.Background(), token, PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)

	_, err = suite.manager.VerifyToken(context.Background(), token, PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)
}

func (suite *AuthTestSuite) TestToken_WrongPurpose() {
	token, err := suite.manager.IssueToken(suite.user(), PurposeConfirm)
	suite.Require().NoError(err)

	_, err = suite.manager.VerifyToken(context.Background(), token, PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)
}

func (suite *AuthTestSuite) TestToken_Expired() {
	token, err := suite.manager.IssueToken(suite.user(), PurposeReset)
	suite.Require().NoError(err)

	suite.clock = suite.clock.Add(61 * time.Minute)

	_, err = suite.manager.VerifyToken(context.Background(), token, PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)
}

func (suite *AuthTestSuite) TestToken_Tampered() {
	token, err := suite.manager.IssueToken(suite.user(), PurposeReset)
	suite.Require().NoError(err)

	_, err = suite.manager.VerifyToken(context.Background(), token+"x", PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)

	_, err = suite.manager.VerifyToken(context.Background(), "not-a-token", PurposeReset)
	suite.Require().ErrorIs(err, ErrInvalidToken)
}

func (suite *AuthTestSuite) sessionRequest(user *model.User) *http.Request {
	recorder := httptest.NewRecorder()
	suite.Require().NoError(suite.manager.StartSession(recorder, user))

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.True(cookies[0].HttpOnly)
	suite.True(cookies[0].Secure)

	request := httptest.NewRequest(http.MethodGet, "/bottle/add", nil)
	request.AddCookie(cookies[0])

	return request
}

func (suite *AuthTestSuite) TestMiddleware_LoadsViewer() {
	user := suite.user()
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(user, nil)

	var viewer *model.User

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		viewer = Viewer(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), suite.sessionRequest(user))

	suite.Equal(user, viewer)
}

func (suite *AuthTestSuite) TestMiddleware_DeletedUserIsAnonymous() {
	user := suite.user()
	user.IsDeleted = true
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(user, nil)

	called := false
	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		called = true
		suite.Nil(Viewer(r.Context()))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, suite.sessionRequest(user))

	suite.True(called)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(SessionCookie, cookies[0].Name)
	suite.Equal(-1, cookies[0].MaxAge)
}

func (suite *AuthTestSuite) TestMiddleware_ExpiredSession() {
	request := suite.sessionRequest(suite.user())
	suite.clock = suite.clock.Add(25 * time.Hour)

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		suite.Nil(Viewer(r.Context()))
	}))
	handler.ServeHTTP(httptest.NewRecorder(), request)
}

func (suite *AuthTestSuite) TestMiddleware_StaleAfterPasswordChange() {
	request := suite.sessionRequest(suite.user())

	changed := suite.user()
	changed.PasswordHash = "$2a$10$differenthashdifferenthashdifferenthashdifferentha"
	suite.users.EXPECT().GetUserByID(mock.Anything, uint(3)).Return(changed, nil)

	handler := suite.manager.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		suite.Nil(Viewer(r.Context()))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal(-1, cookies[0].MaxAge)
}

func (suite *AuthTestSuite) TestRequireUser() {
	handler := suite.manager.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/bottle/edit/4", nil))

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/login?next=%2Fbottle%2Fedit%2F4", recorder.Header().Get("Location"))

	request := httptest.NewRequest(http.MethodGet, "/bottle/edit/4", nil)
	request = request.WithContext(WithViewer(request.Context(), suite.user()))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	suite.Equal(http.StatusTeapot, recorder.Code)
}
