package server_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/mocks"
	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/mail"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/server"
	"droscher.com/MyWhiskies/pkg/storage/memory"
)

const flashCookie = "my-whiskies-flash"

type RouterTestSuite struct {
	suite.Suite
	users        *mocks.UserRepository
	distilleries *mocks.DistilleryRepository
	bottlers     *mocks.BottlerRepository
	bottles      *mocks.BottleRepository
	imageRepo    *mocks.ImageRepository
	imageStore   *memory.Store
	mailer       *mocks.Mailer
	lookup       *mocks.Integration
	authManager  *auth.Manager
	router       http.Handler
	observedLogs *observer.ObservedLogs

	owner   *model.User
	visitor *model.User
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	suite.users = mocks.NewUserRepository(suite.T())
	suite.distilleries = mocks.NewDistilleryRepository(suite.T())
	suite.bottlers = mocks.NewBottlerRepository(suite.T())
	suite.bottles = mocks.NewBottleRepository(suite.T())
	suite.imageRepo = mocks.NewImageRepository(suite.T())
	suite.imageStore = memory.New()
	suite.mailer = mocks.NewMailer(suite.T())
	suite.lookup = mocks.NewIntegration(suite.T())

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	logger := zap.New(observedZapCore)

	conf := &configs.Config{
		Server: configs.Server{BaseURL: "http://localhost:8080"},
		Auth:   configs.Auth{SecretKey: "test-secret", SessionLifetime: time.Hour, TokenLifetime: time.Hour},
		Images: configs.Images{Driver: "memory", Prefix: "bottle-images", Format: "jpeg", Quality: 90, MaxWidth: 1400},
	}

	suite.authManager = auth.NewAuthManager(conf, suite.users, logger)

	router, err := server.NewRouter(server.Dependencies{
		Config:       conf,
		Users:        suite.users,
		Distilleries: suite.distilleries,
		Bottlers:     suite.bottlers,
		Bottles:      suite.bottles,
		Images:       images.NewManager(suite.imageRepo, suite.imageStore, conf.Images, logger),
		Auth:         suite.authManager,
		Mailer:       suite.mailer,
		Lookup:       suite.lookup,
		Picker:       func(int) int { return 0 },
		Logger:       logger,
	})
	suite.Require().NoError(err)
	suite.router = router

	suite.owner = &model.User{ID: 1, Username: "owner", Email: "owner@example.com", EmailConfirmed: true}
	suite.visitor = &model.User{ID: 2, Username: "visitor", Email: "visitor@example.com", EmailConfirmed: true}
}

// sessionFor returns a valid session cookie and lets the middleware find
// the user.
func (suite *RouterTestSuite) sessionFor(user *model.User) *http.Cookie {
	recorder := httptest.NewRecorder()
	suite.Require().NoError(suite.authManager.StartSession(recorder, user))

	suite.users.EXPECT().GetUserByID(mock.Anything, user.ID).Return(user, nil).Maybe()

	cookies := recorder.Result().Cookies()
	suite.Require().Len(cookies, 1)

	return cookies[0]
}

func (suite *RouterTestSuite) serve(request *http.Request, session *http.Cookie) *httptest.ResponseRecorder {
	if session != nil {
		request.AddCookie(session)
	}

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func postForm(target string, form url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return request
}

func flash(recorder *httptest.ResponseRecorder) string {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == flashCookie {
			message, _ := url.QueryUnescape(cookie.Value)

			return message
		}
	}

	return ""
}

func (suite *RouterTestSuite) bottle(id uint, name string, bottleType model.BottleType) *model.Bottle {
	return &model.Bottle{
		ID:           id,
		UserID:       suite.owner.ID,
		Name:         name,
		Type:         bottleType,
		Distilleries: []model.Distillery{{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}},
	}
}

func (suite *RouterTestSuite) TestReflectionMounted() {
	request := httptest.NewRequest(http.MethodPost, "/grpc.reflection.v1.ServerReflection/ServerReflectionInfo", nil)
	request.Header.Set("Content-Type", "application/grpc")

	recorder := suite.serve(request, nil)

	// the reflection stream is bidirectional and needs HTTP/2
	suite.Equal(http.StatusHTTPVersionNotSupported, recorder.Code)
}

func (suite *RouterTestSuite) TestHealthz() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/healthz", nil), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("ok\n", recorder.Body.String())
}

func (suite *RouterTestSuite) TestRegister_SendsOneConfirmationEmail() {
	form := url.Values{
		"username":    {"collector"},
		"email":       {"Collector@Example.com"},
		"password":    {"Sup3rSecretPass"},
		"password2":   {"Sup3rSecretPass"},
		"agree_terms": {"y"},
	}

	suite.users.EXPECT().GetUserByName(mock.Anything, "collector").Return(nil, repository.ErrNotFound)
	suite.users.EXPECT().GetUserByEmail(mock.Anything, "Collector@Example.com").Return(nil, repository.ErrNotFound)
	suite.users.EXPECT().AddUser(mock.Anything, mock.MatchedBy(func(user model.User) bool {
		return user.Username == "collector" && user.Email == "collector@example.com" && !user.EmailConfirmed &&
			user.PasswordHash != "" && user.PasswordHash != "Sup3rSecretPass"
	})).RunAndReturn(func(_ context.Context, user model.User) (*model.User, error) {
		user.ID = 7

		return &user, nil
	})
	suite.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(message mail.Message) bool {
		return message.To == "collector@example.com" && strings.Contains(message.Body, "http://localhost:8080/confirm_register/")
	})).Return(nil).Once()

	recorder := suite.serve(postForm("/register", form), nil)

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/login", recorder.Header().Get("Location"))
	suite.Contains(flash(recorder), "Check your email")
	suite.Equal(1, suite.observedLogs.FilterMessage("user registered").Len())
}

func (suite *RouterTestSuite) TestRegister_ReservedUsername() {
	form := url.Values{
		"username":    {"login"},
		"email":       {"someone@example.com"},
		"password":    {"Sup3rSecretPass"},
		"password2":   {"Sup3rSecretPass"},
		"agree_terms": {"y"},
	}

	suite.users.EXPECT().GetUserByName(mock.Anything, "login").Return(nil, repository.ErrNotFound)
	suite.users.EXPECT().GetUserByEmail(mock.Anything, "someone@example.com").Return(nil, repository.ErrNotFound)

	recorder := suite.serve(postForm("/register", form), nil)

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.Contains(recorder.Body.String(), "is not available")
	suite.mailer.AssertNotCalled(suite.T(), "Send", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestRegister_WeakPassword() {
	form := url.Values{
		"username":    {"collector"},
		"email":       {"collector@example.com"},
		"password":    {"alllowercase"},
		"password2":   {"alllowercase"},
		"agree_terms": {"y"},
	}

	recorder := suite.serve(postForm("/register", form), nil)

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.users.AssertNotCalled(suite.T(), "AddUser", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestAddBottle_RequiresLogin() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/add", nil), nil)

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/login?next=%2Fbottle%2Fadd", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestShowBottle_PrivateHiddenFromOthers() {
	bottle := suite.bottle(5, "Secret Stash", model.Bourbon)
	bottle.IsPrivate = true
	bottle.PersonalNote = "hidden behind the flour"

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/5", nil), suite.sessionFor(suite.visitor))

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.NotContains(recorder.Body.String(), "Secret Stash")
}

func (suite *RouterTestSuite) TestShowBottle_OwnerSeesPersonalNote() {
	bottle := suite.bottle(5, "Secret Stash", model.Bourbon)
	bottle.IsPrivate = true
	bottle.PersonalNote = "hidden behind the flour"

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/5", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "hidden behind the flour")
}

func (suite *RouterTestSuite) TestShowBottle_PublicHidesPersonalNote() {
	bottle := suite.bottle(6, "Shelf Bottle", model.Rye)
	bottle.PersonalNote = "gift from dad"

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(6)).Return(bottle, nil)
	suite.users.EXPECT().GetUserByID(mock.Anything, suite.owner.ID).Return(suite.owner, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/6", nil), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Shelf Bottle")
	suite.NotContains(recorder.Body.String(), "gift from dad")
}

func (suite *RouterTestSuite) TestListBottles_TypeFilter() {
	bottles := []*model.Bottle{
		suite.bottle(1, "Eagle Rare", model.Bourbon),
		suite.bottle(2, "Sazerac Rye", model.Rye),
	}

	suite.users.EXPECT().GetUserByName(mock.Anything, "owner").Return(suite.owner, nil)
	suite.bottles.EXPECT().GetBottlesForUser(mock.Anything, suite.owner.ID).Return(bottles, nil)

	form := url.Values{"method": {"filter"}, "type": {"RYE"}}
	recorder := suite.serve(postForm("/owner/bottles", form), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Sazerac Rye")
	suite.NotContains(recorder.Body.String(), "Eagle Rare")
}

func (suite *RouterTestSuite) TestListBottles_DeletedOwner() {
	deleted := &model.User{ID: 3, Username: "gone", IsDeleted: true}

	suite.users.EXPECT().GetUserByName(mock.Anything, "gone").Return(deleted, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/gone/bottles", nil), nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RouterTestSuite) TestEditBottle_ForeignBottleRefused() {
	bottle := suite.bottle(5, "Eagle Rare", model.Bourbon)

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/edit/5", nil), suite.sessionFor(suite.visitor))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/visitor", recorder.Header().Get("Location"))
	suite.Equal(policy.ErrIssue.Error(), flash(recorder))
}

func (suite *RouterTestSuite) TestDeleteBottle_MissingBottleRefusedLikeForeign() {
	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(99)).Return(nil, repository.ErrNotFound)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/delete/99", nil), suite.sessionFor(suite.visitor))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal(policy.ErrIssue.Error(), flash(recorder))
}

func (suite *RouterTestSuite) TestDeleteBottle_RemovesImagesAndRow() {
	bottle := suite.bottle(5, "Eagle Rare", model.Bourbon)
	bottle.Images = []model.BottleImage{{BottleID: 5, Sequence: 1}}
	suite.Require().NoError(suite.imageStore.Put(context.Background(), "bottle-images/5_1.jpg", []byte("jpeg"), "image/jpeg"))

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)
	suite.bottles.EXPECT().DeleteBottle(mock.Anything, uint(5)).Return(nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/delete/5", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/owner/bottles", recorder.Header().Get("Location"))

	_, stored := suite.imageStore.Get("bottle-images/5_1.jpg")
	suite.False(stored)
}

func (suite *RouterTestSuite) TestDeleteBottle_KeepsImagesWhenRowDeleteFails() {
	bottle := suite.bottle(5, "Eagle Rare", model.Bourbon)
	bottle.Images = []model.BottleImage{{BottleID: 5, Sequence: 1}}
	suite.Require().NoError(suite.imageStore.Put(context.Background(), "bottle-images/5_1.jpg", []byte("jpeg"), "image/jpeg"))

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)
	suite.bottles.EXPECT().DeleteBottle(mock.Anything, uint(5)).Return(errors.New("db down"))

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/delete/5", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusInternalServerError, recorder.Code)

	_, stored := suite.imageStore.Get("bottle-images/5_1.jpg")
	suite.True(stored)
}

func (suite *RouterTestSuite) TestEditBottlePage_RemoveBoxesUseStoredSequences() {
	bottle := suite.bottle(5, "Eagle Rare", model.Bourbon)
	bottle.Images = []model.BottleImage{{BottleID: 5, Sequence: 3}, {BottleID: 5, Sequence: 2}}

	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(5)).Return(bottle, nil)
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.owner.ID).Return([]*model.Distillery{&bottle.Distilleries[0]}, nil)
	suite.bottlers.EXPECT().GetBottlersForUser(mock.Anything, suite.owner.ID).Return(nil, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottle/edit/5", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	suite.Contains(body, `bottle-images/5_2.jpg`)
	suite.Contains(body, `name="remove_images" value="2"`)
	suite.Contains(body, `name="remove_images" value="3"`)
	suite.NotContains(body, `name="remove_images" value="1"`)
}

func (suite *RouterTestSuite) TestDetailPages_DeletedOwnerNotFound() {
	gone := &model.User{ID: 4, Username: "gone", IsDeleted: true}
	bottle := &model.Bottle{ID: 6, UserID: gone.ID, Name: "Old Forester", Type: model.Bourbon}

	suite.users.EXPECT().GetUserByID(mock.Anything, gone.ID).Return(gone, nil)
	suite.distilleries.EXPECT().GetDistilleryByID(mock.Anything, uint(11)).
		Return(&model.Distillery{ID: 11, UserID: gone.ID, Name: "Brown-Forman"}, nil)
	suite.bottlers.EXPECT().GetBottlerByID(mock.Anything, uint(12)).
		Return(&model.Bottler{ID: 12, UserID: gone.ID, Name: "Cadenhead"}, nil)
	suite.bottles.EXPECT().GetBottleByID(mock.Anything, uint(6)).Return(bottle, nil)

	for _, target := range []string{"/distillery/11", "/bottler/12", "/bottle/6"} {
		recorder := suite.serve(httptest.NewRequest(http.MethodGet, target, nil), nil)

		suite.Equal(http.StatusNotFound, recorder.Code, target)
	}
}

func (suite *RouterTestSuite) TestLookup_LinksResultsToPrefilledForm() {
	suite.lookup.EXPECT().FindDistillery("ardbeg").Return([]model.Distillery{
		{Name: "Ardbeg", Region1: "Islay", Region2: "Scotland", URL: pointy.String("https://www.ardbeg.com")},
	}, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/lookup?q=ardbeg", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusOK, recorder.Code)

	body := recorder.Body.String()
	suite.Contains(body, "Ardbeg (Islay, Scotland)")
	suite.Contains(body, `href="/distillery/add?description=&amp;name=Ardbeg&amp;region_1=Islay&amp;region_2=Scotland&amp;url=https%3A%2F%2Fwww.ardbeg.com"`)
}

func (suite *RouterTestSuite) TestLookup_ErrorStillRendersPage() {
	suite.lookup.EXPECT().FindDistillery("nowhere").Return(nil, errors.New("site unreachable"))

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/lookup?q=nowhere", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "No distilleries found.")
	suite.Equal(1, suite.observedLogs.FilterMessage("distillery lookup incomplete").Len())
}

func (suite *RouterTestSuite) TestLookup_RequiresLogin() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/lookup?q=ardbeg", nil), nil)

	suite.Equal(http.StatusFound, recorder.Code)
	suite.lookup.AssertNotCalled(suite.T(), "FindDistillery", mock.Anything)
}

func (suite *RouterTestSuite) TestAddDefaults_SkipsExistingNames() {
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.owner.ID).
		Return([]*model.Distillery{{ID: 10, UserID: suite.owner.ID, Name: "ARDBEG"}}, nil)
	suite.distilleries.EXPECT().AddDistilleries(mock.Anything, mock.MatchedBy(func(added []model.Distillery) bool {
		for _, distillery := range added {
			if distillery.Name == "Ardbeg" || distillery.UserID != suite.owner.ID {
				return false
			}
		}

		return len(added) > 0
	})).Return(nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/add_defaults", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/owner/distilleries", recorder.Header().Get("Location"))
	suite.Regexp(`^Added \d+ distilleries\.$`, flash(recorder))
}

func (suite *RouterTestSuite) TestDeleteDistillery_RefusedWithBottles() {
	distillery := &model.Distillery{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}

	suite.distilleries.EXPECT().GetDistilleryByID(mock.Anything, uint(10)).Return(distillery, nil)
	suite.distilleries.EXPECT().CountDistilleryBottles(mock.Anything, uint(10)).Return(int64(2), nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/delete/10", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/owner", recorder.Header().Get("Location"))
	suite.Equal("cannot delete, has associated bottles", flash(recorder))
	suite.distilleries.AssertNotCalled(suite.T(), "DeleteDistillery", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestDeleteDistillery_NoBottles() {
	distillery := &model.Distillery{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}

	suite.distilleries.EXPECT().GetDistilleryByID(mock.Anything, uint(10)).Return(distillery, nil)
	suite.distilleries.EXPECT().CountDistilleryBottles(mock.Anything, uint(10)).Return(int64(0), nil)
	suite.distilleries.EXPECT().DeleteDistillery(mock.Anything, uint(10)).Return(nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/distillery/delete/10", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/owner/distilleries", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestDeleteBottler_RefusedWithBottles() {
	bottler := &model.Bottler{ID: 20, UserID: suite.owner.ID, Name: "Gordon & MacPhail"}

	suite.bottlers.EXPECT().GetBottlerByID(mock.Anything, uint(20)).Return(bottler, nil)
	suite.bottlers.EXPECT().CountBottlerBottles(mock.Anything, uint(20)).Return(int64(1), nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/bottler/delete/20", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("cannot delete, has associated bottles", flash(recorder))
	suite.bottlers.AssertNotCalled(suite.T(), "DeleteBottler", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestListDistilleries_RemembersLength() {
	suite.users.EXPECT().GetUserByName(mock.Anything, "owner").Return(suite.owner, nil)
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.owner.ID).Return([]*model.Distillery{
		{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace", Region1: "Kentucky", Region2: "USA"},
	}, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/owner/distilleries?length=10", nil), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "Buffalo Trace")

	var stored *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == "dt-list-length" {
			stored = cookie
		}
	}

	suite.Require().NotNil(stored)
	suite.Equal("10", stored.Value)
	suite.Equal(365*24*60*60, stored.MaxAge)
}

func (suite *RouterTestSuite) TestAddDistillery_Validation() {
	form := url.Values{"name": {"Ardbeg"}, "region_1": {"Islay"}}

	recorder := suite.serve(postForm("/distillery/add", form), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.distilleries.AssertNotCalled(suite.T(), "AddDistillery", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestAddDistillery() {
	form := url.Values{"name": {" Ardbeg "}, "region_1": {"Islay"}, "region_2": {"Scotland"}}

	suite.distilleries.EXPECT().AddDistillery(mock.Anything, mock.MatchedBy(func(distillery model.Distillery) bool {
		return distillery.Name == "Ardbeg" && distillery.UserID == suite.owner.ID && distillery.URL == nil
	})).RunAndReturn(func(_ context.Context, distillery model.Distillery) (*model.Distillery, error) {
		distillery.ID = 11

		return &distillery, nil
	})

	recorder := suite.serve(postForm("/distillery/add", form), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/distillery/11", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestExportData_SortedByName() {
	zebra := suite.bottle(1, "Zebra", model.Scotch)
	zebra.ABV = pointy.Float64(46)
	apple := suite.bottle(2, "Apple", model.Bourbon)

	suite.bottles.EXPECT().GetBottlesForUser(mock.Anything, suite.owner.ID).Return([]*model.Bottle{zebra, apple}, nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/export_data/1", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal("text/csv; charset=utf-8", recorder.Header().Get("Content-Type"))

	rows, err := csv.NewReader(recorder.Body).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("Bottle Name", rows[0][0])
	suite.Equal("Date Killed", rows[0][13])
	suite.Equal("Apple", rows[1][0])
	suite.Equal("Zebra", rows[2][0])
	suite.Equal("Scotch", rows[2][1])
	suite.Equal("Buffalo Trace", rows[2][2])
	suite.Equal("46", rows[2][5])
}

func (suite *RouterTestSuite) TestExportData_OtherUserNotFound() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/export_data/1", nil), suite.sessionFor(suite.visitor))

	suite.Equal(http.StatusNotFound, recorder.Code)
	suite.bottles.AssertNotCalled(suite.T(), "GetBottlesForUser", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestLanding_RedirectsViewerHome() {
	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/", nil), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusFound, recorder.Code)
	suite.Equal("/owner", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestLanding_MarksVisitor() {
	suite.users.EXPECT().CountActiveUsers(mock.Anything).Return(int64(3), nil)
	suite.bottles.EXPECT().CountBottles(mock.Anything).Return(int64(12), nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/", nil), nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Contains(recorder.Body.String(), "12 bottles")

	names := []string{}
	for _, cookie := range recorder.Result().Cookies() {
		names = append(names, cookie.Name)
	}

	suite.Contains(names, "my-whiskies-user")
}

func (suite *RouterTestSuite) TestStaleSessionIsAnonymous() {
	gone := &model.User{ID: 4, Username: "gone", IsDeleted: true}
	recorder := httptest.NewRecorder()
	suite.Require().NoError(suite.authManager.StartSession(recorder, gone))

	suite.users.EXPECT().GetUserByID(mock.Anything, uint(4)).Return(gone, nil)

	request := httptest.NewRequest(http.MethodGet, "/bottle/add", nil)
	request.AddCookie(recorder.Result().Cookies()[0])

	response := suite.serve(request, nil)

	suite.Equal(http.StatusFound, response.Code)
	suite.True(strings.HasPrefix(response.Header().Get("Location"), "/login"))
}

func multipartBottle(fields url.Values, pictures int) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for name, values := range fields {
		for _, value := range values {
			_ = writer.WriteField(name, value)
		}
	}

	for i := 0; i < pictures; i++ {
		part, _ := writer.CreateFormFile("images", fmt.Sprintf("bottle-%d.png", i))
		_ = png.Encode(part, image.NewRGBA(image.Rect(0, 0, 8, 8)))
	}

	_ = writer.Close()

	request := httptest.NewRequest(http.MethodPost, "/bottle/add", &body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func bottleFields() url.Values {
	return url.Values{
		"name":         {"Blanton's"},
		"type":         {"BOURBON"},
		"distilleries": {"10"},
		"stars":        {"4.5"},
		"abv":          {"46.5"},
	}
}

func (suite *RouterTestSuite) TestAddBottle_WithPicture() {
	owned := []*model.Distillery{{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}}

	suite.distilleries.EXPECT().GetDistilleriesByIDs(mock.Anything, suite.owner.ID, []uint{10}).Return(owned, nil)
	suite.bottles.EXPECT().AddBottle(mock.Anything, mock.MatchedBy(func(bottle model.Bottle) bool {
		return bottle.Name == "Blanton's" && bottle.UserID == suite.owner.ID && *bottle.Stars == 4.5
	}), []uint{10}).RunAndReturn(func(_ context.Context, bottle model.Bottle, _ []uint) (*model.Bottle, error) {
		bottle.ID = 9

		return &bottle, nil
	})
	suite.imageRepo.EXPECT().GetBottleImages(mock.Anything, uint(9)).Return(nil, nil)
	suite.imageRepo.EXPECT().AddBottleImage(mock.Anything, uint(9), 1).Return(&model.BottleImage{BottleID: 9, Sequence: 1}, nil)

	recorder := suite.serve(multipartBottle(bottleFields(), 1), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/bottle/9", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestAddBottle_TooManyPictures() {
	owned := []*model.Distillery{{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}}

	suite.distilleries.EXPECT().GetDistilleriesByIDs(mock.Anything, suite.owner.ID, []uint{10}).Return(owned, nil)
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.owner.ID).Return(owned, nil)
	suite.bottlers.EXPECT().GetBottlersForUser(mock.Anything, suite.owner.ID).Return(nil, nil)

	recorder := suite.serve(multipartBottle(bottleFields(), 4), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.Contains(recorder.Body.String(), "at most 3 pictures")
	suite.bottles.AssertNotCalled(suite.T(), "AddBottle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestAddBottle_ForeignDistillery() {
	suite.distilleries.EXPECT().GetDistilleriesByIDs(mock.Anything, suite.visitor.ID, []uint{10}).Return(nil, nil)
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.visitor.ID).Return(nil, nil)
	suite.bottlers.EXPECT().GetBottlersForUser(mock.Anything, suite.visitor.ID).Return(nil, nil)

	recorder := suite.serve(multipartBottle(bottleFields(), 0), suite.sessionFor(suite.visitor))

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.bottles.AssertNotCalled(suite.T(), "AddBottle", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestAddBottle_PictureFailureRemovesBottle() {
	owned := []*model.Distillery{{ID: 10, UserID: suite.owner.ID, Name: "Buffalo Trace"}}

	suite.distilleries.EXPECT().GetDistilleriesByIDs(mock.Anything, suite.owner.ID, []uint{10}).Return(owned, nil)
	suite.distilleries.EXPECT().GetDistilleriesForUser(mock.Anything, suite.owner.ID).Return(owned, nil)
	suite.bottlers.EXPECT().GetBottlersForUser(mock.Anything, suite.owner.ID).Return(nil, nil)
	suite.bottles.EXPECT().AddBottle(mock.Anything, mock.Anything, []uint{10}).
		RunAndReturn(func(_ context.Context, bottle model.Bottle, _ []uint) (*model.Bottle, error) {
			bottle.ID = 9

			return &bottle, nil
		})
	suite.imageRepo.EXPECT().GetBottleImages(mock.Anything, uint(9)).Return(nil, nil)
	suite.imageRepo.EXPECT().AddBottleImage(mock.Anything, uint(9), 1).Return(nil, errors.New("connection reset"))
	suite.bottles.EXPECT().DeleteBottle(mock.Anything, uint(9)).Return(nil)

	recorder := suite.serve(multipartBottle(bottleFields(), 1), suite.sessionFor(suite.owner))

	suite.Equal(http.StatusUnprocessableEntity, recorder.Code)
	suite.Contains(recorder.Body.String(), "could not be saved")
}

func (suite *RouterTestSuite) TestLogin_StartsSession() {
	hash, err := auth.HashPassword("Sup3rSecretPass")
	suite.Require().NoError(err)

	user := &model.User{ID: 1, Username: "owner", PasswordHash: hash, EmailConfirmed: true}

	suite.users.EXPECT().GetUserByName(mock.Anything, "owner").Return(user, nil)
	suite.users.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(updated *model.User) bool {
		return updated.LastLoginAt != nil
	})).Return(nil)

	form := url.Values{"username": {"owner"}, "password": {"Sup3rSecretPass"}, "next": {"/bottle/add"}}
	recorder := suite.serve(postForm("/login", form), nil)

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/bottle/add", recorder.Header().Get("Location"))

	cookies := recorder.Result().Cookies()
	suite.Require().NotEmpty(cookies)
	suite.Equal(auth.SessionCookie, cookies[0].Name)
}

func (suite *RouterTestSuite) TestLogin_UnconfirmedRefused() {
	hash, err := auth.HashPassword("Sup3rSecretPass")
	suite.Require().NoError(err)

	user := &model.User{ID: 1, Username: "owner", PasswordHash: hash}
	suite.users.EXPECT().GetUserByName(mock.Anything, "owner").Return(user, nil)

	form := url.Values{"username": {"owner"}, "password": {"Sup3rSecretPass"}, "next": {"//evil.example.com"}}
	recorder := suite.serve(postForm("/login", form), nil)

	suite.Equal(http.StatusUnauthorized, recorder.Code)
	suite.Contains(recorder.Body.String(), "Invalid username or password.")
	suite.Empty(recorder.Result().Cookies())
}

func (suite *RouterTestSuite) TestConfirm_ConfirmsEmail() {
	pending := &model.User{ID: 7, Username: "collector"}
	token, err := suite.authManager.IssueToken(pending, auth.PurposeConfirm)
	suite.Require().NoError(err)

	suite.users.EXPECT().GetUserByID(mock.Anything, uint(7)).Return(pending, nil)
	suite.users.EXPECT().UpdateUser(mock.Anything, mock.MatchedBy(func(user *model.User) bool {
		return user.EmailConfirmed && user.EmailConfirmedAt != nil
	})).Return(nil)

	recorder := suite.serve(httptest.NewRequest(http.MethodPost, "/confirm_register/"+token, nil), nil)

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/login", recorder.Header().Get("Location"))
}

func (suite *RouterTestSuite) TestConfirm_ResetTokenRejected() {
	token, err := suite.authManager.IssueToken(&model.User{ID: 7}, auth.PurposeReset)
	suite.Require().NoError(err)

	recorder := suite.serve(httptest.NewRequest(http.MethodGet, "/confirm_register/"+token, nil), nil)

	suite.Equal(http.StatusSeeOther, recorder.Code)
	suite.Equal("/resend_register", recorder.Header().Get("Location"))
	suite.Equal(auth.ErrInvalidToken.Error(), flash(recorder))
}

func (suite *RouterTestSuite) TestReset_TokenWorksOnce() {
	hash, err := auth.HashPassword("Sup3rSecretPass")
	suite.Require().NoError(err)

	user := &model.User{ID: 7, Username: "collector", PasswordHash: hash, EmailConfirmed: true}
	token, err := suite.authManager.IssueToken(user, auth.PurposeReset)
	suite.Require().NoError(err)

	suite.users.EXPECT().GetUserByID(mock.Anything, uint(7)).Return(user, nil)
	suite.users.EXPECT().UpdateUser(mock.Anything, user).Return(nil).Once()

	form := url.Values{"password": {"N3wSecretPass"}, "password2": {"N3wSecretPass"}}

	first := suite.serve(postForm("/reset_password/"+token, form), nil)

	suite.Equal(http.StatusSeeOther, first.Code)
	suite.Equal("/login", first.Header().Get("Location"))
	suite.NotEqual(hash, user.PasswordHash)

	second := suite.serve(postForm("/reset_password/"+token, form), nil)

	suite.Equal(http.StatusSeeOther, second.Code)
	suite.Equal("/reset_password_request", second.Header().Get("Location"))
	suite.Equal(auth.ErrInvalidToken.Error(), flash(second))
}

func (suite *RouterTestSuite) TestResetRequest_SameAnswerForUnknownEmail() {
	suite.users.EXPECT().GetUserByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrNotFound)
	suite.users.EXPECT().GetUserByEmail(mock.Anything, "owner@example.com").Return(suite.owner, nil)
	suite.mailer.EXPECT().Send(mock.Anything, mock.MatchedBy(func(message mail.Message) bool {
		return message.To == "owner@example.com" && strings.Contains(message.Body, "/reset_password/")
	})).Return(nil).Once()

	unknown := suite.serve(postForm("/reset_password_request", url.Values{"email": {"nobody@example.com"}}), nil)
	known := suite.serve(postForm("/reset_password_request", url.Values{"email": {"Owner@Example.com"}}), nil)

	suite.Equal(http.StatusSeeOther, unknown.Code)
	suite.Equal(unknown.Header().Get("Location"), known.Header().Get("Location"))
	suite.Equal(flash(unknown), flash(known))
}
