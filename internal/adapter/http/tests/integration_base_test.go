package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	dbadapter "taskapi/internal/adapter/db"
	httpadapter "taskapi/internal/adapter/http"
	"taskapi/internal/adapter/http/handlers"
	"taskapi/internal/app/service"
	"taskapi/internal/config"
	"taskapi/pkg/apierrors"
	"taskapi/pkg/translator"
)

// IntegrationSuiteBase serves the full HTTP stack over a freshly migrated
// database for every test.
type IntegrationSuiteBase struct {
	suite.Suite

	conf   *config.Config
	DB     *sqlx.DB
	router *gin.Engine
	clock  time.Time
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr, translator.LanguagePt},
	})
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.conf = testDatabaseConfig(s.T())
	s.Require().NoError(dbadapter.MigrateUp(s.conf))

	db, err := dbadapter.ConnectDB(s.conf)
	s.Require().NoError(err)
	s.DB = db

	s.clock = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	withClock := service.WithClock(s.tick)

	store := dbadapter.NewStore(db)
	taskRepository := dbadapter.NewTaskRepository(store)
	tagRepository := dbadapter.NewTagRepository(store)
	taskTagRepository := dbadapter.NewTaskTagRepository(store)
	userRepository := dbadapter.NewUserRepository(store)

	router, err := httpadapter.NewEngine(zap.NewNop(), nil)
	s.Require().NoError(err)
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(db, "taskapi", s.conf.DbDriver),
		handlers.NewTaskHandler(service.NewTaskService(store, taskRepository, tagRepository, taskTagRepository, withClock)),
		handlers.NewTagHandler(service.NewTagService(store, tagRepository, withClock)),
		handlers.NewUserHandler(service.NewUserService(store, userRepository, withClock)),
	)
	s.router = router
}

func (s *IntegrationSuiteBase) TearDownTest() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
		s.DB = nil
	}
	if s.conf == nil {
		return
	}

	m, err := dbadapter.NewMigrator(s.conf)
	s.Require().NoError(err)
	s.Require().NoError(m.Down(0))
	s.Require().NoError(m.Close())
	s.conf = nil
}

// tick advances the service clock by a minute per call.
func (s *IntegrationSuiteBase) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *IntegrationSuiteBase) do(method, path string, body any) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		payload, ok := body.(string)
		if !ok {
			encoded, err := json.Marshal(body)
			s.Require().NoError(err)
			payload = string(encoded)
		}
		req = httptest.NewRequest(method, path, bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// decode asserts the status code and unmarshals the body into out.
func (s *IntegrationSuiteBase) decode(rec *httptest.ResponseRecorder, status int, out any) {
	s.Require().Equal(status, rec.Code, rec.Body.String())
	if out != nil {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
	}
}

func (s *IntegrationSuiteBase) decodeError(rec *httptest.ResponseRecorder, status int) apierrors.Err {
	var got apierrors.JsonErr
	s.decode(rec, status, &got)
	s.Require().Equal(status, got.ErrDetails.Code)
	return got.ErrDetails
}
