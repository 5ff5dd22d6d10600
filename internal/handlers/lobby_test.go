// internal/handlers/lobby_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jason-s-yu/roster/internal/common/clock"
	"github.com/jason-s-yu/roster/internal/database"
	"github.com/jason-s-yu/roster/internal/models"
	"github.com/jason-s-yu/roster/internal/roster"
	"github.com/jason-s-yu/roster/internal/roster/mocks"
)

type LobbyHandlersTestSuite struct {
	suite.Suite
	store   database.Store
	handler http.Handler
	testNow time.Time
}

func (s *LobbyHandlersTestSuite) SetupTest() {
	ctx := context.Background()
	s.testNow = time.Date(2025, 4, 5, 20, 0, 0, 0, time.UTC)
	logger, _ := test.NewNullLogger()

	store, err := database.OpenSQLite(ctx, &database.SQLiteConfig{
		Config: database.Config{Logger: logger, Clock: clock.Fixed(s.testNow)},
		Path:   filepath.Join(s.T().TempDir(), "roster.db"),
	})
	s.Require().NoError(err)
	s.store = store

	engine, err := roster.New(&roster.Config{Store: store, Logger: logger, Clock: clock.Fixed(s.testNow)})
	s.Require().NoError(err)

	s.handler = NewRouter(&RouterConfig{
		Service:    engine,
		Logger:     logger,
		Clock:      clock.Fixed(s.testNow),
		CORSOrigin: "*",
	})
}

func (s *LobbyHandlersTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func TestLobbyHandlersSuite(t *testing.T) {
	suite.Run(t, new(LobbyHandlersTestSuite))
}

func (s *LobbyHandlersTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *LobbyHandlersTestSuite) createLobby() models.Lobby {
	rec := s.do(http.MethodPost, "/api/lobbies", `{"guildId":"g1","name":"Friday Night"}`)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var lobby models.Lobby
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &lobby))
	return lobby
}

func (s *LobbyHandlersTestSuite) join(lobbyID, discordID, team, role string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]string{
		"discordId":   discordID,
		"discordName": "name-" + discordID,
		"team":        team,
		"role":        role,
	})
	return s.do(http.MethodPost, "/api/lobbies/"+lobbyID+"/join", string(body))
}

func errorOf(rec *httptest.ResponseRecorder) string {
	var body errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body.Error
}

func (s *LobbyHandlersTestSuite) TestPing() {
	rec := s.do(http.MethodGet, "/api/ping", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"alive","time":"2025-04-05T20:00:00.000Z"}`, rec.Body.String())
}

func (s *LobbyHandlersTestSuite) TestCreateLobby() {
	lobby := s.createLobby()
	s.NotEmpty(lobby.ID)
	s.Equal("g1", lobby.GuildID)
	s.True(lobby.IsActive)

	rec := s.do(http.MethodPost, "/api/lobbies", `{"guildId":"g1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/lobbies", "")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(errorOf(rec), "request body is required")

	rec = s.do(http.MethodPost, "/api/lobbies", "{not json")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestListLobbies() {
	first := s.createLobby()
	second := s.createLobby()

	rec := s.do(http.MethodGet, "/api/lobbies?guildId=g1", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var lobbies []models.Lobby
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &lobbies))
	s.Require().Len(lobbies, 2)
	s.Equal(first.ID, lobbies[0].ID)
	s.Equal(second.ID, lobbies[1].ID)

	rec = s.do(http.MethodGet, "/api/lobbies?guildId=nobody", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/lobbies", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestJoinFlow() {
	lobby := s.createLobby()

	rec := s.join(lobby.ID, "u1", "light", "carry")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var joined joinResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &joined))
	s.True(joined.Success)
	s.Equal(lobby.ID, joined.LobbyID)
	s.NotEmpty(joined.PlayerID)
	s.Equal(models.TeamLight, joined.Team)
	s.Equal(models.RoleCarry, joined.Role)

	rec = s.join(lobby.ID, "u2", "light", "carry")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("this role in the team is already taken", errorOf(rec))

	rec = s.do(http.MethodDelete, "/api/lobbies/"+lobby.ID+"/leave", `{"discordId":"u1"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true}`, rec.Body.String())

	rec = s.join(lobby.ID, "u2", "light", "carry")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/lobbies/"+lobby.ID+"/player-count", "")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"count":1}`, rec.Body.String())
}

func (s *LobbyHandlersTestSuite) TestJoinErrors() {
	lobby := s.createLobby()

	rec := s.join(lobby.ID, "u1", "radiant", "carry")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(errorOf(rec), "invalid team")

	rec = s.join("missing", "u1", "light", "carry")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("lobby not found", errorOf(rec))

	s.Require().Equal(http.StatusOK, s.join(lobby.ID, "u1", "light", "mid").Code)
	rec = s.join(lobby.ID, "u1", "dark", "mid")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestLeave() {
	lobby := s.createLobby()

	rec := s.do(http.MethodDelete, "/api/lobbies/"+lobby.ID+"/leave", `{"discordId":"ghost"}`)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("player not found in lobby", errorOf(rec))

	s.Require().Equal(http.StatusOK, s.join(lobby.ID, "u1", "dark", "mid").Code)
	rec = s.do(http.MethodDelete, "/api/lobbies/"+lobby.ID+"/leave?discordId=u1", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestKick() {
	lobby := s.createLobby()
	path := "/api/lobbies/" + lobby.ID + "/kick"

	rec := s.do(http.MethodPost, path, `{"team":"dark","role":"support"}`)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("no player found in this position", errorOf(rec))

	s.Require().Equal(http.StatusOK, s.join(lobby.ID, "u1", "dark", "support").Code)
	rec = s.do(http.MethodPost, path, `{"team":"dark","role":"support"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"success":true,"discordId":"u1"}`, rec.Body.String())

	rec = s.do(http.MethodPost, path, `{"team":"dark","role":"jungle"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestRosterView() {
	lobby := s.createLobby()
	s.Require().Equal(http.StatusOK, s.join(lobby.ID, "u1", "dark", "offlane").Code)

	rec := s.do(http.MethodGet, "/api/lobbies/"+lobby.ID, "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"id", "guildId", "name", "isActive", "createdAt", "players", "teams"} {
		s.Contains(raw, key)
	}

	var view models.RosterView
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &view))
	s.Equal(lobby.ID, view.ID)
	s.Len(view.Teams.Light, 5)
	s.Len(view.Teams.Dark, 5)
	s.Equal(models.RoleOfflane, view.Teams.Dark[2].Role)
	s.Require().NotNil(view.Teams.Dark[2].Player)
	s.Equal("u1", view.Teams.Dark[2].Player.ExternalID)
	s.Nil(view.Teams.Light[0].Player)
	s.Contains(rec.Body.String(), `"player":null`)

	rec = s.do(http.MethodGet, "/api/lobbies/missing", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestCloseAndDelete() {
	lobby := s.createLobby()
	path := "/api/lobbies/" + lobby.ID

	s.Equal(http.StatusOK, s.do(http.MethodPost, path+"/close", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodPost, path+"/close", "").Code)

	rec := s.join(lobby.ID, "u1", "light", "carry")
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("lobby is closed", errorOf(rec))

	s.Equal(http.StatusOK, s.do(http.MethodDelete, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, path, "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodPost, path+"/close", "").Code)
	s.Equal(http.StatusNotFound, s.do(http.MethodGet, path+"/player-count", "").Code)
}

func (s *LobbyHandlersTestSuite) TestEvents() {
	lobby := s.createLobby()
	s.Require().NoError(s.store.InsertEvents(context.Background(), []models.RosterEvent{
		{ID: "e1", LobbyID: lobby.ID, Type: models.EventLobbyCreated, OccurredAt: s.testNow},
		{ID: "e2", LobbyID: lobby.ID, Type: models.EventPlayerJoined, ExternalID: "u1", OccurredAt: s.testNow.Add(time.Second)},
	}))

	rec := s.do(http.MethodGet, "/api/lobbies/"+lobby.ID+"/events?limit=1", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	var events []models.RosterEvent
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &events))
	s.Require().Len(events, 1)
	s.Equal("e2", events[0].ID)

	rec = s.do(http.MethodGet, "/api/lobbies/"+lobby.ID+"/events?limit=abc", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *LobbyHandlersTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/nothing", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func TestStorageFailureIsHidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	logger, hook := test.NewNullLogger()

	svc.EXPECT().CountPlayers(gomock.Any(), "l1").Return(0, errors.New("count players: disk I/O error"))

	h := NewRouter(&RouterConfig{Service: svc, Logger: logger})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lobbies/l1/player-count", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())

	var logged bool
	for _, entry := range hook.AllEntries() {
		err, ok := entry.Data[logrus.ErrorKey].(error)
		if ok && entry.Level == logrus.ErrorLevel && strings.Contains(err.Error(), "disk I/O") {
			logged = true
		}
	}
	assert.True(t, logged, "storage failure should be logged")
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{roster.ErrInvalidInput, http.StatusBadRequest},
		{roster.ErrSlotTaken, http.StatusBadRequest},
		{roster.ErrAlreadyInLobby, http.StatusBadRequest},
		{roster.ErrLobbyClosed, http.StatusConflict},
		{roster.ErrLobbyNotFound, http.StatusNotFound},
		{roster.ErrNotInLobby, http.StatusNotFound},
		{roster.ErrSlotEmpty, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, statusFor(tc.err), tc.err.Error())
	}
}
