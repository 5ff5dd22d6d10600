// internal/handlers/lobby.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/roster/internal/models"
	"github.com/jason-s-yu/roster/internal/roster"
)

type createLobbyRequest struct {
	GuildID string `json:"guildId"`
	Name    string `json:"name"`
}

type joinRequest struct {
	DiscordID   string `json:"discordId"`
	DiscordName string `json:"discordName"`
	Team        string `json:"team"`
	Role        string `json:"role"`
}

type joinResponse struct {
	Success  bool        `json:"success"`
	LobbyID  string      `json:"lobbyId"`
	PlayerID string      `json:"playerId"`
	Team     models.Team `json:"team"`
	Role     models.Role `json:"role"`
}

type leaveRequest struct {
	DiscordID string `json:"discordId"`
}

type kickRequest struct {
	Team string `json:"team"`
	Role string `json:"role"`
}

type kickResponse struct {
	Success   bool   `json:"success"`
	DiscordID string `json:"discordId,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

// CreateLobbyHandler creates an active lobby for a guild.
func CreateLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createLobbyRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		lobby, err := svc.CreateLobby(r.Context(), &roster.CreateLobbyInput{GuildID: req.GuildID, Name: req.Name})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusCreated, lobby)
	}
}

// ListLobbiesHandler lists every lobby of the guild given by ?guildId=.
func ListLobbiesHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lobbies, err := svc.ListLobbies(r.Context(), r.URL.Query().Get("guildId"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, lobbies)
	}
}

// GetLobbyHandler returns the lobby with both teams laid out slot by slot.
func GetLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.BuildRosterView(r.Context(), chi.URLParam(r, "lobbyId"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func JoinLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lobbyID := chi.URLParam(r, "lobbyId")

		var req joinRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		out, err := svc.Join(r.Context(), &roster.JoinInput{
			LobbyID:     lobbyID,
			ExternalID:  req.DiscordID,
			DisplayName: req.DiscordName,
			Team:        req.Team,
			Role:        req.Role,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, joinResponse{
			Success:  true,
			LobbyID:  out.Assignment.LobbyID,
			PlayerID: out.Assignment.PlayerID,
			Team:     out.Assignment.Team,
			Role:     out.Assignment.Role,
		})
	}
}

// LeaveLobbyHandler frees the caller's slot. The discord id comes from the
// JSON body, or from ?discordId= for clients that cannot send a DELETE body.
func LeaveLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := leaveRequest{DiscordID: r.URL.Query().Get("discordId")}
		if req.DiscordID == "" {
			if err := decodeBody(r, &req); err != nil {
				writeError(w, r, log, err)
				return
			}
		}

		_, err := svc.Leave(r.Context(), &roster.LeaveInput{
			LobbyID:    chi.URLParam(r, "lobbyId"),
			ExternalID: req.DiscordID,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func KickPlayerHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req kickRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, log, err)
			return
		}

		out, err := svc.Kick(r.Context(), &roster.KickInput{
			LobbyID: chi.URLParam(r, "lobbyId"),
			Team:    req.Team,
			Role:    req.Role,
		})
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, kickResponse{Success: true, DiscordID: out.ExternalID})
	}
}

func CloseLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CloseLobby(r.Context(), chi.URLParam(r, "lobbyId")); err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func DeleteLobbyHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteLobby(r.Context(), chi.URLParam(r, "lobbyId")); err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, successResponse{Success: true})
	}
}

func PlayerCountHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.CountPlayers(r.Context(), chi.URLParam(r, "lobbyId"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, countResponse{Count: n})
	}
}

// LobbyEventsHandler returns the recorded history of a lobby, newest first.
func LobbyEventsHandler(svc roster.Service, log *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, r, log, fmt.Errorf("%w: limit must be a number", roster.ErrInvalidInput))
				return
			}
			limit = n
		}

		events, err := svc.LobbyHistory(r.Context(), chi.URLParam(r, "lobbyId"), limit)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}
