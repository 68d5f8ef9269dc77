package api

import (
	"errors"
	"github.com/fitlife/fitlife_backend/internal/adapter/music"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
)

const defaultPlaylistLimit = 10

func (s *Server) MountMusic() {
	s.handler.POST("/motivated", s.Motivated, LoginRequired(s.authService.Authorizer))
}

type MotivatedRequest struct {
	Keyword string `form:"keyword" json:"keyword"`
}

type PlaylistResult struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MusicLink   string `json:"music_link"`
	ImageLink   string `json:"image_link"`
}

type MotivatedResponse struct {
	Results []PlaylistResult `json:"results"`
}

func (s *Server) Motivated(c echo.Context) error {
	var req MotivatedRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	playlists, err := s.musicService.Playlists(c.Request().Context(), req.Keyword, defaultPlaylistLimit)
	if err != nil {
		if errors.Is(err, music.ErrNoResults) {
			return JsonError(c, http.StatusNotFound, "no playlists found, try another keyword")
		}
		if errors.Is(err, music.ErrUnavailable) {
			return JsonError(c, http.StatusBadGateway, "music service is unavailable, try again later")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, MotivatedResponse{
		Results: lo.Map(playlists, func(p music.Playlist, _ int) PlaylistResult {
			return PlaylistResult{
				Name:        p.Name,
				Description: p.Description,
				MusicLink:   p.EmbedURL,
				ImageLink:   p.ImageURL,
			}
		}),
	})
}
