package api

import (
	"errors"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	"github.com/fitlife/fitlife_backend/internal/domain/user"
	"github.com/fitlife/fitlife_backend/internal/domain/vitals"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (s *Server) MountProfile() {
	s.handler.GET("/profile", s.GetProfile, LoginRequired(s.authService.Authorizer))
}

type ProfileResponse struct {
	Name       string          `json:"name"`
	Report     *ReportResponse `json:"report,omitempty"`
	Favourites []Favourite     `json:"favourites"`
}

// GetProfile aggregates the profile page: display name (health-test name if
// submitted, username otherwise), the stored report if any, and favourites.
func (s *Server) GetProfile(c echo.Context) error {
	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	ctx := c.Request().Context()

	var resp ProfileResponse

	v, err := s.vitalsService.GetVitals(ctx, s.getVitalsUoW(), u.UserID)
	switch {
	case err == nil:
		resp.Name = v.Name
	case errors.Is(err, vitals.ErrVitalsNotFound):
		account, err := s.authService.GetUser(ctx, s.getAuthUoW(), u.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return JsonError(c, http.StatusNotFound, "user not found")
			}
			return JsonError(c, http.StatusInternalServerError, err)
		}
		resp.Name = account.Username
	default:
		return JsonError(c, http.StatusInternalServerError, err)
	}

	report, err := s.vitalsService.GetReport(ctx, s.getVitalsUoW(), u.UserID)
	if err == nil {
		r := reportResponse(report)
		resp.Report = &r
	} else if !errors.Is(err, vitals.ErrReportNotFound) {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	favourites, err := s.workoutService.ListFavourites(ctx, s.getWorkoutUoW(), u.UserID)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}
	resp.Favourites = favouritesResponse(favourites)

	return c.JSON(http.StatusOK, resp)
}
