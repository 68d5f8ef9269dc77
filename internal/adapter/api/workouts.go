package api

import (
	"errors"
	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	workoutservice "github.com/fitlife/fitlife_backend/internal/app/workout"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
	"net/url"
	"time"
)

func (s *Server) MountWorkouts() {
	loginRequired := LoginRequired(s.authService.Authorizer)

	s.handler.POST("/workouts/search", s.SearchWorkouts, loginRequired)
	s.handler.POST("/favourites", s.AddFavourites, loginRequired)
	s.handler.GET("/favourites", s.ListFavourites, loginRequired)
	s.handler.DELETE("/favourites/:exercise_id", s.RemoveFavourite, loginRequired)
}

func (s *Server) getWorkoutUoW() *unitofwork.UnitOfWork[*workoutservice.AtomicContext] {
	return unitofwork.New[*workoutservice.AtomicContext](
		s.db,
		workoutservice.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type SearchWorkoutsRequest struct {
	Type       string `form:"exercise" json:"type"`
	Muscle     string `form:"muscle" json:"muscle"`
	Difficulty string `form:"difficulty" json:"difficulty"`
	Limit      int    `form:"results_number" json:"limit" validate:"omitempty,gt=0,lte=50"`
}

type ExerciseResult struct {
	ExerciseID   string `json:"exercise_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Difficulty   string `json:"difficulty"`
	Equipment    string `json:"equipment"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
}

type SearchWorkoutsResponse struct {
	Results []ExerciseResult `json:"results"`
}

func (s *Server) SearchWorkouts(c echo.Context) error {
	var req SearchWorkoutsRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	results, err := s.workoutService.Search(c.Request().Context(), catalog.Filter{
		Type:       req.Type,
		Muscle:     req.Muscle,
		Difficulty: req.Difficulty,
	}, req.Limit)
	if err != nil {
		if errors.Is(err, workoutservice.ErrEmptyFilter) {
			return JsonError(c, http.StatusBadRequest, "at least one filter is required")
		}
		if errors.Is(err, catalog.ErrUnavailable) {
			return JsonError(c, http.StatusBadGateway, "exercise catalog is unavailable, try again later")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, SearchWorkoutsResponse{
		Results: lo.Map(results, func(e workoutservice.Exercise, _ int) ExerciseResult {
			return ExerciseResult{
				ExerciseID:   e.ID,
				Name:         e.Name,
				Type:         e.Type,
				Muscle:       e.Muscle,
				Difficulty:   e.Difficulty,
				Equipment:    e.Equipment,
				Instructions: e.Instructions,
				ImageURL:     e.ImageURL,
			}
		}),
	})
}

type FavouriteSelection struct {
	ExerciseID   string `json:"exercise_id" validate:"required"`
	Equipment    string `json:"equipment"`
	Instructions string `json:"instructions"`
	ImageURL     string `json:"image_url"`
}

type AddFavouritesRequest struct {
	Selected []FavouriteSelection `json:"selected" validate:"required,min=1,dive"`
}

func (s *Server) AddFavourites(c echo.Context) error {
	var req AddFavouritesRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getWorkoutUoW()

	selections := lo.Map(req.Selected, func(f FavouriteSelection, _ int) workoutservice.Selection {
		return workoutservice.Selection{
			ExerciseID:   f.ExerciseID,
			Equipment:    f.Equipment,
			Instructions: f.Instructions,
			ImageURL:     f.ImageURL,
		}
	})

	if err := s.workoutService.AddFavourites(c.Request().Context(), uow, u.UserID, selections); err != nil {
		if errors.Is(err, exercise.ErrMalformedID) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.NoContent(http.StatusCreated)
}

type Favourite struct {
	ExerciseID   string    `json:"exercise_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Muscle       string    `json:"muscle"`
	Difficulty   string    `json:"difficulty"`
	Equipment    string    `json:"equipment"`
	Instructions string    `json:"instructions"`
	ImageURL     string    `json:"image_url"`
	AddedAt      time.Time `json:"added_at"`
}

type ListFavouritesResponse struct {
	Favourites []Favourite `json:"favourites"`
}

func (s *Server) ListFavourites(c echo.Context) error {
	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getWorkoutUoW()

	favourites, err := s.workoutService.ListFavourites(c.Request().Context(), uow, u.UserID)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, ListFavouritesResponse{
		Favourites: favouritesResponse(favourites),
	})
}

func favouritesResponse(favourites []*exercise.Favourite) []Favourite {
	return lo.Map(favourites, func(f *exercise.Favourite, _ int) Favourite {
		// The id encoded from stored components; components never carry
		// the delimiter past Add, so encoding cannot fail here.
		encodedID, _ := f.Exercise.Encode()
		return Favourite{
			ExerciseID:   encodedID,
			Name:         f.Exercise.Name,
			Type:         f.Exercise.Type,
			Muscle:       f.Exercise.Muscle,
			Difficulty:   f.Exercise.Difficulty,
			Equipment:    f.Equipment,
			Instructions: f.Instructions,
			ImageURL:     f.ImageURL,
			AddedAt:      f.AddedAt,
		}
	})
}

func (s *Server) RemoveFavourite(c echo.Context) error {
	exerciseID, err := url.PathUnescape(c.Param("exercise_id"))
	if err != nil {
		return JsonError(c, http.StatusBadRequest, "invalid exercise id")
	}

	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)
	uow := s.getWorkoutUoW()

	err = s.workoutService.RemoveFavourites(c.Request().Context(), uow, u.UserID, []string{exerciseID})
	if err != nil {
		if errors.Is(err, exercise.ErrMalformedID) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		if errors.Is(err, exercise.ErrFavouriteNotFound) {
			return JsonError(c, http.StatusNotFound, "favourite not found")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.NoContent(http.StatusNoContent)
}
