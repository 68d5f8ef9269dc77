package api

import (
	"errors"
	recipeservice "github.com/fitlife/fitlife_backend/internal/app/recipes"
	"github.com/fitlife/fitlife_backend/internal/domain/recipe"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"net/http"
)

const defaultRecipeLimit = 3

func (s *Server) MountRecipes() {
	s.handler.POST("/recipes/search", s.SearchRecipes, LoginRequired(s.authService.Authorizer))
}

type SearchRecipesRequest struct {
	Query string `form:"query" json:"query" validate:"required"`
}

type RecipeResult struct {
	RecipeID     string   `json:"recipe_id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Servings     string   `json:"servings"`
	Instructions string   `json:"instructions"`
	ImageURL     string   `json:"image_url"`
}

type SearchRecipesResponse struct {
	Results []RecipeResult `json:"results"`
}

func (s *Server) SearchRecipes(c echo.Context) error {
	var req SearchRecipesRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	recipes, err := s.recipeService.Search(c.Request().Context(), req.Query, defaultRecipeLimit)
	if err != nil {
		if errors.Is(err, recipeservice.ErrNoResults) {
			return JsonError(c, http.StatusNotFound, "no recipes found, try another query")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, SearchRecipesResponse{
		Results: lo.Map(recipes, func(r recipe.Recipe, _ int) RecipeResult {
			// Same reasoning as favourites: fields come straight from the
			// provider and are only encoded, never split, so a delimiter
			// collision degrades to an empty id rather than a failure.
			encodedID, _ := r.ID.Encode()
			return RecipeResult{
				RecipeID:     encodedID,
				Title:        r.Title,
				Ingredients:  r.Ingredients,
				Servings:     r.Servings,
				Instructions: r.Instructions,
				ImageURL:     r.ImageURL,
			}
		}),
	})
}
