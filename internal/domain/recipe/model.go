package recipe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsafeField = errors.New("field contains reserved delimiter")
)

const (
	// Delimiter joins the id components; the raw ingredients string uses
	// "|" between entries, so "&" stays safe to join on.
	Delimiter = "&"

	ingredientsSep = "|"
)

// ID identifies a recipe by its title plus the raw pipe-delimited
// ingredients string it was fetched with.
type ID struct {
	Title          string
	RawIngredients string
}

func (id ID) Encode() (string, error) {
	if strings.Contains(id.Title, Delimiter) || strings.Contains(id.RawIngredients, Delimiter) {
		return "", fmt.Errorf("%w: %q", ErrUnsafeField, id.Title)
	}
	return id.Title + Delimiter + id.RawIngredients, nil
}

type Recipe struct {
	ID           ID
	Title        string
	Ingredients  []string
	Servings     string
	Instructions string
	ImageURL     string
}

// SplitIngredients breaks a raw "a|b|c" ingredients string into an ordered
// list, keeping entries as-is.
func SplitIngredients(raw string) []string {
	return strings.Split(raw, ingredientsSep)
}
