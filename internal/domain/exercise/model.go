package exercise

import (
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"strings"
	"time"
)

var (
	ErrUnsafeField       = errors.New("field contains reserved delimiter")
	ErrMalformedID       = errors.New("malformed exercise id")
	ErrFavouriteExists   = errors.New("favourite already exists")
	ErrFavouriteNotFound = errors.New("favourite not found")
)

const (
	EventFavouriteAdded = "favourite.added"

	// Delimiter joins the id components. None of the catalog fields is
	// expected to contain it; Encode refuses components that do.
	Delimiter = "&"
)

// ID identifies a catalog exercise by the raw (untransformed) field values it
// was fetched with. It round-trips through Encode/ParseID so favourites can
// be keyed and unkeyed by a single string.
type ID struct {
	Name       string
	Type       string
	Muscle     string
	Difficulty string
}

func (id ID) Encode() (string, error) {
	parts := []string{id.Name, id.Type, id.Muscle, id.Difficulty}
	for _, p := range parts {
		if strings.Contains(p, Delimiter) {
			return "", fmt.Errorf("%w: %q", ErrUnsafeField, p)
		}
	}
	return strings.Join(parts, Delimiter), nil
}

func ParseID(s string) (ID, error) {
	parts := strings.Split(s, Delimiter)
	if len(parts) != 4 {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return ID{
		Name:       parts[0],
		Type:       parts[1],
		Muscle:     parts[2],
		Difficulty: parts[3],
	}, nil
}

// Favourite is an exercise a user saved from search results. The display
// fields (equipment, instructions, image) travel with it so the profile page
// does not need another catalog call.
type Favourite struct {
	domain.Aggregate
	UserID       string
	Exercise     ID
	Equipment    string
	Instructions string
	ImageURL     string
	AddedAt      time.Time
}

func NewFavourite(
	userID string,
	ex ID,
	equipment string,
	instructions string,
	imageURL string,
) *Favourite {
	f := &Favourite{
		UserID:       userID,
		Exercise:     ex,
		Equipment:    equipment,
		Instructions: instructions,
		ImageURL:     imageURL,
		AddedAt:      time.Now().UTC(),
	}
	f.PushEvent(FavouriteAddedEvent{
		At:     f.AddedAt,
		UserID: userID,
		Name:   ex.Name,
	})
	return f
}

type FavouriteAddedEvent struct {
	At     time.Time
	UserID string
	Name   string
}

func (e FavouriteAddedEvent) Type() string {
	return EventFavouriteAdded
}

func (e FavouriteAddedEvent) PublishedAt() time.Time {
	return e.At
}
