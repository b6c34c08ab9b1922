package api

import "github.com/phrazzld/holocron-api/internal/domain"

// CharacterResponse is the public view of a character.
type CharacterResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
	Biography string `json:"biography"`
	Birthday  int    `json:"birthday"`
	Gender    string `json:"gender"`
}

// PlanetResponse is the public view of a planet. Population is not exposed.
type PlanetResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	History     string `json:"history"`
	Terrain     string `json:"terrain"`
	Inhabitants string `json:"inhabitants"`
	Language    string `json:"language"`
}

// VehicleResponse is the public view of a vehicle.
type VehicleResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Passengers int    `json:"passengers"`
}

// FavoritesResponse groups favorited items by kind. Empty groups render as [].
type FavoritesResponse struct {
	Characters []CharacterResponse `json:"characters"`
	Planets    []PlanetResponse    `json:"planets"`
	Vehicles   []VehicleResponse   `json:"vehicles"`
}

// UserFavoritesResponse is the body of GET /users/{id}/favorites.
type UserFavoritesResponse struct {
	Favorites FavoritesResponse `json:"favorites"`
}

// UserResponse is the public view of a user. It has no password field.
type UserResponse struct {
	ID        int64             `json:"id"`
	Email     string            `json:"email"`
	Favorites FavoritesResponse `json:"favorites"`
}

// FavoriteRequest is the body of POST and DELETE /favorite/{kind}/{id}.
type FavoriteRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// FavoriteLinkResponse echoes the link; exactly one item field is set.
type FavoriteLinkResponse struct {
	UserID      int64 `json:"user_id"`
	CharacterID int64 `json:"character_id,omitempty"`
	PlanetID    int64 `json:"planet_id,omitempty"`
	VehicleID   int64 `json:"vehicle_id,omitempty"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// RouteResponse is one entry of the sitemap.
type RouteResponse struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

func characterToResponse(c *domain.Character) CharacterResponse {
	return CharacterResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		ImageURL:  c.ImageURL,
		Biography: c.Biography,
		Birthday:  c.Birthday,
		Gender:    c.Gender,
	}
}

func planetToResponse(p *domain.Planet) PlanetResponse {
	return PlanetResponse{
		ID:          p.ID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		History:     p.History,
		Terrain:     p.Terrain,
		Inhabitants: p.Inhabitants,
		Language:    p.Language,
	}
}

func vehicleToResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Name:       v.Name,
		Type:       v.Type,
		Passengers: v.Passengers,
	}
}

// mapSlice converts every element with fn. The result is never nil.
func mapSlice[T any, R any](items []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}

func favoritesToResponse(f *domain.Favorites) FavoritesResponse {
	if f == nil {
		f = domain.NewFavorites()
	}
	return FavoritesResponse{
		Characters: mapSlice(f.Characters, characterToResponse),
		Planets:    mapSlice(f.Planets, planetToResponse),
		Vehicles:   mapSlice(f.Vehicles, vehicleToResponse),
	}
}

func userToResponse(u *domain.UserWithFavorites) UserResponse {
	return UserResponse{
		ID:        u.User.ID,
		Email:     u.User.Email,
		Favorites: favoritesToResponse(u.Favorites),
	}
}

func linkToResponse(link *domain.FavoriteLink) FavoriteLinkResponse {
	resp := FavoriteLinkResponse{UserID: link.UserID}
	switch link.Kind {
	case domain.KindCharacter:
		resp.CharacterID = link.ItemID
	case domain.KindPlanet:
		resp.PlanetID = link.ItemID
	case domain.KindVehicle:
		resp.VehicleID = link.ItemID
	}
	return resp
}
