package domain

// FavoriteLink associates one user with one catalog item of a kind.
type FavoriteLink struct {
	ID     int64
	UserID int64
	ItemID int64
	Kind   Kind
}

// Favorites groups the catalog items a user has favorited by kind.
// The slices are never nil so empty groups serialize as [].
type Favorites struct {
	Characters []*Character
	Planets    []*Planet
	Vehicles   []*Vehicle
}

// NewFavorites returns an empty grouping.
func NewFavorites() *Favorites {
	return &Favorites{
		Characters: []*Character{},
		Planets:    []*Planet{},
		Vehicles:   []*Vehicle{},
	}
}

// Len returns the total number of favorites across kinds.
func (f *Favorites) Len() int {
	return len(f.Characters) + len(f.Planets) + len(f.Vehicles)
}

// UserWithFavorites is a user together with the items they favorited.
type UserWithFavorites struct {
	User      *User
	Favorites *Favorites
}
