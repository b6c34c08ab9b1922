package postgres

import (
	"fmt"

	"github.com/phrazzld/holocron-api/internal/domain"
)

// kindTables names the catalog table, the favorite link table and the link
// table's item column for one kind.
type kindTables struct {
	catalog  string
	favorite string
	column   string
}

var tablesByKind = map[domain.Kind]kindTables{
	domain.KindCharacter: {catalog: "characters", favorite: "favorite_characters", column: "character_id"},
	domain.KindPlanet:    {catalog: "planets", favorite: "favorite_planets", column: "planet_id"},
	domain.KindVehicle:   {catalog: "vehicles", favorite: "favorite_vehicles", column: "vehicle_id"},
}

func tablesFor(kind domain.Kind) (kindTables, error) {
	t, ok := tablesByKind[kind]
	if !ok {
		return kindTables{}, fmt.Errorf("%w: %q", domain.ErrInvalidKind, kind)
	}
	return t, nil
}

const (
	characterColumns = "id, first_name, last_name, image_url, biography, birthday, gender"
	planetColumns    = "id, name, image_url, history, population, terrain, inhabitants, language"
	vehicleColumns   = "id, name, type, passengers"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCharacter(r rowScanner) (*domain.Character, error) {
	var c domain.Character
	err := r.Scan(&c.ID, &c.FirstName, &c.LastName, &c.ImageURL, &c.Biography, &c.Birthday, &c.Gender)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanPlanet(r rowScanner) (*domain.Planet, error) {
	var p domain.Planet
	err := r.Scan(&p.ID, &p.Name, &p.ImageURL, &p.History, &p.Population, &p.Terrain, &p.Inhabitants, &p.Language)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanVehicle(r rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	if err := r.Scan(&v.ID, &v.Name, &v.Type, &v.Passengers); err != nil {
		return nil, err
	}
	return &v, nil
}
