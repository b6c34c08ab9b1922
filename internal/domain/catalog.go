package domain

// Character is a person of the catalog.
type Character struct {
	ID        int64
	FirstName string
	LastName  string
	ImageURL  string
	Biography string
	Birthday  int
	Gender    string
}

// Planet is a world of the catalog. Population is stored but not part of the public view.
type Planet struct {
	ID          int64
	Name        string
	ImageURL    string
	History     string
	Population  int64
	Terrain     string
	Inhabitants string
	Language    string
}

// Vehicle is a vehicle of the catalog.
type Vehicle struct {
	ID         int64
	Name       string
	Type       string
	Passengers int
}

// Column limits mirror the database schema.
const (
	maxNameLen      = 120
	maxImageURLLen  = 120
	maxLongTextLen  = 300
	maxGenderLen    = 7
	maxTerrainLen   = 50
	maxInhabitsLen  = 80
	maxLanguageLen  = 50
	maxVehicleField = 50
)

// Validate checks the character against the schema constraints.
func (c *Character) Validate() error {
	if c.FirstName == "" {
		return NewValidationError("first_name", "is required", nil)
	}
	return checkLengths(
		field{"first_name", c.FirstName, maxNameLen},
		field{"last_name", c.LastName, maxNameLen},
		field{"image_url", c.ImageURL, maxImageURLLen},
		field{"biography", c.Biography, maxLongTextLen},
		field{"gender", c.Gender, maxGenderLen},
	)
}

// Validate checks the planet against the schema constraints.
func (p *Planet) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required", nil)
	}
	if p.Population < 0 {
		return NewValidationError("population", "cannot be negative", nil)
	}
	return checkLengths(
		field{"name", p.Name, maxNameLen},
		field{"image_url", p.ImageURL, maxImageURLLen},
		field{"history", p.History, maxLongTextLen},
		field{"terrain", p.Terrain, maxTerrainLen},
		field{"inhabitants", p.Inhabitants, maxInhabitsLen},
		field{"language", p.Language, maxLanguageLen},
	)
}

// Validate checks the vehicle against the schema constraints.
func (v *Vehicle) Validate() error {
	if v.Name == "" {
		return NewValidationError("name", "is required", nil)
	}
	if v.Passengers < 0 {
		return NewValidationError("passengers", "cannot be negative", nil)
	}
	return checkLengths(
		field{"name", v.Name, maxVehicleField},
		field{"type", v.Type, maxVehicleField},
	)
}

type field struct {
	name  string
	value string
	max   int
}

func checkLengths(fields ...field) error {
	for _, f := range fields {
		if len([]rune(f.value)) > f.max {
			return NewValidationError(f.name, "is too long", nil)
		}
	}
	return nil
}
