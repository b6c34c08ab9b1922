package domain

// Kind selects which catalog table and favorite-link table an operation targets.
type Kind string

const (
	KindCharacter Kind = "character"
	KindPlanet    Kind = "planet"
	KindVehicle   Kind = "vehicle"
)

// Kinds lists every favorite kind in display order.
func Kinds() []Kind {
	return []Kind{KindCharacter, KindPlanet, KindVehicle}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCharacter, KindPlanet, KindVehicle:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}
