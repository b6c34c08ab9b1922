// Package seed loads users and catalog entries from a YAML file into the
// database in a single transaction.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/holocron-api/internal/domain"
	"github.com/phrazzld/holocron-api/internal/platform/logger"
	"github.com/phrazzld/holocron-api/internal/store"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// File is the document layout of a seed file.
type File struct {
	Users      []User      `yaml:"users"`
	Characters []Character `yaml:"characters"`
	Planets    []Planet    `yaml:"planets"`
	Vehicles   []Vehicle   `yaml:"vehicles"`
}

// User is a seed user. Password is plaintext and hashed before insert;
// PasswordHash is an existing bcrypt hash (see the hash-password command).
// Exactly one of them must be set.
type User struct {
	Username     string `yaml:"username"`
	Email        string `yaml:"email"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

type Character struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	ImageURL  string `yaml:"image_url"`
	Biography string `yaml:"biography"`
	Birthday  int    `yaml:"birthday"`
	Gender    string `yaml:"gender"`
}

type Planet struct {
	Name        string `yaml:"name"`
	ImageURL    string `yaml:"image_url"`
	History     string `yaml:"history"`
	Population  int64  `yaml:"population"`
	Terrain     string `yaml:"terrain"`
	Inhabitants string `yaml:"inhabitants"`
	Language    string `yaml:"language"`
}

type Vehicle struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Passengers int    `yaml:"passengers"`
}

// Summary counts the rows inserted by Load.
type Summary struct {
	Users      int
	Characters int
	Planets    int
	Vehicles   int
}

// ErrEmptyFile is returned when a seed file holds no entries.
var ErrEmptyFile = errors.New("seed file has no entries")

// Parse decodes a seed document. Unknown keys are rejected so typos do not
// silently drop data.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(f.Users)+len(f.Characters)+len(f.Planets)+len(f.Vehicles) == 0 {
		return nil, ErrEmptyFile
	}
	return &f, nil
}

// ParseFile reads and decodes the seed file at path.
func ParseFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh)
}

// Loader inserts seed data through the stores.
type Loader struct {
	db         store.TxBeginner
	users      store.UserStore
	catalog    store.CatalogStore
	bcryptCost int
	logger     *slog.Logger
}

// NewLoader creates a Loader. A bcryptCost outside bcrypt's range falls back
// to bcrypt.DefaultCost.
func NewLoader(
	db store.TxBeginner,
	users store.UserStore,
	catalog store.CatalogStore,
	bcryptCost int,
	logger *slog.Logger,
) (*Loader, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if users == nil {
		return nil, errors.New("user store cannot be nil")
	}
	if catalog == nil {
		return nil, errors.New("catalog store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Loader{
		db:         db,
		users:      users,
		catalog:    catalog,
		bcryptCost: bcryptCost,
		logger:     logger.With(slog.String("component", "seed_loader")),
	}, nil
}

// Load inserts every entry of f. Either all rows are written or none.
func (l *Loader) Load(ctx context.Context, f *File) (Summary, error) {
	log := logger.FromContextOrDefault(ctx, l.logger)

	users, err := l.hashUsers(f.Users)
	if err != nil {
		return Summary{}, err
	}

	var sum Summary
	err = store.RunInTransaction(ctx, l.db, func(ctx context.Context, tx *sql.Tx) error {
		sum = Summary{}
		userStore := l.users.WithTx(tx)
		catalogStore := l.catalog.WithTx(tx)

		for _, u := range users {
			if err := userStore.Create(ctx, u); err != nil {
				return fmt.Errorf("user %q: %w", u.Username, err)
			}
			sum.Users++
		}
		for i := range f.Characters {
			c := f.Characters[i].toDomain()
			if err := catalogStore.CreateCharacter(ctx, c); err != nil {
				return fmt.Errorf("character %q: %w", c.FirstName+" "+c.LastName, err)
			}
			sum.Characters++
		}
		for i := range f.Planets {
			p := f.Planets[i].toDomain()
			if err := catalogStore.CreatePlanet(ctx, p); err != nil {
				return fmt.Errorf("planet %q: %w", p.Name, err)
			}
			sum.Planets++
		}
		for i := range f.Vehicles {
			v := f.Vehicles[i].toDomain()
			if err := catalogStore.CreateVehicle(ctx, v); err != nil {
				return fmt.Errorf("vehicle %q: %w", v.Name, err)
			}
			sum.Vehicles++
		}
		return nil
	})
	if err != nil {
		log.Error("seed load failed", slog.String("error", err.Error()))
		return Summary{}, err
	}

	log.Info("seed data loaded",
		slog.Int("users", sum.Users),
		slog.Int("characters", sum.Characters),
		slog.Int("planets", sum.Planets),
		slog.Int("vehicles", sum.Vehicles))
	return sum, nil
}

// hashUsers validates the seed users and replaces their plaintext passwords
// with bcrypt hashes. Hashing happens before the transaction starts.
func (l *Loader) hashUsers(in []User) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(in))
	for _, su := range in {
		hash, err := l.passwordHash(su)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", su.Username, err)
		}
		u := &domain.User{Username: su.Username, Email: su.Email, HashedPassword: hash}
		if err := u.Validate(); err != nil {
			return nil, fmt.Errorf("user %q: %w", su.Username, err)
		}
		out = append(out, u)
	}
	return out, nil
}

func (l *Loader) passwordHash(su User) (string, error) {
	switch {
	case su.Password != "" && su.PasswordHash != "":
		return "", domain.NewValidationError("password", "and password_hash are mutually exclusive", nil)
	case su.PasswordHash != "":
		if _, err := bcrypt.Cost([]byte(su.PasswordHash)); err != nil {
			return "", domain.NewValidationError("password_hash", "is not a bcrypt hash", nil)
		}
		return su.PasswordHash, nil
	case su.Password != "":
		hash, err := HashPassword(su.Password, l.bcryptCost)
		if err != nil {
			return "", err
		}
		return hash, nil
	default:
		return "", domain.NewValidationError("password", "is required", nil)
	}
}

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (c Character) toDomain() *domain.Character {
	return &domain.Character{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		ImageURL:  c.ImageURL,
		Biography: c.Biography,
		Birthday:  c.Birthday,
		Gender:    c.Gender,
	}
}

func (p Planet) toDomain() *domain.Planet {
	return &domain.Planet{
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		History:     p.History,
		Population:  p.Population,
		Terrain:     p.Terrain,
		Inhabitants: p.Inhabitants,
		Language:    p.Language,
	}
}

func (v Vehicle) toDomain() *domain.Vehicle {
	return &domain.Vehicle{Name: v.Name, Type: v.Type, Passengers: v.Passengers}
}
