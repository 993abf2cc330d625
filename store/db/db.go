package db

import (
	"github.com/pkg/errors"

	"github.com/hublie/hublie/internal/profile"
	"github.com/hublie/hublie/store"
	"github.com/hublie/hublie/store/db/postgres"
	"github.com/hublie/hublie/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile.
// SQLite is the default for self-hosted households; PostgreSQL is supported
// for larger deployments.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	default:
		return nil, errors.New("unknown db driver: only 'sqlite' and 'postgres' are supported")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
