package worldclock_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	worldclock "github.com/goliatone/go-worldclock"
)

// newTestDB opens a private in-memory database with the users table ready.
// The database name is derived from the test so parallel tests never share
// state.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.NewCreateTable().
		Model((*worldclock.User)(nil)).
		IfNotExists().
		Exec(context.Background())
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db
}

// seedUser registers an account with a hashed password and returns it.
func seedUser(t *testing.T, repo worldclock.Users, email, password string, zones ...string) *worldclock.User {
	t.Helper()

	hash, err := worldclock.HashPassword(password)
	require.NoError(t, err)

	user, err := repo.Register(context.Background(), &worldclock.User{
		Email:        email,
		PasswordHash: hash,
		TimeZones:    zones,
		Is12Hour:     true,
	})
	require.NoError(t, err)

	return user
}
