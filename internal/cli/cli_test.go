package cli

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/julianstephens/habitual/internal/errors"
	"github.com/julianstephens/habitual/internal/storage/sqlite"
	"github.com/julianstephens/habitual/internal/tracker"
)

const testPassword = "secret"

func setupTestContext(t *testing.T) *Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "habitual.db"))
	require.NoError(t, store.Init(context.Background()))
	t.Cleanup(func() { _ = store.Close() })

	return &Context{
		Ctx:     context.Background(),
		Store:   store,
		Tracker: tracker.New(store),
	}
}

func login(username string) UserFlags {
	return UserFlags{Username: username, Password: testPassword}
}

func TestAccountLifecycle(t *testing.T) {
	ctx := setupTestContext(t)

	require.NoError(t, (&AccountCreateCmd{Username: "alice", Password: testPassword, Email: "alice@example.com"}).Run(ctx))

	err := (&AccountCreateCmd{Username: "alice", Password: testPassword}).Run(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	require.NoError(t, (&AccountProfileCmd{UserFlags: login("alice")}).Run(ctx))

	bad := UserFlags{Username: "alice", Password: "wrong"}
	err = (&AccountProfileCmd{UserFlags: bad}).Run(ctx)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, (&AccountDeleteCmd{UserFlags: login("alice"), Yes: true}).Run(ctx))
	_, err = ctx.Store.GetUserByUsername(context.Background(), "alice")
	assert.Error(t, err)
}

func TestHabitCommands(t *testing.T) {
	ctx := setupTestContext(t)
	require.NoError(t, (&AccountCreateCmd{Username: "bob", Password: testPassword}).Run(ctx))

	require.NoError(t, (&HabitAddCmd{UserFlags: login("bob"), Name: "Swim", Periodicity: "Weekly"}).Run(ctx))
	require.NoError(t, (&HabitListCmd{UserFlags: login("bob")}).Run(ctx))

	err := (&HabitAddCmd{UserFlags: login("bob"), Name: "Swim", Periodicity: "weekly"}).Run(ctx)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = (&HabitAddCmd{UserFlags: login("bob"), Name: "Run", Periodicity: "monthly"}).Run(ctx)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	for i := 0; i < 3; i++ {
		require.NoError(t, (&HabitDoneCmd{UserFlags: login("bob"), Habit: "Swim"}).Run(ctx))
	}

	user, err := ctx.Store.GetUserByUsername(context.Background(), "bob")
	require.NoError(t, err)
	habit, err := ctx.Tracker.Catalog.FindHabit(context.Background(), user.ID, "Swim")
	require.NoError(t, err)

	count, err := ctx.Tracker.Ledger.Count(context.Background(), user.ID, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, (&HabitHistoryCmd{UserFlags: login("bob"), Limit: 5}).Run(ctx))

	err = (&HabitDoneCmd{UserFlags: login("bob"), Habit: "Cycle"}).Run(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, (&HabitDeleteCmd{UserFlags: login("bob"), Habit: "Swim", Yes: true}).Run(ctx))
	habits, err := ctx.Tracker.Catalog.ListHabits(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestResolveHabit(t *testing.T) {
	ctx := setupTestContext(t)
	bg := context.Background()

	aliceID, err := ctx.Tracker.Accounts.CreateAccount(bg, "alice", testPassword, "")
	require.NoError(t, err)
	bobID, err := ctx.Tracker.Accounts.CreateAccount(bg, "bob", testPassword, "")
	require.NoError(t, err)
	habitID, err := ctx.Tracker.Catalog.CreateHabit(bg, aliceID, "Read", "", "daily")
	require.NoError(t, err)

	byName, err := ResolveHabit(ctx, aliceID, "Read")
	require.NoError(t, err)
	assert.Equal(t, habitID, byName.ID)

	byID, err := ResolveHabit(ctx, aliceID, strconv.FormatInt(habitID, 10))
	require.NoError(t, err)
	assert.Equal(t, habitID, byID.ID)

	_, err = ResolveHabit(ctx, bobID, "Read")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = ResolveHabit(ctx, bobID, strconv.FormatInt(habitID, 10))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestAnalyticsCommands(t *testing.T) {
	ctx := setupTestContext(t)
	_, err := ctx.Tracker.Seed(context.Background())
	require.NoError(t, err)

	require.NoError(t, (&AnalyticsHabitsCmd{}).Run(ctx))
	require.NoError(t, (&AnalyticsHabitsCmd{Periodicity: "weekly"}).Run(ctx))
	require.NoError(t, (&AnalyticsHabitsCmd{Periodicity: "monthly"}).Run(ctx))
	require.NoError(t, (&AnalyticsMaxStreakCmd{}).Run(ctx))
	require.NoError(t, (&AnalyticsStreakCmd{Name: "Morning Jog"}).Run(ctx))
	require.NoError(t, (&AnalyticsLeaderboardCmd{Limit: 3}).Run(ctx))
}

func TestPerformAutomaticBackupSkipsNonSQLite(t *testing.T) {
	ctx := &Context{}
	assert.False(t, ctx.IsSQLite())
	ctx.PerformAutomaticBackup()
}
