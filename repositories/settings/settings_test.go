package settings

import (
	"path/filepath"
	"testing"

	"subreddit-tracker/models/constants"
	"subreddit-tracker/models/entities"
	"subreddit-tracker/utils/databases"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*Impl, databases.SqlConnection) {
	t.Helper()

	viper.Set(constants.SqliteURL, filepath.Join(t.TempDir(), "settings_test.db"))
	db := databases.New()
	require.NoError(t, db.Run())
	require.NoError(t, db.GetDB().AutoMigrate(&entities.Setting{}))
	t.Cleanup(db.Shutdown)

	return New(db), db
}

func TestUnseededKeysReportErrNotSeeded(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, errNames := repo.Names()
	_, errFlags := repo.Enabled()

	assert.ErrorIs(t, errNames, ErrNotSeeded)
	assert.ErrorIs(t, errFlags, ErrNotSeeded)
}

func TestNamesRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.SaveNames([]string{"AskReddit", "aww", "pics"}))

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"AskReddit", "aww", "pics"}, names)
}

func TestEnabledRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.SaveEnabled([]bool{true, false, true}))

	flags, err := repo.Enabled()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, flags)
}

func TestSaveOverwritesExistingValue(t *testing.T) {
	repo, _ := newTestRepository(t)

	require.NoError(t, repo.SaveNames([]string{"AskReddit"}))
	require.NoError(t, repo.SaveNames([]string{"AskReddit", "aww"}))

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"AskReddit", "aww"}, names)
	assert.Equal(t, int64(1), repo.Count())
}

func TestSaveEnabledLeavesNamesUntouched(t *testing.T) {
	repo, _ := newTestRepository(t)
	require.NoError(t, repo.SaveNames([]string{"AskReddit", "aww"}))
	require.NoError(t, repo.SaveEnabled([]bool{true, true}))

	require.NoError(t, repo.SaveEnabled([]bool{true, false}))

	names, err := repo.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"AskReddit", "aww"}, names)

	flags, err := repo.Enabled()
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, flags)
}

func TestMalformedValueSurfacesAsError(t *testing.T) {
	repo, db := newTestRepository(t)

	setting := entities.Setting{Key: NamesKey, Value: "not json"}
	require.NoError(t, db.GetDB().Create(&setting).Error)

	_, err := repo.Names()

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotSeeded)
}

func TestCountTracksSeededKeys(t *testing.T) {
	repo, _ := newTestRepository(t)
	assert.Equal(t, int64(0), repo.Count())

	require.NoError(t, repo.SaveNames([]string{"AskReddit"}))
	require.NoError(t, repo.SaveEnabled([]bool{true}))

	assert.Equal(t, int64(2), repo.Count())
}
