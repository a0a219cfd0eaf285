package registry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	require.Len(t, seed, 9)

	names := make([]string, 0, len(seed))
	for _, a := range seed {
		require.NoError(t, a.Validate())
		names = append(names, a.Name)
	}
	assert.Contains(t, names, "Chess Club")
	assert.Contains(t, names, "Science Club")

	gym := seed[2]
	assert.Equal(t, "Gym Class", gym.Name)
	assert.Equal(t, "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", gym.Schedule)
	assert.Equal(t, 30, gym.MaxParticipants)
}

func TestLoadSeed(t *testing.T) {
	doc := `
activities:
  - name: Robotics
    description: Build robots
    schedule: Saturdays
    max_participants: 4
`
	seed, err := LoadSeed(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, seed, 1)
	assert.Equal(t, "Robotics", seed[0].Name)
	assert.Equal(t, 4, seed[0].MaxParticipants)
	assert.NotNil(t, seed[0].Participants)
	assert.Empty(t, seed[0].Participants)
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = LoadSeed(strings.NewReader("activities:\n  - name: X\n    capacity: 3\n"))
	assert.Error(t, err, "unknown field must be rejected")
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("activities:\n  - name: Band\n    max_participants: 2\n    participants: [a@x.edu]\n"), 0o600))

	seed, err := LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, seed, 1)
	assert.Equal(t, []string{"a@x.edu"}, seed[0].Participants)

	_, err = LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
