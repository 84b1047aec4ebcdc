package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-signup-service/internal/catalog"
	"activity-signup-service/internal/repository"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activities.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault_IsValidSeed(t *testing.T) {
	seed := catalog.Default()

	store, err := repository.NewRosterStore(seed)
	require.NoError(t, err)

	list := store.List()
	for _, name := range []string{"Soccer Team", "Basketball Club", "Programming Class", "Drama Club", "Chess Club"} {
		assert.Contains(t, list, name)
	}
	assert.Contains(t, list["Soccer Team"].Participants, "alex@mergington.edu")
}

func TestDefault_ReturnsFreshSlices(t *testing.T) {
	first := catalog.Default()
	first[0].Participants[0] = "changed@mergington.edu"

	assert.NotEqual(t, "changed@mergington.edu", catalog.Default()[0].Participants[0])
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
activity "Robotics" {
  description      = "Build and program robots"
  schedule         = "Saturdays, 10:00 AM - 12:00 PM"
  max_participants = 8
  participants     = ["ada@mergington.edu"]
}

activity "Choir" {
  description      = "Sing in the school choir"
  schedule         = "Wednesdays, 4:00 PM - 5:00 PM"
  max_participants = 40
}
`)

	got, err := catalog.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Robotics", got[0].Name)
	assert.Equal(t, 8, got[0].MaxParticipants)
	assert.Equal(t, []string{"ada@mergington.edu"}, got[0].Participants)

	assert.Equal(t, "Choir", got[1].Name)
	assert.NotNil(t, got[1].Participants)
	assert.Empty(t, got[1].Participants)
}

func TestLoadFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Syntax error",
			content: `activity "Robotics" {`,
		},
		{
			name: "Missing required attribute",
			content: `
activity "Robotics" {
  description = "Build robots"
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.LoadFile(writeFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DefaultsWithoutPath(t *testing.T) {
	got, err := catalog.Load("")
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), got)
}
