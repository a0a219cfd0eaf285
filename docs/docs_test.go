package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDocIsRegistered(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Mergington High School Activities API", parsed.Info.Title)
	for _, path := range []string{
		"/activities",
		"/activities/{activityName}",
		"/activities/{activityName}/signup",
		"/activities/{activityName}/signups",
		"/activities/{activityName}/roster",
		"/activities/{activityName}/{projection}",
	} {
		assert.Contains(t, parsed.Paths, path)
	}
}
