package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"japa/internal/modules/transliteration/domain"
)

func validManifest() domain.Manifest {
	return domain.Manifest{
		Name:    "catalog",
		Version: "1.0.0",
		Binary:  "/tmp/catalog",
		SHA256:  strings.Repeat("a", 64),
		Enabled: true,
	}
}

func TestManifestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validManifest().Validate())

	m := validManifest()
	m.SHA256 = "ABC"
	assert.Error(t, m.Validate())

	m = validManifest()
	m.Languages = []string{"Hindi", "hindi"}
	assert.Error(t, m.Validate())

	m = validManifest()
	m.Binary = ""
	assert.Error(t, m.Validate())
}

func TestManifestSupports(t *testing.T) {
	t.Parallel()
	m := validManifest()
	assert.True(t, m.Supports("Tamil"))
	m.Languages = []string{"Hindi", "Marathi"}
	assert.True(t, m.Supports("hindi"))
	assert.False(t, m.Supports("Tamil"))
}

func TestRequestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, domain.Request{Text: "Ram", Language: "Hindi"}.Validate())
	assert.Error(t, domain.Request{Text: " ", Language: "Hindi"}.Validate())
	assert.Error(t, domain.Request{Text: "Ram"}.Validate())
}
