package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeywordPrefix = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.KeywordMinLength = 0
	assert.Error(t, cfg.Validate())
}

func TestDefaultConfigIsACopy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KnownSkills[0] = "changed"
	cfg.Synonyms["cpp"] = "changed"

	fresh := DefaultConfig()
	assert.Equal(t, "c++", fresh.KnownSkills[0])
	assert.Equal(t, "c++", fresh.Synonyms["cpp"])
}

func writeVocabulary(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadVocabularyExtendsDefaults(t *testing.T) {
	path := writeVocabulary(t, `
synonyms:
  golang: go
known-skills: [go, Rust, python]
known-certifications: cka
`)

	vocabulary, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cka"}, vocabulary.KnownCertifications)

	cfg := DefaultConfig().WithVocabulary(vocabulary)

	assert.Equal(t, "go", cfg.Synonyms["golang"])
	assert.Equal(t, "c++", cfg.Synonyms["cpp"])
	assert.Equal(t, append(append([]string(nil), DefaultKnownSkills...), "go", "Rust"), cfg.KnownSkills)
	assert.Contains(t, cfg.KnownCertifications, "cka")
	assert.Len(t, cfg.KnownCertifications, len(DefaultKnownCertifications)+1)
}

func TestLoadVocabularyErrors(t *testing.T) {
	_, err := LoadVocabulary(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadVocabulary(writeVocabulary(t, "known-skills: [go\n"))
	assert.Error(t, err)

	_, err = LoadVocabulary(writeVocabulary(t, "known-tools: [go]\n"))
	assert.Error(t, err)
}

func TestWithNilVocabulary(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg, cfg.WithVocabulary(nil))
}
