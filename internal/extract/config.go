package extract

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/spigell/resume-filter/internal/textutil"
)

const (
	defaultKeywordPrefix    = 1000
	defaultKeywordMinLength = 4
)

var (
	// DefaultKnownSkills is scanned for when a resume has no skills line.
	DefaultKnownSkills = []string{
		"c++", "cpp", "java", "python", "sql", "javascript", "html", "css", "git",
		"linux", "algorithms", "data structures", "machine learning", "ml",
	}

	// DefaultKnownCertifications is always scanned for in resume text.
	DefaultKnownCertifications = []string{
		"aws certified solutions architect", "aws", "azure", "ccna", "oracle", "pmp", "ocjp",
	}
)

// Config drives both extractors.
type Config struct {
	Synonyms            map[string]string `mapstructure:"synonyms"`
	KnownSkills         []string          `mapstructure:"known-skills"`
	KnownCertifications []string          `mapstructure:"known-certifications"`
	KeywordPrefix       int               `mapstructure:"keyword-prefix" validate:"gt=0"`
	KeywordMinLength    int               `mapstructure:"keyword-min-length" validate:"gte=1"`
	VocabularyFile      string            `mapstructure:"vocabulary-file"`
}

// DefaultConfig returns the built-in vocabularies and keyword settings.
func DefaultConfig() Config {
	synonyms := make(map[string]string, len(textutil.DefaultSynonyms))
	for k, v := range textutil.DefaultSynonyms {
		synonyms[k] = v
	}

	return Config{
		Synonyms:            synonyms,
		KnownSkills:         append([]string(nil), DefaultKnownSkills...),
		KnownCertifications: append([]string(nil), DefaultKnownCertifications...),
		KeywordPrefix:       defaultKeywordPrefix,
		KeywordMinLength:    defaultKeywordMinLength,
	}
}

// Validate checks numeric settings.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// Vocabulary is the content of a vocabulary file.
type Vocabulary struct {
	Synonyms            map[string]string `mapstructure:"synonyms"`
	KnownSkills         []string          `mapstructure:"known-skills"`
	KnownCertifications []string          `mapstructure:"known-certifications"`
}

// LoadVocabulary reads a YAML vocabulary file. Scalars are accepted where lists are
// expected and unknown keys are rejected.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vocabulary file %q: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing vocabulary file %q: %w", path, err)
	}

	var vocabulary Vocabulary
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &vocabulary,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding vocabulary file %q: %w", path, err)
	}

	return &vocabulary, nil
}

// WithVocabulary returns a copy of c extended by v. Synonyms from v win,
// list entries are appended unless already present (case-insensitive).
func (c Config) WithVocabulary(v *Vocabulary) Config {
	if v == nil {
		return c
	}

	synonyms := make(map[string]string, len(c.Synonyms)+len(v.Synonyms))
	for k, val := range c.Synonyms {
		synonyms[k] = val
	}
	for k, val := range v.Synonyms {
		synonyms[k] = val
	}

	c.Synonyms = synonyms
	c.KnownSkills = mergeLists(c.KnownSkills, v.KnownSkills)
	c.KnownCertifications = mergeLists(c.KnownCertifications, v.KnownCertifications)
	return c
}

func mergeLists(base, extra []string) []string {
	result := append([]string(nil), base...)
	seen := make(map[string]bool, len(base)+len(extra))
	for _, item := range base {
		seen[strings.ToLower(strings.TrimSpace(item))] = true
	}
	for _, item := range extra {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, strings.TrimSpace(item))
	}
	return result
}
