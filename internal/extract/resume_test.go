package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/textutil"
)

const structuredResume = `Jane Doe
Email: jane@example.com
GPA: 3.6/4.0
Technical Skills: Python, CPP; SQL | js, python
Experience: 2 years at Acme, 1 year at Beta
Certifications: AWS Certified Solutions Architect, PMP
`

const looseResume = "Name: John Smith\r\n" +
	"Scored 8.5/10 overall\r\n" +
	"Worked with java and linux daily, some javascript.\r\n" +
	"Certified in Azure.\r\n"

func newTestResumeExtractor() *ResumeExtractor {
	return NewResumeExtractor(DefaultConfig(), zap.NewNop())
}

func TestResumeExtractStructured(t *testing.T) {
	c := newTestResumeExtractor().Extract(structuredResume, "resumes/jane.txt")

	assert.Equal(t, "resumes/jane.txt", c.SourceRef)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.InDelta(t, 3.6, c.GPA, 1e-9)
	assert.Equal(t, []string{"python", "c++", "sql", "javascript"}, c.Skills)
	assert.Equal(t, 3, c.ExperienceYears)
	assert.Equal(t, []string{"AWS Certified Solutions Architect", "PMP"}, c.Certifications)
}

func TestResumeExtractFallbacks(t *testing.T) {
	c := newTestResumeExtractor().Extract(looseResume, "john.txt")

	assert.Equal(t, "John Smith", c.Name)
	assert.InDelta(t, 3.4, c.GPA, 1e-9)
	assert.Equal(t, []string{"java", "javascript", "linux"}, c.Skills)
	assert.Zero(t, c.ExperienceYears)
	assert.Equal(t, []string{"azure"}, c.Certifications)
}

func TestResumeExtractEmpty(t *testing.T) {
	c := newTestResumeExtractor().Extract("", "empty.txt")

	assert.Empty(t, c.Name)
	assert.Equal(t, profile.GPANotFound, c.GPA)
	assert.Empty(t, c.Skills)
	assert.Zero(t, c.ExperienceYears)
	assert.Empty(t, c.Certifications)
}

func TestResumeExtractLogsStrategies(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	e := NewResumeExtractor(DefaultConfig(), zap.New(core))

	e.Extract(looseResume, "john.txt")

	entries := observed.FilterMessage("resume extracted").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "john.txt", ctx["source"])
	assert.Equal(t, "name_key", ctx["name_strategy"])
	assert.Equal(t, "gpa_document", ctx["gpa_strategy"])
	assert.Equal(t, "skills_vocabulary", ctx["skills_strategy"])
}

func TestResumeExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jane.txt")
	require.NoError(t, os.WriteFile(path, []byte(structuredResume), 0o644))

	e := newTestResumeExtractor()

	c, err := e.ExtractFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", c.Name)

	missing := filepath.Join(dir, "missing.txt")
	c, err = e.ExtractFile(missing)
	require.Error(t, err)
	assert.Equal(t, missing, c.SourceRef)
	assert.Equal(t, profile.GPANotFound, c.GPA)
}

func TestNameStrategies(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect string
		ok     bool
	}{
		{name: "key wins over first line", text: "Resume\nName: Ann Lee\n", expect: "Ann Lee", ok: true},
		{name: "key is case folded", text: "  NAME :  Bo  \n", expect: "Bo", ok: true},
		{name: "empty key value falls through", text: "\n\n  Cara Diaz  \nName:\n", expect: "Cara Diaz", ok: true},
		{name: "blank document", text: " \n\t\n", expect: "", ok: false},
	}

	strategies := []Strategy[string]{NameFromKey(), NameFromFirstLine()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok := First(NewDocument(tt.text), strategies)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestGPAStrategies(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect float64
		by     string
		ok     bool
	}{
		{name: "four point scale kept", text: "GPA: 3.7", expect: 3.7, by: "gpa_keyed_line", ok: true},
		{name: "ten point scale normalized", text: "GPA: 9.0/10", expect: 3.6, by: "gpa_keyed_line", ok: true},
		{name: "plain keyed value", text: "CGPA 8.2", expect: 8.2, by: "gpa_keyed_line", ok: true},
		{name: "ten point fraction rescaled", text: "Grade: 9/10", expect: 3.6, by: "gpa_keyed_line", ok: true},
		{name: "keyed line without number is skipped", text: "GPA: n/a\nGrade 3.1", expect: 3.1, by: "gpa_keyed_line", ok: true},
		{name: "document fallback", text: "Scored 3.2 overall", expect: 3.2, by: "gpa_document", ok: true},
		{name: "document fallback rejects large numbers", text: "Born 1990", ok: false},
		{name: "nothing numeric", text: "No numbers here", ok: false},
	}

	strategies := []Strategy[float64]{GPAFromKeyedLines(), GPAFromDocument()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, by, ok := First(NewDocument(tt.text), strategies)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.InDelta(t, tt.expect, got, 1e-9)
			assert.Equal(t, tt.by, by)
		})
	}
}

func TestSkillsListLineWinsWithoutTokens(t *testing.T) {
	norm := textutil.NewNormalizer(nil)
	strategies := []Strategy[[]string]{
		SkillsFromListLine(norm),
		SkillsFromVocabulary(norm, DefaultKnownSkills),
	}

	skills, by, ok := First(NewDocument("Skills: ,;|\nPython developer"), strategies)

	assert.True(t, ok)
	assert.Equal(t, "skills_line", by)
	assert.Empty(t, skills)
}

func TestSkillsListLineUsesFirstLineOnly(t *testing.T) {
	norm := textutil.NewNormalizer(nil)

	skills, ok := SkillsFromListLine(norm).Extract(NewDocument("Skills:\nSkills: Go, Rust\nSkills: Java"))

	assert.True(t, ok)
	assert.Equal(t, []string{"go", "rust"}, skills)
}

func TestSkillsVocabularyUsesConfiguredSynonyms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Synonyms["golang"] = "go"
	cfg.KnownSkills = []string{"golang", "go", "kubernetes"}

	c := NewResumeExtractor(cfg, nil).Extract("Built Golang services on Kubernetes", "a.txt")

	assert.Equal(t, []string{"go", "kubernetes"}, c.Skills)
}

func TestExperienceSumsEveryNumber(t *testing.T) {
	years, ok := ExperienceFromLines().Extract(NewDocument("Experience: 3 years\nWorked 2 YEARS abroad\nOther 7"))

	assert.True(t, ok)
	assert.Equal(t, 5, years)
}

func TestCertificationAccumulators(t *testing.T) {
	doc := NewDocument("Certificates: CCNA; Oracle Java\nHolds a certificate: ocjp\nAlso azure and aws")

	certs := Collect(doc, []Accumulator{
		CertificationsFromListLines(),
		CertificationsFromVocabulary(DefaultKnownCertifications),
	})

	assert.Equal(t, []string{"CCNA", "Oracle Java", "ocjp", "aws", "azure"}, certs)
}
