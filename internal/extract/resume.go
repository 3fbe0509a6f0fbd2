package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-filter/internal/input"
	"github.com/spigell/resume-filter/internal/logger"
	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/textutil"
	"github.com/spigell/resume-filter/internal/utils"
)

const (
	listDelimiters = ",;|"
	previewLength  = 80
	maxPlainGPA    = 10.0
)

var gpaMarkers = []string{"gpa", "cgpa", "grade"}

// ResumeExtractor turns resume text into a candidate profile.
// The strategy lists are run in order; the first success wins for single-valued fields
// while every certification accumulator contributes.
type ResumeExtractor struct {
	NameStrategies       []Strategy[string]
	GPAStrategies        []Strategy[float64]
	SkillStrategies      []Strategy[[]string]
	ExperienceStrategies []Strategy[int]
	CertAccumulators     []Accumulator

	logger *zap.Logger
}

func NewResumeExtractor(cfg Config, log *zap.Logger) *ResumeExtractor {
	norm := textutil.NewNormalizer(cfg.Synonyms)

	return &ResumeExtractor{
		NameStrategies:       []Strategy[string]{NameFromKey(), NameFromFirstLine()},
		GPAStrategies:        []Strategy[float64]{GPAFromKeyedLines(), GPAFromDocument()},
		SkillStrategies:      []Strategy[[]string]{SkillsFromListLine(norm), SkillsFromVocabulary(norm, cfg.KnownSkills)},
		ExperienceStrategies: []Strategy[int]{ExperienceFromLines()},
		CertAccumulators: []Accumulator{
			CertificationsFromListLines(),
			CertificationsFromVocabulary(cfg.KnownCertifications),
		},
		logger: logger.WithFields(log, zap.String("extractor", "resume")),
	}
}

// Extract never fails. Fields that cannot be found keep their defaults.
func (e *ResumeExtractor) Extract(text, source string) *profile.Candidate {
	candidate := profile.NewCandidate(source)
	doc := NewDocument(text)

	name, nameBy, _ := First(doc, e.NameStrategies)
	candidate.Name = name

	gpaBy := "default"
	if gpa, by, ok := First(doc, e.GPAStrategies); ok {
		candidate.GPA = gpa
		gpaBy = by
	}

	skills, skillsBy, _ := First(doc, e.SkillStrategies)
	candidate.Skills = skills

	years, _, _ := First(doc, e.ExperienceStrategies)
	candidate.ExperienceYears = years

	candidate.Certifications = Collect(doc, e.CertAccumulators)

	logger.WithCandidateFields(e.logger, source, candidate.Name).Debug("resume extracted",
		zap.String("name_strategy", nameBy),
		zap.String("gpa_strategy", gpaBy),
		zap.String("skills_strategy", skillsBy),
		zap.Float64("gpa", candidate.GPA),
		zap.Strings("skills", candidate.Skills),
		zap.Int("experience_years", candidate.ExperienceYears),
		zap.Strings("certifications", candidate.Certifications),
		zap.String("preview", utils.TruncateForLog(text, previewLength)),
	)

	return candidate
}

// ExtractFile reads and extracts the resume at path. On a read failure the default
// profile for path is returned along with the error.
func (e *ResumeExtractor) ExtractFile(path string) (*profile.Candidate, error) {
	text, err := input.ReadFile(path)
	if err != nil {
		return profile.NewCandidate(path), err
	}
	return e.Extract(text, path), nil
}

// NameFromKey finds a "Name: value" line.
func NameFromKey() Strategy[string] {
	return NewStrategy("name_key", func(doc *Document) (string, bool) {
		for _, line := range doc.Lines {
			key, value := textutil.SplitKeyValue(line)
			if textutil.LowerTrim(key) == "name" && value != "" {
				return value, true
			}
		}
		return "", false
	})
}

// NameFromFirstLine takes the first non-blank line.
func NameFromFirstLine() Strategy[string] {
	return NewStrategy("name_first_line", func(doc *Document) (string, bool) {
		for _, line := range doc.Lines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, true
			}
		}
		return "", false
	})
}

// GPAFromKeyedLines reads the first number on a line mentioning gpa, cgpa or grade.
func GPAFromKeyedLines() Strategy[float64] {
	return NewStrategy("gpa_keyed_line", func(doc *Document) (float64, bool) {
		for _, line := range doc.Lines {
			lower := strings.ToLower(line)
			if !containsAny(lower, gpaMarkers) {
				continue
			}
			if v, ok := textutil.FirstNumber(line); ok {
				return v, true
			}
		}
		return 0, false
	})
}

// GPAFromDocument accepts the first number of the whole text when it looks like a GPA.
func GPAFromDocument() Strategy[float64] {
	return NewStrategy("gpa_document", func(doc *Document) (float64, bool) {
		v, ok := textutil.FirstNumber(doc.Text)
		if !ok || v <= 0 || v > maxPlainGPA {
			return 0, false
		}
		return v, true
	})
}

// SkillsFromListLine reads the first skills line with a value. The line wins even
// when its value yields no tokens.
func SkillsFromListLine(norm *textutil.Normalizer) Strategy[[]string] {
	return NewStrategy("skills_line", func(doc *Document) ([]string, bool) {
		for _, line := range doc.Lines {
			lower := textutil.LowerTrim(line)
			if !strings.HasPrefix(lower, "skills") && !strings.Contains(lower, "technical skills") {
				continue
			}

			_, value := textutil.SplitKeyValue(line)
			if value == "" {
				continue
			}

			return appendNormalized(nil, norm, textutil.SplitMulti(value, listDelimiters)...), true
		}
		return nil, false
	})
}

// SkillsFromVocabulary scans the text for known skills.
func SkillsFromVocabulary(norm *textutil.Normalizer, known []string) Strategy[[]string] {
	return NewStrategy("skills_vocabulary", func(doc *Document) ([]string, bool) {
		var skills []string
		for _, skill := range known {
			if textutil.ContainsToken(doc.Lower, skill) {
				skills = appendNormalized(skills, norm, skill)
			}
		}
		return skills, len(skills) > 0
	})
}

// ExperienceFromLines sums every integer on lines mentioning years or experience.
func ExperienceFromLines() Strategy[int] {
	return NewStrategy("experience_lines", func(doc *Document) (int, bool) {
		total := 0
		for _, line := range doc.Lines {
			lower := strings.ToLower(line)
			if !strings.Contains(lower, "year") && !strings.Contains(lower, "experience") {
				continue
			}
			for _, n := range textutil.Integers(line) {
				total += n
			}
		}
		return total, total > 0
	})
}

// CertificationsFromListLines collects the values of every certification line.
func CertificationsFromListLines() Accumulator {
	return NewAccumulator("certifications_lines", func(doc *Document, found []string) []string {
		for _, line := range doc.Lines {
			lower := textutil.LowerTrim(line)
			if !strings.HasPrefix(lower, "certifications") &&
				!strings.HasPrefix(lower, "certificates") &&
				!strings.Contains(lower, "certificate") {
				continue
			}

			_, value := textutil.SplitKeyValue(line)
			if value == "" {
				continue
			}
			found = append(found, textutil.SplitMulti(value, listDelimiters)...)
		}
		return found
	})
}

// CertificationsFromVocabulary appends known certifications found in the text unless
// an entry already mentions them.
func CertificationsFromVocabulary(known []string) Accumulator {
	return NewAccumulator("certifications_vocabulary", func(doc *Document, found []string) []string {
		for _, cert := range known {
			if !textutil.ContainsToken(doc.Lower, cert) {
				continue
			}
			if anyContains(found, cert) {
				continue
			}
			found = append(found, textutil.LowerTrim(cert))
		}
		return found
	})
}

func appendNormalized(list []string, norm *textutil.Normalizer, values ...string) []string {
	for _, v := range values {
		n := norm.Normalize(v)
		if n == "" || contains(list, n) {
			continue
		}
		list = append(list, n)
	}
	return list
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func anyContains(list []string, needle string) bool {
	for _, item := range list {
		if textutil.ContainsToken(item, needle) {
			return true
		}
	}
	return false
}
