package extract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/resume-filter/internal/logger"
	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/textutil"
)

const keywordDelimiters = " \t\r\n,.;:"

// JobExtractor turns a job description into requirements.
type JobExtractor struct {
	norm      *textutil.Normalizer
	prefix    int
	minLength int
	logger    *zap.Logger
}

func NewJobExtractor(cfg Config, log *zap.Logger) *JobExtractor {
	return &JobExtractor{
		norm:      textutil.NewNormalizer(cfg.Synonyms),
		prefix:    cfg.KeywordPrefix,
		minLength: cfg.KeywordMinLength,
		logger:    logger.WithFields(log, zap.String("extractor", "job")),
	}
}

// Extract never fails; an empty text yields an empty job.
func (e *JobExtractor) Extract(text string) *profile.Job {
	job := &profile.Job{}
	doc := NewDocument(text)

	e.parseRequirements(doc, job)
	job.Keywords = e.harvestKeywords(doc.Text)

	e.logger.Debug("job extracted",
		zap.Strings("required_skills", job.RequiredSkills),
		zap.Strings("preferred_skills", job.PreferredSkills),
		zap.Float64("min_gpa", job.MinGPA),
		zap.Int("min_experience", job.MinExperience),
		zap.Strings("required_certifications", job.RequiredCertifications),
		zap.Int("keywords", len(job.Keywords)),
	)

	return job
}

// parseRequirements reads "key: value" lines. Only the first matching key applies
// to a line and repeated keys accumulate.
func (e *JobExtractor) parseRequirements(doc *Document, job *profile.Job) {
	for _, line := range doc.Lines {
		rawKey, value := textutil.SplitKeyValue(line)
		key := strings.ToLower(rawKey)

		switch {
		case strings.Contains(key, "required skill"):
			job.RequiredSkills = e.appendSkills(job.RequiredSkills, value)
		case strings.Contains(key, "preferred skill"):
			job.PreferredSkills = e.appendSkills(job.PreferredSkills, value)
		case strings.Contains(key, "min gpa"):
			if v, ok := textutil.FirstNumber(value); ok {
				job.MinGPA = v
			}
		case strings.Contains(key, "min experience"):
			if v, ok := textutil.FirstNumber(value); ok {
				job.MinExperience = int(v)
			}
		case strings.Contains(key, "required certification"):
			job.RequiredCertifications = append(job.RequiredCertifications, textutil.SplitMulti(value, listDelimiters)...)
		}
	}
}

func (e *JobExtractor) appendSkills(list []string, value string) []string {
	for _, s := range textutil.SplitMulti(value, listDelimiters) {
		if n := e.norm.Normalize(s); n != "" {
			list = append(list, n)
		}
	}
	return list
}

// harvestKeywords returns the lowercase tokens of the text prefix that are long enough.
func (e *JobExtractor) harvestKeywords(text string) []string {
	var keywords []string
	for _, token := range textutil.SplitMulti(textutil.Prefix(text, e.prefix), keywordDelimiters) {
		if len([]rune(token)) < e.minLength {
			continue
		}
		keywords = append(keywords, strings.ToLower(token))
	}
	return keywords
}
