// Package scoring computes a 0-100 score and a letter grade for extracted candidates.
package scoring

import (
	"math"

	"go.uber.org/zap"

	"github.com/spigell/resume-filter/internal/logger"
	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/textutil"
)

const maxScore = 100.0

type Engine struct {
	cfg    Config
	norm   *textutil.Normalizer
	logger *zap.Logger
}

// NewEngine returns an engine comparing skills with norm. A nil norm uses the default synonyms.
func NewEngine(cfg Config, norm *textutil.Normalizer, log *zap.Logger) *Engine {
	if norm == nil {
		norm = textutil.NewNormalizer(textutil.DefaultSynonyms)
	}
	return &Engine{
		cfg:    cfg,
		norm:   norm,
		logger: logger.WithFields(log, zap.String("component", "scoring")),
	}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// ScoreAll scores every candidate against the same job.
func (e *Engine) ScoreAll(candidates *profile.Candidates, job *profile.Job) {
	for _, c := range candidates.Items {
		e.Score(c, job)
	}
}

// Score writes the score, grade, matches and breakdown into c.
func (e *Engine) Score(c *profile.Candidate, job *profile.Job) {
	var b profile.Breakdown

	b.Skills, c.MatchedSkills = e.skills(c, job)
	b.Experience = e.experience(c, job)
	b.GPA = e.gpa(c, job)
	b.Certifications, c.MatchedCertifications = e.certifications(c, job)
	b.Keywords = e.keywords(c, job)

	total := b.Skills + b.Experience + b.GPA + b.Certifications + b.Keywords
	c.Breakdown = b
	c.Score = clamp(total, 0, maxScore)
	c.Grade = e.Grade(c.Score)

	logger.WithCandidateFields(e.logger, c.SourceRef, c.Name).Debug("candidate scored",
		zap.Float64("score", c.Score),
		zap.String("grade", string(c.Grade)),
		zap.Float64("skills", b.Skills),
		zap.Float64("experience", b.Experience),
		zap.Float64("gpa", b.GPA),
		zap.Float64("certifications", b.Certifications),
		zap.Float64("keywords", b.Keywords),
	)
}

// Grade maps a total to its letter using the configured thresholds.
func (e *Engine) Grade(score float64) profile.Grade {
	t := e.cfg.Thresholds
	switch {
	case score >= t.A:
		return profile.GradeA
	case score >= t.B:
		return profile.GradeB
	case score >= t.C:
		return profile.GradeC
	default:
		return profile.GradeD
	}
}

func (e *Engine) skills(c *profile.Candidate, job *profile.Job) (float64, []string) {
	weight := e.cfg.Weights.Skills
	if !job.HasSkills() {
		return weight * e.cfg.UnspecifiedSkillsShare, nil
	}

	required := e.intersect(c.Skills, job.RequiredSkills)
	preferred := e.intersect(c.Skills, job.PreferredSkills)

	points := 0.0
	if len(job.RequiredSkills) > 0 {
		points += weight * e.cfg.RequiredShare * float64(len(required)) / float64(len(job.RequiredSkills))
	}
	if len(job.PreferredSkills) > 0 {
		points += weight * (1 - e.cfg.RequiredShare) * float64(len(preferred)) / float64(len(job.PreferredSkills))
	}

	matched := append([]string(nil), required...)
	for _, s := range preferred {
		if !contains(matched, s) {
			matched = append(matched, s)
		}
	}

	return points, matched
}

// intersect returns the normalized candidate skills present in wanted, in candidate order.
func (e *Engine) intersect(have, wanted []string) []string {
	var result []string
	for _, h := range have {
		nh := e.norm.Normalize(h)
		for _, w := range wanted {
			if nh == e.norm.Normalize(w) {
				result = append(result, nh)
				break
			}
		}
	}
	return result
}

func (e *Engine) experience(c *profile.Candidate, job *profile.Job) float64 {
	weight := e.cfg.Weights.Experience
	years := float64(c.ExperienceYears)
	if years <= 0 {
		return 0
	}

	if job.MinExperience > 0 {
		if years >= float64(job.MinExperience) {
			return weight
		}
		return weight * years / float64(job.MinExperience)
	}

	return weight * math.Min(years, e.cfg.ExperienceCap) / e.cfg.ExperienceCap
}

func (e *Engine) gpa(c *profile.Candidate, job *profile.Job) float64 {
	weight := e.cfg.Weights.GPA
	if !c.HasGPA() {
		return 0
	}

	if job.MinGPA > 0 {
		if c.GPA >= job.MinGPA {
			return weight
		}
		return weight * clamp(c.GPA/job.MinGPA, 0, 1)
	}

	return weight * math.Min(c.GPA/e.cfg.GPAScale, 1)
}

func (e *Engine) certifications(c *profile.Candidate, job *profile.Job) (float64, []string) {
	weight := e.cfg.Weights.Certifications
	if len(job.RequiredCertifications) == 0 {
		return math.Min(weight, float64(len(c.Certifications))*e.cfg.CertificationCredit), nil
	}

	share := weight / float64(len(job.RequiredCertifications))
	points := 0.0
	var matched []string
	for _, req := range job.RequiredCertifications {
		for _, have := range c.Certifications {
			if textutil.ContainsToken(have, req) {
				points += share
				matched = append(matched, have)
			}
		}
	}
	return points, matched
}

// keywords counts a keyword match in the source reference and in the name separately,
// so one keyword can contribute twice before the clamp.
func (e *Engine) keywords(c *profile.Candidate, job *profile.Job) float64 {
	if len(job.Keywords) == 0 {
		return 0
	}

	weight := e.cfg.Weights.Keywords
	matched := 0
	for _, kw := range job.Keywords {
		if textutil.ContainsToken(c.SourceRef, kw) {
			matched++
		}
		if textutil.ContainsToken(c.Name, kw) {
			matched++
		}
	}

	return math.Min(weight*float64(matched)/float64(len(job.Keywords)), weight)
}

func clamp(v, low, high float64) float64 {
	return math.Max(low, math.Min(v, high))
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
