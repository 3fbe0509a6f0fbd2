// Package profile defines the records produced by extraction and filled in by scoring.
package profile

// GPANotFound marks a candidate whose GPA could not be extracted.
const GPANotFound = -1.0

// Grade is the letter bucket of a candidate score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Candidate is the profile extracted from a single resume.
// Score, Grade, MatchedSkills, MatchedCertifications and Breakdown are
// written once by the scoring engine.
type Candidate struct {
	Name            string   `json:"name"`
	GPA             float64  `json:"gpa"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Certifications  []string `json:"certifications"`
	SourceRef       string   `json:"source"`

	Score                 float64   `json:"score"`
	Grade                 Grade     `json:"grade,omitempty"`
	MatchedSkills         []string  `json:"matched_skills,omitempty"`
	MatchedCertifications []string  `json:"matched_certifications,omitempty"`
	Breakdown             Breakdown `json:"breakdown"`
}

// Breakdown holds the points contributed by each scoring factor.
type Breakdown struct {
	Skills         float64 `json:"skills"`
	Experience     float64 `json:"experience"`
	GPA            float64 `json:"gpa"`
	Certifications float64 `json:"certifications"`
	Keywords       float64 `json:"keywords"`
}

// NewCandidate returns an empty profile for the given source.
func NewCandidate(source string) *Candidate {
	return &Candidate{
		GPA:       GPANotFound,
		SourceRef: source,
	}
}

// HasGPA reports whether a usable GPA was extracted.
func (c *Candidate) HasGPA() bool {
	return c.GPA > 0
}

// Job holds the requirements extracted from a job description.
type Job struct {
	RequiredSkills         []string `json:"required_skills"`
	PreferredSkills        []string `json:"preferred_skills"`
	MinGPA                 float64  `json:"min_gpa"`
	MinExperience          int      `json:"min_experience"`
	RequiredCertifications []string `json:"required_certifications"`
	Keywords               []string `json:"keywords"`
}

// HasSkills reports whether the job lists any required or preferred skill.
func (j *Job) HasSkills() bool {
	return len(j.RequiredSkills)+len(j.PreferredSkills) > 0
}
