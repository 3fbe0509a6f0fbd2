package filtering

import (
	"context"
	"errors"
	"strings"

	"github.com/spigell/resume-filter/internal/profile"
)

// SelectedGrades is the fixed selection policy of the report.
var SelectedGrades = []profile.Grade{profile.GradeA, profile.GradeB}

type gradeFilter struct {
	grades []profile.Grade
}

// NewGrade creates a filter keeping only candidates with one of the given grades.
func NewGrade(grades ...profile.Grade) Filter {
	return &gradeFilter{grades: grades}
}

func (f *gradeFilter) Name() string { return "grade" }

// Disable is a no-op: grade selection always runs.
func (f *gradeFilter) Disable(string) {}

func (f *gradeFilter) IsEnabled() bool { return true }

func (f *gradeFilter) Validate() error {
	if len(f.grades) == 0 {
		return errors.New("at least one grade is required")
	}
	return nil
}

func (f *gradeFilter) Apply(_ context.Context, c *profile.Candidates) (Step, error) {
	initial := c.Len()
	dropped := c.Keep(func(candidate *profile.Candidate) bool {
		for _, g := range f.grades {
			if candidate.Grade == g {
				return true
			}
		}
		return false
	})

	return Step{Initial: initial, Dropped: len(dropped), Left: c.Len()}, nil
}

func (f *gradeFilter) Status() Status {
	grades := make([]string, 0, len(f.grades))
	for _, g := range f.grades {
		grades = append(grades, string(g))
	}
	return Status{
		Name:    f.Name(),
		Enabled: true,
		Details: map[string]string{"grades": strings.Join(grades, ",")},
	}
}
