// Package report renders screening results: the selected candidates report file
// and the console results table.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/scoring"
)

const (
	DefaultPath = "selected_candidates_report.txt"

	consoleSkills = 4
	ruleWidth     = 80
)

//go:embed report.tmpl
var reportTemplate string

var tmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"points":     formatPoints,
	"gpa":        formatGPA,
	"listOrNone": listOrNone,
	"joinGrades": joinGrades,
}).Parse(reportTemplate))

// Report is the data of a selected candidates report.
type Report struct {
	Weights  scoring.Weights
	Grades   []profile.Grade
	Selected *profile.Candidates
	// Total is the number of processed candidates, selected or not.
	Total int
}

// Write renders r into the file at path, replacing it.
func Write(path string, r Report) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report %q: %w", path, err)
	}

	if err := Render(file, r); err != nil {
		file.Close()
		return fmt.Errorf("writing report %q: %w", path, err)
	}

	return file.Close()
}

func Render(w io.Writer, r Report) error {
	if r.Selected == nil {
		r.Selected = profile.NewCandidates()
	}
	return tmpl.Execute(w, r)
}

// PrintSummary prints one row per candidate with at most four matched skills.
func PrintSummary(w io.Writer, candidates *profile.Candidates) error {
	var b strings.Builder

	b.WriteString("\nResults:\n")
	fmt.Fprintf(&b, "%-30s%-10s%-10s%s\n", "Name", "Grade", "Score", "Matched Skills")
	b.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	for _, c := range candidates.Items {
		skills := c.MatchedSkills
		if len(skills) > consoleSkills {
			skills = skills[:consoleSkills]
		}
		fmt.Fprintf(&b, "%-30s%-10s%-10.1f%s\n", c.Name, c.Grade, c.Score, strings.Join(skills, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatGPA(c *profile.Candidate) string {
	if !c.HasGPA() {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", c.GPA)
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func joinGrades(grades []profile.Grade, sep string) string {
	parts := make([]string, 0, len(grades))
	for _, g := range grades {
		parts = append(parts, string(g))
	}
	return strings.Join(parts, sep)
}
