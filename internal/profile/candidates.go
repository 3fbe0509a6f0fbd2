package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Candidates struct {
	Items []*Candidate `json:"items"`
}

func NewCandidates(items ...*Candidate) *Candidates {
	return &Candidates{Items: items}
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

// Clone returns a new collection sharing the candidate pointers.
func (c *Candidates) Clone() *Candidates {
	items := make([]*Candidate, len(c.Items))
	copy(items, c.Items)
	return &Candidates{Items: items}
}

// Keep drops every candidate for which keep returns false, preserving order.
// It returns the sources of dropped candidates.
func (c *Candidates) Keep(keep func(*Candidate) bool) []string {
	var dropped []string
	kept := c.Items[:0]
	for _, candidate := range c.Items {
		if keep(candidate) {
			kept = append(kept, candidate)
			continue
		}
		dropped = append(dropped, candidate.SourceRef)
	}
	c.Items = kept
	return dropped
}

func (c *Candidates) Sources() []string {
	sources := make([]string, 0, len(c.Items))
	for _, candidate := range c.Items {
		sources = append(sources, candidate.SourceRef)
	}
	return sources
}

// CountGrades returns the number of candidates having any of the given grades.
func (c *Candidates) CountGrades(grades ...Grade) int {
	count := 0
	for _, candidate := range c.Items {
		for _, g := range grades {
			if candidate.Grade == g {
				count++
				break
			}
		}
	}
	return count
}

// ReportByGrade groups a short description of every candidate by grade.
func (c *Candidates) ReportByGrade() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, candidate := range c.Items {
		key := string(candidate.Grade)
		if key == "" {
			key = "unscored"
		}
		report[key] = append(report[key], map[string]string{
			"name":           candidate.Name,
			"score":          fmt.Sprintf("%.1f", candidate.Score),
			"source":         candidate.SourceRef,
			"matched skills": strings.Join(candidate.MatchedSkills, ", "),
			"matched certs":  strings.Join(candidate.MatchedCertifications, ", "),
		})
	}
	return report
}

func (c *Candidates) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}
