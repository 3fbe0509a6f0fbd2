package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCandidates() *Candidates {
	return NewCandidates(
		&Candidate{Name: "Ann", SourceRef: "a.txt", Score: 90, Grade: GradeA, MatchedSkills: []string{"go", "sql"}},
		&Candidate{Name: "Bob", SourceRef: "b.txt", Score: 60, Grade: GradeC},
		&Candidate{Name: "Cid", SourceRef: "c.txt", Score: 72.4, Grade: GradeB},
		&Candidate{Name: "Dee", SourceRef: "d.txt"},
	)
}

func TestNewCandidateDefaults(t *testing.T) {
	c := NewCandidate("x.txt")

	assert.Equal(t, "x.txt", c.SourceRef)
	assert.Equal(t, GPANotFound, c.GPA)
	assert.False(t, c.HasGPA())
	assert.Zero(t, c.ExperienceYears)
	assert.Empty(t, c.Skills)
}

func TestKeepPreservesOrder(t *testing.T) {
	all := testCandidates()
	selected := all.Clone()

	dropped := selected.Keep(func(c *Candidate) bool {
		return c.Grade == GradeA || c.Grade == GradeB
	})

	assert.Equal(t, []string{"b.txt", "d.txt"}, dropped)
	assert.Equal(t, []string{"a.txt", "c.txt"}, selected.Sources())
	assert.Equal(t, 4, all.Len(), "clone must not shrink the source collection")
	assert.Equal(t, 2, all.CountGrades(GradeA, GradeB))
}

func TestReportByGrade(t *testing.T) {
	report := testCandidates().ReportByGrade()

	require.Len(t, report["A"], 1)
	assert.Equal(t, "Ann", report["A"][0]["name"])
	assert.Equal(t, "90.0", report["A"][0]["score"])
	assert.Equal(t, "go, sql", report["A"][0]["matched skills"])
	assert.Equal(t, "72.4", report["B"][0]["score"])
	require.Len(t, report["unscored"], 1)
	assert.Equal(t, "d.txt", report["unscored"][0]["source"])
}

func TestDumpToTmpFile(t *testing.T) {
	filename, err := testCandidates().DumpToTmpFile()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(filename) })

	data, err := os.ReadFile(filename)
	require.NoError(t, err)

	var decoded Candidates
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 4, decoded.Len())
	assert.Equal(t, GradeA, decoded.Items[0].Grade)
}

func TestExcludedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")

	missing, err := GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, missing.Items)

	require.NoError(t, os.WriteFile(path, nil, 0o644))
	empty, err := GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Empty(t, empty.Items)

	selected := testCandidates()
	selected.Items = selected.Items[:2]
	empty.Append(selected.ToExcluded())
	require.NoError(t, empty.ToFile(path))

	loaded, err := GetExcludedFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, loaded.Sources())
	assert.Equal(t, "Ann", loaded.Items[0].Name)
	assert.False(t, loaded.Items[0].ExcludedAt.IsZero())
}

func TestGetExcludedFromFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := GetExcludedFromFile(path)
	assert.Error(t, err)
}
