package filtering

import (
	"context"
	"fmt"
	"strings"

	"github.com/spigell/resume-filter/internal/profile"
)

const noExcludeFileMsg = "no exclude file configured"

type excludeFileFilter struct {
	path     string
	disabled bool
	reason   string
}

// NewExcludeFile creates a filter that removes candidates listed in an exclude file.
// The filter disables itself when path is empty.
func NewExcludeFile(path string) Filter {
	f := &excludeFileFilter{path: strings.TrimSpace(path)}
	if f.path == "" {
		f.Disable(noExcludeFileMsg)
	}
	return f
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *excludeFileFilter) IsEnabled() bool { return !f.disabled }

func (f *excludeFileFilter) Validate() error { return nil }

func (f *excludeFileFilter) Apply(_ context.Context, c *profile.Candidates) (Step, error) {
	initial := c.Len()

	excluded, err := profile.GetExcludedFromFile(f.path)
	if err != nil {
		return Step{}, fmt.Errorf("getting excluded candidates from file: %w", err)
	}

	sources := make(map[string]bool, len(excluded.Items))
	for _, source := range excluded.Sources() {
		sources[source] = true
	}

	dropped := c.Keep(func(candidate *profile.Candidate) bool {
		return !sources[candidate.SourceRef]
	})

	return Step{Initial: initial, Dropped: len(dropped), Left: c.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
