// Package screening runs a batch: resume extraction, job extraction and scoring.
package screening

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-filter/internal/extract"
	"github.com/spigell/resume-filter/internal/input"
	"github.com/spigell/resume-filter/internal/logger"
	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/scoring"
)

const defaultWorkers = 4

// ErrNoResumes is returned when the resume directory holds no .txt files.
var ErrNoResumes = errors.New("no resumes found")

type Screener struct {
	resumes *extract.ResumeExtractor
	jobs    *extract.JobExtractor
	engine  *scoring.Engine
	workers int
	logger  *zap.Logger
}

type Request struct {
	ResumesDir string
	Job        input.Source
}

type Result struct {
	// Candidates are scored and kept in directory order.
	Candidates *profile.Candidates
	Job        *profile.Job
}

// New returns a screener extracting up to workers resumes at once.
// A non-positive workers value falls back to the default.
func New(resumes *extract.ResumeExtractor, jobs *extract.JobExtractor, engine *scoring.Engine, workers int, log *zap.Logger) *Screener {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Screener{
		resumes: resumes,
		jobs:    jobs,
		engine:  engine,
		workers: workers,
		logger:  logger.WithFields(log, zap.String("component", "screening")),
	}
}

// Run screens every resume of req.ResumesDir against the job description.
// An unreadable resume yields a default profile and never stops the batch.
func (s *Screener) Run(ctx context.Context, req Request) (*Result, error) {
	paths, err := input.ListResumes(req.ResumesDir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoResumes, req.ResumesDir)
	}

	jobText, err := input.Load(req.Job)
	if err != nil {
		return nil, err
	}

	s.logger.Info("extracting resumes", zap.Int("resumes", len(paths)), zap.Int("workers", s.workers))

	candidates, err := s.extractAll(ctx, paths)
	if err != nil {
		return nil, err
	}

	job := s.jobs.Extract(jobText)
	s.engine.ScoreAll(candidates, job)

	s.logger.Info("candidates scored",
		zap.Int("total", candidates.Len()),
		zap.Int("selectable", candidates.CountGrades(profile.GradeA, profile.GradeB)),
	)

	return &Result{Candidates: candidates, Job: job}, nil
}

func (s *Screener) extractAll(ctx context.Context, paths []string) (*profile.Candidates, error) {
	items := make([]*profile.Candidate, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			candidate, err := s.resumes.ExtractFile(path)
			if err != nil {
				logger.WithCandidateFields(s.logger, path, "").Warn("reading resume failed, using an empty profile", zap.Error(err))
			}
			items[i] = candidate
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile.NewCandidates(items...), nil
}
