package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-filter/internal/extract"
	"github.com/spigell/resume-filter/internal/filtering"
	"github.com/spigell/resume-filter/internal/input"
	"github.com/spigell/resume-filter/internal/logger"
	"github.com/spigell/resume-filter/internal/profile"
	"github.com/spigell/resume-filter/internal/report"
	"github.com/spigell/resume-filter/internal/scoring"
	"github.com/spigell/resume-filter/internal/screening"
	"github.com/spigell/resume-filter/internal/textutil"
)

const (
	PromptReportByGrade       = "Report by grade"
	PromptCandidatesToFile    = "Dump candidates to file"
	PromptAppendToExcludeFile = "Append selected candidates to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Screen a folder of resumes against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("resumes", "r", "", "folder containing resume .txt files")
	runCmd.Flags().String("job", "", "job description file")
	runCmd.Flags().String("job-text", "", "job description text, used when --job is not set")
	runCmd.Flags().StringP("report", "o", report.DefaultPath, "path of the selected candidates report")
	runCmd.Flags().StringP("exclude-file", "e", "", "file with already reviewed candidates to exclude. Default is unset.")
	runCmd.Flags().IntP("workers", "w", defaultWorkers, "number of resumes extracted concurrently")
	runCmd.Flags().BoolP("auto-approve", "y", false, "do not prompt: fail on missing paths and exit after the report")

	for _, name := range []string{"resumes", "job", "job-text", "report", "exclude-file", "workers"} {
		viper.BindPFlag(name, runCmd.Flags().Lookup(name))
	}
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-filter", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if err := config.Validate(); err != nil {
		logger.Fatal("validating the config", zap.Error(err))
	}

	interactive := cmd.Flag("auto-approve").Value.String() == "false"

	if err := completePaths(config, interactive); err != nil {
		logger.Fatal("collecting input paths", zap.Error(err))
	}

	extraction, err := extractionConfig(config.Extraction)
	if err != nil {
		logger.Fatal("loading vocabulary", zap.Error(err))
	}

	norm := textutil.NewNormalizer(extraction.Synonyms)
	engine := scoring.NewEngine(config.Scoring, norm, logger)

	logger.Debug("scoring configured",
		zap.Any("weights", engine.Config().Weights),
		zap.Any("thresholds", engine.Config().Thresholds),
		zap.Int("synonyms", len(norm.Synonyms())),
	)

	screener := screening.New(
		extract.NewResumeExtractor(extraction, logger),
		extract.NewJobExtractor(extraction, logger),
		engine,
		config.Workers,
		logger,
	)

	result, err := screener.Run(ctx, screening.Request{
		ResumesDir: config.Resumes,
		Job:        input.Source{Name: "job description", File: config.Job, Value: config.JobText},
	})
	if err != nil {
		if errors.Is(err, screening.ErrNoResumes) {
			logger.Info("exiting", zap.String("reason", "no resumes found"), zap.String("folder", config.Resumes))
			return
		}
		logger.Fatal("screening resumes", zap.Error(err))
	}

	if err := report.PrintSummary(os.Stdout, result.Candidates); err != nil {
		logger.Fatal("printing results", zap.Error(err))
	}

	selected, pending, err := selectCandidates(ctx, logger, result.Candidates, config.ExcludeFile, interactive)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	err = report.Write(config.Report, report.Report{
		Weights:  config.Scoring.Weights,
		Grades:   filtering.SelectedGrades,
		Selected: selected,
		Total:    result.Candidates.Len(),
	})
	if err != nil {
		logger.Fatal("writing the report", zap.Error(err))
	}

	logger.Info("report written",
		zap.String("path", config.Report),
		zap.Int("total", result.Candidates.Len()),
		zap.Int("selected", selected.Len()),
		zap.Int("pending", pending.Len()),
	)

	if !interactive {
		return
	}

	for {
		items := []string{PromptReportByGrade, PromptCandidatesToFile}
		if config.ExcludeFile != "" && pending.Len() != 0 {
			items = append(items, PromptAppendToExcludeFile)
		}

		prompt := promptui.Select{
			Label: "What next?",
			Items: append(items, PromptExit),
		}

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, result.Candidates, pending); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, all, pending *profile.Candidates) error {
	switch action {
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	case PromptReportByGrade:
		pretty, _ := json.MarshalIndent(all.ReportByGrade(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", all.Len()))
		return nil
	case PromptCandidatesToFile:
		filename, err := all.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		count, err := excludeSelected(config.ExcludeFile, pending)
		if err != nil {
			return fmt.Errorf("append to exclude file: %w", err)
		}
		logger.Info("appended to exclude file", zap.String("filename", config.ExcludeFile), zap.Int("count", count))
		return nil
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// selectCandidates returns the A/B candidates for the report and, of those, the ones
// missing from the exclude file. The exclude file is only read for the interactive
// follow-ups.
func selectCandidates(ctx context.Context, logger *zap.Logger, all *profile.Candidates, excludeFile string, interactive bool) (*profile.Candidates, *profile.Candidates, error) {
	byGrade := filtering.New(logger, filtering.NewGrade(filtering.SelectedGrades...))
	followUp := filtering.New(logger, filtering.NewExcludeFile(excludeFile))
	if !interactive {
		followUp.DisableByName("exclude_file", "no follow-up actions with auto-approve")
	}

	for _, status := range append(byGrade.Describe(), followUp.Describe()...) {
		logger.Debug("filter configured",
			zap.String("name", status.Name),
			zap.Bool("enabled", status.Enabled),
			zap.String("reason", status.Reason),
			zap.Any("details", status.Details),
		)
	}

	selected, err := byGrade.RunFilters(ctx, all)
	if err != nil {
		return nil, nil, err
	}

	pending, err := followUp.RunFilters(ctx, selected)
	if err != nil {
		return nil, nil, err
	}

	return selected, pending, nil
}

// excludeSelected appends selected to the exclude file and empties selected.
func excludeSelected(path string, selected *profile.Candidates) (int, error) {
	excluded, err := profile.GetExcludedFromFile(path)
	if err != nil {
		return 0, err
	}

	excluded.Append(selected.ToExcluded())
	if err := excluded.ToFile(path); err != nil {
		return 0, err
	}

	seen := make(map[string]bool, len(excluded.Items))
	for _, source := range excluded.Sources() {
		seen[source] = true
	}
	dropped := selected.Keep(func(c *profile.Candidate) bool {
		return !seen[c.SourceRef]
	})

	return len(dropped), nil
}

// completePaths asks for the resume folder and the job description when they are not configured.
func completePaths(config *Config, interactive bool) error {
	if strings.TrimSpace(config.Resumes) == "" {
		if !interactive {
			return errors.New("resumes folder is required (--resumes or resumes in config)")
		}
		path, err := askPath("Path to folder containing resume .txt files")
		if err != nil {
			return err
		}
		config.Resumes = path
	}

	if strings.TrimSpace(config.Job) == "" && config.JobText == "" {
		if !interactive {
			return errors.New("job description is required (--job, --job-text or job in config)")
		}
		path, err := askPath("Path to job description file (.txt)")
		if err != nil {
			return err
		}
		config.Job = path
	}

	return nil
}

func askPath(label string) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("path is required")
			}
			return nil
		},
	}

	path, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

// extractionConfig extends cfg with its vocabulary file, if any.
func extractionConfig(cfg extract.Config) (extract.Config, error) {
	path := strings.TrimSpace(cfg.VocabularyFile)
	if path == "" {
		return cfg, nil
	}

	vocabulary, err := extract.LoadVocabulary(path)
	if err != nil {
		return cfg, err
	}
	return cfg.WithVocabulary(vocabulary), nil
}
