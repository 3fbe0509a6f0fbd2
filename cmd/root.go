package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/resume-filter/internal/extract"
	"github.com/spigell/resume-filter/internal/report"
	"github.com/spigell/resume-filter/internal/scoring"
)

const (
	app       = "resume-filter"
	envPrefix = "RESUME_FILTER"

	defaultWorkers = 4
)

type Config struct {
	Resumes     string         `mapstructure:"resumes"`
	Job         string         `mapstructure:"job"`
	JobText     string         `mapstructure:"job-text"`
	Report      string         `mapstructure:"report"`
	ExcludeFile string         `mapstructure:"exclude-file"`
	Workers     int            `mapstructure:"workers"`
	Scoring     scoring.Config `mapstructure:"scoring"`
	Extraction  extract.Config `mapstructure:"extraction"`
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if strings.TrimSpace(c.Report) == "" {
		return errors.New("report path is required")
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if err := c.Extraction.Validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}
	return nil
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-filter scores plain-text resumes against a job description and reports the best candidates",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	setDefaults(viper.GetViper())
	configureEnv(viper.GetViper())

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-filter.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

// setDefaults registers every leaf key so that env variables and partial config files
// resolve against them.
func setDefaults(v *viper.Viper) {
	v.SetDefault("report", report.DefaultPath)
	v.SetDefault("workers", defaultWorkers)
	v.SetDefault("resumes", "")
	v.SetDefault("job", "")
	v.SetDefault("job-text", "")
	v.SetDefault("exclude-file", "")

	s := scoring.DefaultConfig()
	v.SetDefault("scoring.weights.skills", s.Weights.Skills)
	v.SetDefault("scoring.weights.experience", s.Weights.Experience)
	v.SetDefault("scoring.weights.gpa", s.Weights.GPA)
	v.SetDefault("scoring.weights.certifications", s.Weights.Certifications)
	v.SetDefault("scoring.weights.keywords", s.Weights.Keywords)
	v.SetDefault("scoring.thresholds.a", s.Thresholds.A)
	v.SetDefault("scoring.thresholds.b", s.Thresholds.B)
	v.SetDefault("scoring.thresholds.c", s.Thresholds.C)
	v.SetDefault("scoring.required-share", s.RequiredShare)
	v.SetDefault("scoring.unspecified-skills-share", s.UnspecifiedSkillsShare)
	v.SetDefault("scoring.experience-cap", s.ExperienceCap)
	v.SetDefault("scoring.gpa-scale", s.GPAScale)
	v.SetDefault("scoring.certification-credit", s.CertificationCredit)

	e := extract.DefaultConfig()
	v.SetDefault("extraction.synonyms", e.Synonyms)
	v.SetDefault("extraction.known-skills", e.KnownSkills)
	v.SetDefault("extraction.known-certifications", e.KnownCertifications)
	v.SetDefault("extraction.keyword-prefix", e.KeywordPrefix)
	v.SetDefault("extraction.keyword-min-length", e.KeywordMinLength)
	v.SetDefault("extraction.vocabulary-file", "")
}

// configureEnv maps keys like scoring.weights.gpa to RESUME_FILTER_SCORING_WEIGHTS_GPA.
func configureEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if err := readConfig(viper.GetViper(), cfgFile); err != nil {
		log.Fatal(err)
	}
}

// readConfig loads path, or resume-filter.yaml from the working directory when path is empty.
// Only an explicitly requested file has to exist.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(app)
		v.SetConfigType("yaml")
	}

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	var config *Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return config, nil
}

func getConfig() (*Config, error) {
	return loadConfig(viper.GetViper())
}
