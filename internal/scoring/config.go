package scoring

import "github.com/go-playground/validator/v10"

// Weights are the maximum points of each factor.
type Weights struct {
	Skills         float64 `mapstructure:"skills" validate:"gte=0"`
	Experience     float64 `mapstructure:"experience" validate:"gte=0"`
	GPA            float64 `mapstructure:"gpa" validate:"gte=0"`
	Certifications float64 `mapstructure:"certifications" validate:"gte=0"`
	Keywords       float64 `mapstructure:"keywords" validate:"gte=0"`
}

// Thresholds are the minimum totals of grades A, B and C.
type Thresholds struct {
	A float64 `mapstructure:"a" validate:"gtfield=B,lte=100"`
	B float64 `mapstructure:"b" validate:"gtfield=C"`
	C float64 `mapstructure:"c" validate:"gte=0"`
}

type Config struct {
	Weights    Weights    `mapstructure:"weights"`
	Thresholds Thresholds `mapstructure:"thresholds"`

	// RequiredShare is the part of the skills weight given to required skills,
	// the rest goes to preferred ones.
	RequiredShare float64 `mapstructure:"required-share" validate:"gte=0,lte=1"`
	// UnspecifiedSkillsShare is awarded when the job lists no skills at all.
	UnspecifiedSkillsShare float64 `mapstructure:"unspecified-skills-share" validate:"gte=0,lte=1"`
	ExperienceCap          float64 `mapstructure:"experience-cap" validate:"gt=0"`
	GPAScale               float64 `mapstructure:"gpa-scale" validate:"gt=0"`
	CertificationCredit    float64 `mapstructure:"certification-credit" validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:         50,
			Experience:     20,
			GPA:            15,
			Certifications: 10,
			Keywords:       5,
		},
		Thresholds: Thresholds{
			A: 85,
			B: 70,
			C: 55,
		},
		RequiredShare:          0.7,
		UnspecifiedSkillsShare: 0.2,
		ExperienceCap:          10,
		GPAScale:               4.0,
		CertificationCredit:    2,
	}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}
