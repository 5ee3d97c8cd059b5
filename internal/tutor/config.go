package tutor

// CoachReplyLimit is the longest coach reply kept, in characters.
const CoachReplyLimit = 150

// Config holds content generation settings.
type Config struct {
	Language string // BCP 47 tag for generated text

	AssessMaxTokens int
	TaskMaxTokens   int
	EvalMaxTokens   int
	CoachMaxTokens  int
	ReportMaxTokens int

	Temperature     float64
	TaskTemperature float64

	// CoachHistory is how many earlier turns are replayed to the model.
	CoachHistory int
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		Language:        "zh-CN",
		AssessMaxTokens: 768,
		TaskMaxTokens:   768,
		EvalMaxTokens:   1024,
		CoachMaxTokens:  256,
		ReportMaxTokens: 1024,
		Temperature:     0.7,
		TaskTemperature: 0.8,
		CoachHistory:    10,
	}
}
