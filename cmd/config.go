package cmd

// Config carries the process configuration read from the environment.
type Config struct {
	HTTPPort            string
	BackendBaseURL      string
	BackendAccessToken  string
	DetailSweepSchedule string
}
