package checks

const (
	StatusOK    = "ok"
	StatusWarn  = "warn"
	StatusError = "error"
	// StatusSkipped marks a check whose subsystem is not configured.
	StatusSkipped = "skipped"
)

// Result is the outcome of one check.
type Result struct {
	Status  string   `json:"status"`
	Detail  string   `json:"detail,omitempty"`
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func failed(err error) Result {
	return Result{Status: StatusError, Error: err.Error()}
}
