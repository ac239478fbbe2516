package domain

// QueryRequest captures the operator's instruction for one invocation.
type QueryRequest struct {
	Instruction string
	FreeText    bool
}

// Suggestion is the normalized, single-line command proposed to the operator.
// Command is untrusted model output and must only run after confirmation.
type Suggestion struct {
	Instruction string
	Command     string
	Raw         string
	Model       string
	Structured  bool
	Risk        RiskAssessment
}

// ExecutionResult wraps details from the command executor.
type ExecutionResult struct {
	Ran        bool
	Cancelled  bool
	ExitCode   int
	DurationMS int64
	Err        error
}
