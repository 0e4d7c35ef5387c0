package entity

// Mode selects which task the agent is given.
type Mode string

const (
	ModeApplying Mode = "applying"
)

type RunStatus string

const (
	RunStatusDone            RunStatus = "done"
	RunStatusCreditExhausted RunStatus = "credit_exhausted"
	RunStatusFailed          RunStatus = "failed"
)

type RunResult struct {
	Status      RunStatus
	FinalAnswer string
	Iterations  int
}
