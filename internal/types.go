package internal

import "time"

// RawRow is one table row as extracted from a document. A nil cell is absent.
type RawRow []*string

type TableStrategy string

const (
	StrategyLines TableStrategy = "lines"
	StrategyText  TableStrategy = "text"
	StrategyAuto  TableStrategy = "auto"
)

type Side string

const (
	SideOld Side = "old"
	SideNew Side = "new"
)

type ReconciliationResult struct {
	Added    []string `json:"added"`
	Removed  []string `json:"removed"`
	OldCount int      `json:"oldCount"`
	NewCount int      `json:"newCount"`
}

type CompareReport struct {
	RunID     string               `json:"runId"`
	OldPath   string               `json:"oldPath"`
	NewPath   string               `json:"newPath"`
	StartedAt time.Time            `json:"startedAt"`
	Duration  time.Duration        `json:"durationNs"`
	Result    ReconciliationResult `json:"result"`
}
