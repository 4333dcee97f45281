package types

type Mode string

const (
	ModeRecord        Mode = "record"
	ModeConfiguration Mode = "configuration"
	// ModePreselect is the legacy name of configuration mode.
	ModePreselect Mode = "preselect"
)

type SaveOperation string

const (
	SaveOperationNew    SaveOperation = "new"
	SaveOperationUpdate SaveOperation = "update"
)
