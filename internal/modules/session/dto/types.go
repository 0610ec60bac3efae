package dto

import "time"

type TapInput struct {
	ChantName string
}

type SessionOutput struct {
	ID              string
	ChantName       string
	Timestamp       time.Time
	TotalCounts     int
	TotalMalas      float64
	DurationSeconds int
}

type TapOutput struct {
	Session      SessionOutput
	Created      bool
	SessionCount int
}

type HistoryOutput struct {
	Sessions    []SessionOutput
	Fingerprint string
	TotalCounts int
}

type ClearInput struct {
	Confirmed bool
}

type ExportInput struct {
	Dir string
}

type ExportOutput struct {
	Paths []string
	Days  int
}
