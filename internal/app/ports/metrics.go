package ports

type PuzzleMetrics interface {
	RecordAttempt(matched bool)
	RecordDiscovery()
	RecordCompletion()
	RecordHint(kind string)
}
