package domain

import "errors"

var (
	ErrSourceMissing = errors.New("source file missing")
	ErrEmptySource   = errors.New("source file has no header row")
	ErrMissingColumn = errors.New("required column missing")
	ErrMalformedRow  = errors.New("row has more fields than header")
	ErrInvalidNumber = errors.New("invalid numeric value")
	ErrUnknownPolicy = errors.New("unknown zero distance policy")
	ErrNilDataset    = errors.New("dataset is nil")
	ErrUnknownChart  = errors.New("unknown chart")
	ErrNoChartData   = errors.New("no data to chart")
)
