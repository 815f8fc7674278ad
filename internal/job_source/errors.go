package job_source

import "errors"

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrSourceUnavailable = errors.New("job source unavailable")
	ErrInvalidData       = errors.New("invalid job data")
)
