package upload

import "time"

type Option func(*UseCase)

// MaxFileSize overrides the upload size cap in bytes.
func MaxFileSize(size int64) Option {
	return func(uc *UseCase) {
		uc.maxFileSize = size
	}
}

// WithClock overrides the time source; tests use it for stable image IDs.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) {
		uc.now = now
	}
}
