package generation

import "time"

const (
	_defaultCacheTTL   = 24 * time.Hour
	_defaultCPUTimeout = 30 * time.Second

	_defaultBatchConcurrency = 4
)

type Option func(*UseCase)

// CacheTTL sets how long single-format results stay in the response cache.
func CacheTTL(ttl time.Duration) Option {
	return func(uc *UseCase) {
		uc.cacheTTL = ttl
	}
}

// CPUTimeout bounds the decode-enhance-overlay stage of one generation.
func CPUTimeout(t time.Duration) Option {
	return func(uc *UseCase) {
		uc.cpuTimeout = t
	}
}

// BatchConcurrency caps how many batch items render at once.
func BatchConcurrency(n int) Option {
	return func(uc *UseCase) {
		if n > 0 {
			uc.batchConcurrency = n
		}
	}
}
