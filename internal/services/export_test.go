package services

// Exported for tests in the services_test package.
const (
	DefaultSeedCount  = defaultSeedCount
	DefaultSeedMonths = defaultSeedMonths
)
