package usecase

const (
	// DefaultTransferCeiling is the maximum amount permitted in a single
	// transfer, in minor currency units.
	DefaultTransferCeiling = "100000000"

	// DefaultPageSize and MaxPageSize bound history listings.
	DefaultPageSize = 20
	MaxPageSize     = 100
)
