package interfaces

// -----------------------------------------------------------------------------
// IRegionSource supplies a raw country/region signal for market detection.
// -----------------------------------------------------------------------------

type IRegionSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Region returns an ISO-2 country code, or "" when no signal is available.
	// Detection failure is not an error; resolution falls through to the next
	// source.
	Region() string
}
