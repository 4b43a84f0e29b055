package jenks

const (
	DefaultClassCount = 10

	// a GVF of 0.8 is the usual "good enough" fit when picking a class count
	DefaultGVFThreshold  = 0.8
	DefaultMaxClassCount = 10

	// decimal places kept when logging breaks
	LogPrecision = 3
)
