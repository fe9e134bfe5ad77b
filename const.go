package tsl256x

const (
	// defaultWindow is the number of samples kept per channel.
	defaultWindow = 16
	// smoothing is the weight divisor of the moving mean.
	smoothing = 4
)
