package tuner

// mse is the squared error of one prediction.
func mse(predicted, target float64) float64 {
	d := predicted - target
	return d * d
}

// msePrime is d mse / d predicted.
func msePrime(predicted, target float64) float64 {
	return 2 * (predicted - target)
}
