package interfaces

// IMetrics receives domain events worth counting.
type IMetrics interface {
	ObservePayment(method string, amount float64)
	ObserveTransition(from, to string)
}
