package foodweb

// Limitation is the Michaelis-Menten multiplier n / (n + k): 0 at n = 0,
// saturating toward 1 as n grows. Callers must not pass n = k = 0.
func Limitation(n, k float64) float64 {
	return n / (n + k)
}
