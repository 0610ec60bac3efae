package out

// ReportCache memoizes encoded reports. Misses are normal; implementations
// may drop entries at any time.
type ReportCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}
