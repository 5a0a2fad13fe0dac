package domain

// WordCount pairs a ranked word with the number of times it was counted.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Buckets holds words grouped by frequency. Index i holds the words seen
// exactly i+1 times, in first-occurrence order. An empty slot is an empty slice.
type Buckets [][]string

// Len returns the number of words held across all buckets.
func (b Buckets) Len() int {
	n := 0
	for _, words := range b {
		n += len(words)
	}
	return n
}

// FileResult is the ranking of a single file produced by a directory scan.
type FileResult struct {
	Path  string      `json:"path"`
	Words []WordCount `json:"words"`
	Err   string      `json:"error,omitempty"`
}

// ScanStats summarizes a directory scan.
type ScanStats struct {
	FilesScanned int `json:"files_scanned"`
	FilesFailed  int `json:"files_failed"`
	CacheHits    int `json:"cache_hits"`
}
