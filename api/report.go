package api

// KeyDiff is the structural difference between two catalogs' key sets.
// Only the flattened dot-paths are compared; values are ignored.
type KeyDiff struct {
	// From and To identify the compared catalogs (locale codes).
	From string `json:"from"`
	To   string `json:"to"`
	// Added holds paths present in To but missing from From.
	Added []string `json:"added,omitempty"`
	// Removed holds paths present in From but missing from To.
	Removed []string `json:"removed,omitempty"`
}

// VarMismatch reports a key whose interpolation variables differ
// between the source and target catalog values.
type VarMismatch struct {
	Key      string   `json:"key"`
	FromVars []string `json:"from_vars"`
	ToVars   []string `json:"to_vars"`
}

// UsageReport splits catalog keys by whether a source tree references them.
type UsageReport struct {
	Used   []string `json:"used,omitempty"`
	Unused []string `json:"unused,omitempty"`
}
