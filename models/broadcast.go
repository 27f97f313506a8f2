package models

// BroadcastResult is the aggregate verdict of one fan-out broadcast.
// Invariant: 0 <= Succeeded <= Attempted.
type BroadcastResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
}

// Delivered reports whether the broadcast reached at least one recipient.
// The broadcast is best-effort, so a single success counts as delivered.
func (r BroadcastResult) Delivered() bool {
	return r.Succeeded > 0
}
