package domain

// BillingSummary is the non-failing read model behind the final-report gate.
type BillingSummary struct {
	Paid                  bool `json:"paid"`
	SnapshotMatches       bool `json:"snapshot_matches"`
	CurrentUnitCount      int  `json:"current_unit_count"`
	PaidSnapshotUnitCount *int `json:"paid_snapshot_unit_count,omitempty"`
}
