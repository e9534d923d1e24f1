package validate

// Rejection is a block that failed validation.
type Rejection struct {
	Block  string `json:"block"`
	Reason string `json:"reason"`
}

// Stats summarises a batch of validations.
type Stats struct {
	TotalBlocks      int            `json:"totalBlocks"`
	AcceptedBlocks   int            `json:"acceptedBlocks"`
	RejectedBlocks   int            `json:"rejectedBlocks"`
	RejectionReasons map[string]int `json:"rejectionReasons"`
}

// Batch partitions blocks into accepted and rejected.
type Batch struct {
	Accepted []string    `json:"accepted"`
	Rejected []Rejection `json:"rejected"`
	Stats    Stats       `json:"stats"`
}

// ValidateBlocks validates each block independently and collects statistics.
func (v *Validator) ValidateBlocks(blocks []string) Batch {
	b := Batch{
		Accepted: []string{},
		Rejected: []Rejection{},
		Stats: Stats{
			TotalBlocks:      len(blocks),
			RejectionReasons: map[string]int{},
		},
	}

	for _, block := range blocks {
		res := v.Validate(block)
		if res.Valid {
			b.Accepted = append(b.Accepted, block)
			continue
		}
		reason := res.Reason
		if reason == "" {
			reason = ReasonUnknown
		}
		b.Rejected = append(b.Rejected, Rejection{Block: block, Reason: reason})
		b.Stats.RejectionReasons[reason]++
	}

	b.Stats.AcceptedBlocks = len(b.Accepted)
	b.Stats.RejectedBlocks = len(b.Rejected)
	return b
}
