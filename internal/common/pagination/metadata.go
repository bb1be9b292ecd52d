package pagination

// Metadata describes one window of a list.
type Metadata struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

// NewMetadata fills HasMore as total > offset + limit, rearranged so a huge
// offset cannot overflow.
func NewMetadata(total int64, p Params) Metadata {
	return Metadata{
		Total:   total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: total-int64(p.Offset) > int64(p.Limit),
	}
}
