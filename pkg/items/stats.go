package items

import "github.com/adfharrison1/go-items/pkg/domain"

// Stats counts items by active flag
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

// ComputeStats tallies items
func ComputeStats(list []domain.Item) Stats {
	stats := Stats{Total: len(list)}
	for _, it := range list {
		if it.Active {
			stats.Active++
		}
	}
	stats.Inactive = stats.Total - stats.Active
	return stats
}
