package domain

import "time"

// TransportOption is a vehicle/service bundle attachable to tour packages,
// tiered by the same Basico/Premium scale as tours.
type TransportOption struct {
	ID       int64
	Type     PackageType
	Vehicle  string
	Services []string
	ImageURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FilterTransportByType returns the options matching the given tier,
// preserving input order.
func FilterTransportByType(options []*TransportOption, t PackageType) []*TransportOption {
	filtered := make([]*TransportOption, 0, len(options))
	for _, opt := range options {
		if opt.Type == t {
			filtered = append(filtered, opt)
		}
	}
	return filtered
}
