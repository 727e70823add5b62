package dto

// PortalStatsResponse represents portal-wide totals for the admin dashboard
type PortalStatsResponse struct {
	Groups   int64 `json:"groups"`
	Projects struct {
		Total               int64 `json:"total"`
		OpenForContinuation int64 `json:"openForContinuation"`
	} `json:"projects"`
	Requests struct {
		Waiting  int64 `json:"waiting"`
		Approved int64 `json:"approved"`
	} `json:"requests"`
	Comments int64 `json:"comments"`
}
