package model

// Audio qualities accepted by the download endpoints.
const (
	QualityLow    = "low"
	QualityMedium = "medium"
	QualityHigh   = "high"
)

// ValidQuality reports whether q is one of the accepted audio qualities.
func ValidQuality(q string) bool {
	return q == QualityLow || q == QualityMedium || q == QualityHigh
}

// MP3 is stored download metadata for a YouTube video. There is no
// soft-delete lifecycle for this resource.
type MP3 struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Link       string `json:"link"`
	VideoID    string `json:"video_id"`
	Quality    string `json:"quality"`
	Thumbnail  string `json:"thumbnail"`
	Duration   string `json:"duration"`
	SearchDate string `json:"search_date"`
}
