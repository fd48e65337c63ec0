package dto

type RecommendRequest struct {
	Category     string `json:"category"`
	Budget       any    `json:"budget"`
	Requirements string `json:"requirements"`
}

type RecommendResponse struct {
	Recommendations string `json:"recommendations"`
}
