package persist

type SaveRequest struct{}

type SaveResponse struct {
	Saved int `json:"saved"`
}

type LoadRequest struct{}

type LoadResponse struct {
	Found  bool `json:"found"`
	Loaded int  `json:"loaded"`
}
