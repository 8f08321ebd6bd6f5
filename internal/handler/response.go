package handler

type ErrorResponse struct {
	Error string `json:"error"`
}

type AnalysisErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}
