package dto

// PANExtractResponse is the payload returned for a successful extraction.
// Fields the parser could not find are empty strings, never omitted.
type PANExtractResponse struct {
	Status     string `json:"status"`
	PANNumber  string `json:"panNumber"`
	Name       string `json:"name"`
	FatherName string `json:"fatherName"`
	DOB        string `json:"dob"`
	RawText    string `json:"rawText"`
}

// ErrorResponse is returned for request-level failures (missing or empty
// upload). Extraction itself never produces one of these.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
