package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PublicPortfolio is returned by the public portfolio root.
type PublicPortfolio struct {
	User     User              `json:"user"`
	Settings PortfolioSettings `json:"settings"`
}
