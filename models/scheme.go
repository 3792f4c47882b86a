package models

// Scheme describes one government support programme shown in the schemes
// directory. The directory is static reference data compiled into the binary.
type Scheme struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Benefits         []string `json:"benefits"`
	Eligibility      []string `json:"eligibility"`
	Documents        []string `json:"documents"`
	ApplyLink        string   `json:"applyLink"`
	Status           string   `json:"status"`
}
