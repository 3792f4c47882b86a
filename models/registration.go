package models

// PersonalInfo carries the identity fields of the registration form.
// All fields except Language are mandatory.
type PersonalInfo struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Language        string `json:"language"`
}

// FarmInfo carries the farm details of the registration form.
// FarmName, FarmSize, Location and SoilType are mandatory; the rest are
// optional profile enrichment.
type FarmInfo struct {
	FarmName          string `json:"farmName"`
	FarmSize          string `json:"farmSize"`
	Location          string `json:"location"`
	SoilType          string `json:"soilType"`
	FarmingExperience string `json:"farmingExperience"`
	FarmType          string `json:"farmType"`
}

// CropPreferences carries the optional final step of the registration form.
type CropPreferences struct {
	PrimaryCrops   []string `json:"primaryCrops"`
	FarmingSeason  string   `json:"farmingSeason"`
	IrrigationType string   `json:"irrigationType"`
	OrganicFarming bool     `json:"organicFarming"`
}

// RegistrationRequest aggregates all three registration steps into the single
// payload accepted by the session manager's Register operation.
type RegistrationRequest struct {
	Personal PersonalInfo
	Farm     FarmInfo
	Crops    CropPreferences
}
