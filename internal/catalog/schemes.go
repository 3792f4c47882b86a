package catalog

import (
	"strings"

	"github.com/kisaanlabs/kisaan-setu/models"
)

var schemes = []models.Scheme{
	{
		ID:               1,
		Name:             "PM-KISAN Samman Nidhi",
		Category:         "Direct Benefit Transfer",
		ShortDescription: "₹6,000 annual income support to farmer families",
		FullDescription:  "Under this scheme, all landholding farmer families receive ₹6,000 per year in three equal installments of ₹2,000 each, directly transferred to their bank accounts.",
		Benefits: []string{
			"₹6,000 per year in 3 installments",
			"Direct bank transfer",
			"No paperwork required after registration",
			"Covers all farmer families with cultivable land",
		},
		Eligibility: []string{
			"All landholding farmer families",
			"Should have cultivable land",
			"Aadhaar card mandatory",
			"Bank account linked with Aadhaar",
		},
		Documents: []string{
			"Aadhaar Card",
			"Bank Account Details",
			"Land Ownership Documents",
			"Mobile Number",
		},
		ApplyLink: "https://pmkisan.gov.in/",
		Status:    "Active",
	},
	{
		ID:               2,
		Name:             "Pradhan Mantri Fasal Bima Yojana",
		Category:         "Crop Insurance",
		ShortDescription: "Comprehensive crop insurance coverage against natural calamities",
		FullDescription:  "This scheme provides insurance coverage and financial support to farmers in the event of failure of any of the notified crop as a result of natural calamities, pests & diseases.",
		Benefits: []string{
			"Premium subsidy up to 90%",
			"Coverage for all food crops, oilseeds, annual commercial/horticultural crops",
			"Quick settlement of claims",
			"Use of technology for accurate assessment",
		},
		Eligibility: []string{
			"All farmers including sharecroppers and tenant farmers",
			"Compulsory for loanee farmers",
			"Voluntary for non-loanee farmers",
			"Must cultivate notified crops in notified areas",
		},
		Documents: []string{
			"Aadhaar Card",
			"Bank Account Details",
			"Land Records",
			"Sowing Certificate",
		},
		ApplyLink: "https://pmfby.gov.in/",
		Status:    "Active",
	},
	{
		ID:               3,
		Name:             "Kisan Credit Card (KCC)",
		Category:         "Credit Facility",
		ShortDescription: "Easy credit access for agricultural and allied activities",
		FullDescription:  "KCC provides farmers with timely access to credit for their cultivation and other needs including consumption requirements at concessional rate of interest.",
		Benefits: []string{
			"Credit up to ₹3 lakh at 7% interest",
			"No collateral required up to ₹1.6 lakh",
			"Flexible repayment based on harvest cycles",
			"Additional credit for allied activities",
		},
		Eligibility: []string{
			"All farmers including tenant farmers",
			"Minimum age 18 years, maximum 75 years",
			"Should have cultivable land",
			"Good credit history",
		},
		Documents: []string{
			"KCC Application Form",
			"Identity Proof (Aadhaar)",
			"Address Proof",
			"Land Documents",
			"Income Proof",
		},
		ApplyLink: "https://www.nabard.org/content1.aspx?id=1179",
		Status:    "Active",
	},
	{
		ID:               4,
		Name:             "PM Kisan Mandhan Yojana",
		Category:         "Pension Scheme",
		ShortDescription: "Pension scheme for small and marginal farmers",
		FullDescription:  "A voluntary and contributory pension scheme for small and marginal farmers with assured pension of ₹3,000 per month after attaining the age of 60 years.",
		Benefits: []string{
			"₹3,000 monthly pension after 60 years",
			"Family pension provision",
			"Low contribution amount",
			"Government matching contribution",
		},
		Eligibility: []string{
			"Small and marginal farmers (up to 2 hectares)",
			"Age between 18-40 years",
			"Should not be beneficiary of other pension schemes",
			"Income tax payer excluded",
		},
		Documents: []string{
			"Aadhaar Card",
			"Bank Account Details",
			"Land Records",
			"Age Proof",
		},
		ApplyLink: "https://maandhan.in/",
		Status:    "Active",
	},
	{
		ID:               5,
		Name:             "Soil Health Card Scheme",
		Category:         "Soil Testing",
		ShortDescription: "Free soil testing and health cards for farmers",
		FullDescription:  "The scheme aims to provide soil health cards to all farmers to improve soil productivity and consequently the crop yield through judicious use of fertilizers.",
		Benefits: []string{
			"Free soil testing",
			"Customized fertilizer recommendations",
			"Soil health card every 3 years",
			"Improved crop productivity",
		},
		Eligibility: []string{
			"All farmers",
			"No land size restriction",
			"Both individual and group applications accepted",
		},
		Documents: []string{
			"Aadhaar Card",
			"Land Records",
			"Contact Details",
		},
		ApplyLink: "https://soilhealth.dac.gov.in/",
		Status:    "Active",
	},
	{
		ID:               6,
		Name:             "PM-KUSUM Solar Scheme",
		Category:         "Solar Energy",
		ShortDescription: "Solar pump and grid-connected solar power for farmers",
		FullDescription:  "Scheme for installation of solar pumps and grid connected solar power plants in the country to provide energy security to farmers.",
		Benefits: []string{
			"90% subsidy on solar pumps",
			"Additional income from selling surplus power",
			"Reduced electricity bills",
			"Environment friendly",
		},
		Eligibility: []string{
			"Individual farmers",
			"FPOs, cooperatives, Panchayats",
			"Should have irrigation requirement",
			"Grid connectivity for Component-C",
		},
		Documents: []string{
			"Land ownership documents",
			"Aadhaar Card",
			"Bank Account Details",
			"Electricity Connection Details",
		},
		ApplyLink: "https://mnre.gov.in/solar/schemes/",
		Status:    "Active",
	},
}

// Schemes returns the full scheme directory in display order.
func Schemes() []models.Scheme {
	out := make([]models.Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// SchemeByID returns the scheme with the given identifier.
// The second return value reports whether it exists.
func SchemeByID(id int) (models.Scheme, bool) {
	for _, s := range schemes {
		if s.ID == id {
			return s, true
		}
	}
	return models.Scheme{}, false
}

// SchemesByCategory returns the schemes in the given category, matched
// case-insensitively. Unknown categories yield an empty slice.
func SchemesByCategory(category string) []models.Scheme {
	var out []models.Scheme
	for _, s := range schemes {
		if strings.EqualFold(s.Category, category) {
			out = append(out, s)
		}
	}
	return out
}
