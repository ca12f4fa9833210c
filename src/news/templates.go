package news

import "market-watch/src/models"

// Headline pools per market. Markets without a dedicated pool share the
// global set, which covers cross-market themes like AI chips and rates.
func marketTemplates(countryCode string) []models.MNewsItem {
	switch countryCode {
	case "US":
		return usNews
	case "CA":
		return caNews
	case "GB":
		return gbNews
	default:
		return globalNews
	}
}

// -----------------------------------------------------------------------------

var usNews = []models.MNewsItem{
	{
		Headline:    "AI chip demand drives semiconductor rally",
		Explanation: "Artificial intelligence boom continues to fuel demand for advanced processors",
		Impact:      map[string]models.Direction{"NVDA": models.ImpactUp, "AMD": models.ImpactUp},
	},
	{
		Headline:    "OpenAI partners with Broadcom for custom AI chips",
		Explanation: "Broadcom will make specialized chips for OpenAI, reducing NVIDIA dependence",
		Impact:      map[string]models.Direction{"AVGO": models.ImpactUp, "NVDA": models.ImpactDown},
	},
	{
		Headline:    "Federal Reserve signals potential rate adjustments",
		Explanation: "Central bank maintains cautious stance on monetary policy amid economic data",
		Impact:      map[string]models.Direction{"AAPL": models.ImpactDown, "MSFT": models.ImpactDown},
	},
	{
		Headline:    "Apple announces record iPhone sales",
		Explanation: "Strong consumer demand despite economic concerns",
		Impact:      map[string]models.Direction{"AAPL": models.ImpactUp},
	},
	{
		Headline:    "Tech earnings season shows mixed results",
		Explanation: "Major technology companies report varied quarterly performance",
		Impact:      map[string]models.Direction{"GOOGL": models.ImpactUp, "META": models.ImpactDown},
	},
	{
		Headline:    "Tesla Autopilot gets safety approval",
		Explanation: "Self-driving cars closer to reality, Tesla leading",
		Impact:      map[string]models.Direction{"TSLA": models.ImpactUp},
	},
	{
		Headline:    "Cloud computing growth accelerates",
		Explanation: "Enterprise digital transformation drives cloud service adoption",
		Impact: map[string]models.Direction{
			"MSFT": models.ImpactUp, "AMZN": models.ImpactUp, "GOOGL": models.ImpactUp,
		},
	},
	{
		Headline:    "Meta VR headset sales exceed expectations",
		Explanation: "Virtual reality gaining mainstream adoption",
		Impact:      map[string]models.Direction{"META": models.ImpactUp},
	},
}

// -----------------------------------------------------------------------------

var caNews = []models.MNewsItem{
	{
		Headline:    "Shopify expands into European markets",
		Explanation: "E-commerce platform gaining international traction",
		Impact:      map[string]models.Direction{"SHOP.TO": models.ImpactUp},
	},
	{
		Headline:    "Canadian banks report strong quarterly results",
		Explanation: "Interest rate environment boosting bank profits",
		Impact: map[string]models.Direction{
			"RY.TO": models.ImpactUp, "TD.TO": models.ImpactUp, "BNS.TO": models.ImpactUp,
		},
	},
	{
		Headline:    "Oil pipeline expansion approved",
		Explanation: "Enbridge gets regulatory approval for new pipeline",
		Impact:      map[string]models.Direction{"ENB.TO": models.ImpactUp},
	},
	{
		Headline:    "Rail freight volumes climb on grain exports",
		Explanation: "Strong harvest season lifting shipping demand",
		Impact:      map[string]models.Direction{"CNR.TO": models.ImpactUp, "CP.TO": models.ImpactUp},
	},
}

// -----------------------------------------------------------------------------

var gbNews = []models.MNewsItem{
	{
		Headline:    "Shell reports record quarterly profits",
		Explanation: "Oil prices boost energy company revenues",
		Impact:      map[string]models.Direction{"SHEL.L": models.ImpactUp, "BP.L": models.ImpactUp},
	},
	{
		Headline:    "AstraZeneca drug trial shows promising results",
		Explanation: "New cancer treatment could boost pharmaceutical revenues",
		Impact:      map[string]models.Direction{"AZN.L": models.ImpactUp, "GSK.L": models.ImpactUp},
	},
	{
		Headline:    "London Stock Exchange sees increased trading volume",
		Explanation: "Market volatility driving higher transaction fees",
		Impact:      map[string]models.Direction{"LSEG.L": models.ImpactUp},
	},
	{
		Headline:    "UK utilities face regulatory pressure",
		Explanation: "Government considering price caps on water companies",
		Impact:      map[string]models.Direction{"UU.L": models.ImpactDown},
	},
}

// -----------------------------------------------------------------------------

var globalNews = []models.MNewsItem{
	{
		Headline:    "Global supply chain disruptions continue",
		Explanation: "International trade challenges affect multiple sectors",
	},
	{
		Headline:    "Energy sector rebounds on supply concerns",
		Explanation: "Geopolitical tensions and supply chain issues boost oil prices",
	},
	{
		Headline:    "Inflation data comes in below expectations",
		Explanation: "Cooling prices raise hopes for looser monetary policy",
	},
}
