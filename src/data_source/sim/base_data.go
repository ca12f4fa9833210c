package sim

// Base prices for simulated quotes. Symbols without an entry start at 100.
var basePrices = map[string]float64{
	// US
	"AAPL": 225.40, "MSFT": 415.60, "GOOGL": 175.30, "AMZN": 185.20,
	"NVDA": 875.50, "TSLA": 248.90, "META": 520.80, "AVGO": 1650.30,
	"AMD": 142.80, "CRM": 285.40,
	// CA
	"SHOP.TO": 85.20, "CNR.TO": 165.40, "RY.TO": 145.80, "TD.TO": 78.90,
	"BNS.TO": 72.30, "BMO.TO": 135.60, "ENB.TO": 58.40, "TRI.TO": 195.20,
	"WCN.TO": 185.70, "CP.TO": 108.50,
	// GB
	"SHEL.L": 28.50, "AZN.L": 125.40, "LSEG.L": 95.80, "UU.L": 10.25,
	"ULVR.L": 45.60, "VOD.L": 0.75, "BP.L": 4.85, "HSBA.L": 6.95,
	"GSK.L": 15.80,
}

// -----------------------------------------------------------------------------

// Plain-language company descriptions, shown in the dashboard's "why" column.
var companyBlurbs = map[string]string{
	"AAPL":  "Apple - iPhones, iPads, Mac computers",
	"MSFT":  "Microsoft - Windows, Office, Xbox, cloud",
	"GOOGL": "Google - Search, YouTube, Android",
	"AMZN":  "Amazon - Online shopping + AWS cloud",
	"NVDA":  "NVIDIA - AI chips that power ChatGPT",
	"TSLA":  "Tesla - Electric cars and solar panels",
	"META":  "Meta - Facebook, Instagram, WhatsApp, VR",
	"AVGO":  "Broadcom - Chips for phones, WiFi, AI servers",
	"AMD":   "AMD - Computer chips, competes with Intel/NVIDIA",
	"CRM":   "Salesforce - Business customer software",

	"SHOP.TO": "Shopify - E-commerce platform for businesses",
	"CNR.TO":  "Canadian National Railway - Freight transportation",
	"RY.TO":   "Royal Bank of Canada - Major Canadian bank",
	"TD.TO":   "TD Bank - Banking and financial services",
	"BNS.TO":  "Bank of Nova Scotia - International banking",
	"BMO.TO":  "Bank of Montreal - Banking services",
	"ENB.TO":  "Enbridge - Oil and gas pipeline company",
	"TRI.TO":  "Thomson Reuters - News and information services",
	"WCN.TO":  "Waste Connections - Waste management services",
	"CP.TO":   "Canadian Pacific Railway - Transportation",

	"SHEL.L": "Shell - Oil and gas energy company",
	"AZN.L":  "AstraZeneca - Pharmaceutical company",
	"LSEG.L": "London Stock Exchange Group - Financial markets",
	"UU.L":   "United Utilities - Water and wastewater services",
	"ULVR.L": "Unilever - Consumer goods (soap, food)",
	"VOD.L":  "Vodafone - Mobile telecommunications",
	"BP.L":   "BP - British oil and gas company",
	"HSBA.L": "HSBC - International banking",
	"GSK.L":  "GlaxoSmithKline - Pharmaceutical company",
}
