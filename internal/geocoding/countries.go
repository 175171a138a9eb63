package geocoding

// countryNames maps ISO country codes to the names shown to users
var countryNames = map[string]string{
	"US": "United States",
	"CA": "Canada",
	"GB": "United Kingdom",
	"FR": "France",
	"DE": "Germany",
	"JP": "Japan",
	"KR": "South Korea",
	"CN": "China",
	"IN": "India",
	"AU": "Australia",
	"BR": "Brazil",
	"MX": "Mexico",
	"ES": "Spain",
	"IT": "Italy",
	"NL": "Netherlands",
	"PA": "Panama",
	"CO": "Colombia",
	"SY": "Syria",
	"PK": "Pakistan",
	"RU": "Russia",
	"UA": "Ukraine",
	"PL": "Poland",
	"TR": "Turkey",
	"EG": "Egypt",
	"SA": "Saudi Arabia",
	"AE": "United Arab Emirates",
	"IL": "Israel",
	"IR": "Iran",
	"IQ": "Iraq",
	"JO": "Jordan",
	"LB": "Lebanon",
	"SG": "Singapore",
	"TH": "Thailand",
	"VN": "Vietnam",
	"MY": "Malaysia",
	"ID": "Indonesia",
	"PH": "Philippines",
	"BD": "Bangladesh",
	"LK": "Sri Lanka",
	"NP": "Nepal",
	"MM": "Myanmar",
	"KH": "Cambodia",
	"LA": "Laos",
	"MN": "Mongolia",
	"KZ": "Kazakhstan",
	"UZ": "Uzbekistan",
	"KG": "Kyrgyzstan",
	"TJ": "Tajikistan",
	"TM": "Turkmenistan",
	"AF": "Afghanistan",
	"ZA": "South Africa",
	"NG": "Nigeria",
	"KE": "Kenya",
	"ET": "Ethiopia",
	"GH": "Ghana",
	"TZ": "Tanzania",
	"UG": "Uganda",
	"MA": "Morocco",
	"DZ": "Algeria",
	"TN": "Tunisia",
	"LY": "Libya",
	"SD": "Sudan",
	"AR": "Argentina",
	"CL": "Chile",
	"PE": "Peru",
	"VE": "Venezuela",
	"UY": "Uruguay",
	"PY": "Paraguay",
	"BO": "Bolivia",
	"EC": "Ecuador",
	"CR": "Costa Rica",
	"GT": "Guatemala",
	"HN": "Honduras",
	"NI": "Nicaragua",
	"SV": "El Salvador",
	"BZ": "Belize",
	"CU": "Cuba",
	"JM": "Jamaica",
	"HT": "Haiti",
	"DO": "Dominican Republic",
	"PR": "Puerto Rico",
	"TT": "Trinidad and Tobago",
}

// CountryName returns the full country name for code, or code itself when unknown
func CountryName(code string) string {
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}
