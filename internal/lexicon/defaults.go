package lexicon

// Default returns the built-in Dutch lexicon
func Default() *Lexicon {
	return &Lexicon{
		ExactDescriptions:   append([]string(nil), exactDescriptions...),
		PartialDescriptions: append([]string(nil), partialDescriptions...),
		ExcludedCategories:  append([]string(nil), excludedCategories...),
		Demonyms:            append([]string(nil), demonyms...),
		Countries:           append([]string(nil), countries...),
	}
}

// Non-informative descriptions, matched case-sensitively
var exactDescriptions = []string{
	"Wikimedia-lijst",
	"gemeenschappelijk project om een \u200b\u200bmeertalig woordenboek te maken",
	"Wikimedia-doorverwijspagina",
	"algemeen",
	"Nederland",
	"jaar",
	"rivier",
	"gemeente",
	"nummer",
	"stad",
	"regio",
	"provincie",
	"historisch land",
	"streek",
	"gebied",
	"taxon",
	"kalenderjaar",
	"decennium",
	"Londen",
}

// Over-specific phrasing, matched against lower(description) + "."
var partialDescriptions = []string{
	"soort uit ",
	"buurtschap ",
	"gemeente ",
	"schip uit ",
	"geslacht uit ",
	"familie uit ",
	"stad in ",
	"provincie van ",
	"provincie in ",
	"plein in ",
	"boek van ",
	"eiland van ",
	"straat in ",
	"geslacht van ",
	"plaats in ",
	"gebouw in ",
	"stadsdeel in ",
	"land in ",
	"park in ",
	"hoofdstad van ",
	"museum in ",
	"familie van ",
	"orde van ",
	"deelstaat van ",
	"district van ",
	"wijk in ",
	"regio in ",
	"buurt in ",
	"regio van ",
	"SI-prefix ",
	"kanaal in ",
	"streek in ",
	"departement in ",
	"staat in ",
	"haven in ",
	"gebied in ",
	"meer in ",
	"rivier in ",
	"staat van ",
	"gebied van ",
	"woonbuurt in ",
	"metrolijn in ",
	"heuvel in ",
	"windmolen in ",
	"bouwwerk in ",
	"politieke partij uit ",
	"wijk van ",
	"beek in ",
	"dierentuin in ",
	"politieke partij in ",
	"taal.",
	"familienaam",
}

// Category name fragments (albums, films, places, municipalities, counties, districts, parishes)
var excludedCategories = []string{
	"Muziekalbum ",
	"Film ",
	"Plaats ",
	"Gemeente ",
	"County ",
	"Wijk ",
	"Parochie ",
}

var demonyms = []string{
	"nederlands",
	"belgisch",
	"duits",
	"amerikaans",
	"portugees",
	"indiaas",
	"brits",
	"spaans",
	"frans",
	"turks",
	"mexicaans",
	"vlaams",
	"italiaans",
	"deens",
	"zweeds",
	"hongaars",
	"engels",
	"fries",
	"zuid-afrikaans",
	"braziliaans",
	"canadees",
	"iraans",
	"oostenrijks",
	"luxemburgs",
	"surinaams",
	"russisch",
	"iers",
	"zwitsers",
	"romeins",
	"portuges",
	"ivoriaans",
	"kazachstaans",
}

// Dutch country names as they appear in Wikidata descriptions ("... uit Frankrijk")
var countries = []string{
	"Afghanistan", "Albanië", "Algerije", "Andorra", "Angola", "Argentinië", "Armenië",
	"Australië", "Azerbeidzjan", "Bahrein", "Bangladesh", "Barbados", "België", "Belize",
	"Benin", "Bhutan", "Bolivia", "Bosnië", "Botswana", "Brazilië", "Brunei", "Bulgarije",
	"Burundi", "Cambodja", "Canada", "Chili", "China", "Colombia", "Congo", "Cuba", "Cyprus",
	"Denemarken", "Djibouti", "Dominica", "Duitsland", "Ecuador", "Egypte", "Engeland",
	"Eritrea", "Estland", "Ethiopië", "Fiji", "Filipijnen", "Finland", "Frankrijk", "Gabon",
	"Gambia", "Georgië", "Ghana", "Griekenland", "Guatemala", "Guinee", "Guyana", "Haïti",
	"Honduras", "Hongarije", "Ierland", "IJsland", "India", "Indonesië", "Irak", "Iran",
	"Israël", "Italië", "Ivoorkust", "Jamaica", "Japan", "Jemen", "Jordanië", "Kaapverdië",
	"Kameroen", "Kazachstan", "Kenia", "Kirgizië", "Koeweit", "Kosovo", "Kroatië", "Laos",
	"Lesotho", "Letland", "Libanon", "Liberia", "Libië", "Liechtenstein", "Litouwen",
	"Luxemburg", "Madagaskar", "Malawi", "Maleisië", "Mali", "Malta", "Marokko",
	"Mauritanië", "Mauritius", "Mexico", "Moldavië", "Monaco", "Mongolië", "Montenegro",
	"Mozambique", "Myanmar", "Namibië", "Nederland", "Nepal", "Nicaragua", "Niger",
	"Nigeria", "Noord-Korea", "Noord-Macedonië", "Noorwegen", "Oeganda", "Oekraïne",
	"Oezbekistan", "Oman", "Oostenrijk", "Pakistan", "Panama", "Paraguay", "Peru", "Polen",
	"Portugal", "Qatar", "Roemenië", "Rusland", "Rwanda", "Schotland", "Senegal", "Servië",
	"Sierra", "Singapore", "Slovenië", "Slowakije", "Soedan", "Somalië", "Spanje",
	"Sri", "Suriname", "Syrië", "Tadzjikistan", "Taiwan", "Tanzania", "Thailand", "Togo",
	"Tsjaad", "Tsjechië", "Tunesië", "Turkije", "Turkmenistan", "Uruguay", "Venezuela",
	"Verenigd", "Vietnam", "Wales", "Wit-Rusland", "Zambia", "Zimbabwe", "Zuid-Afrika",
	"Zuid-Korea", "Zweden", "Zwitserland",
}
