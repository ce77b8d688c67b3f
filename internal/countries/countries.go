// Package countries holds the static ISO-3166 code to display-name table
// served to the intake form and used to fill contact addresses.
package countries

import "kleos-intake/internal/models"

// All lists every known country in the order the intake form shows them.
var All = []models.Country{
	{Code: "AF", Name: "Afghanistan"},
	{Code: "AL", Name: "Albanie"},
	{Code: "DZ", Name: "Algérie"},
	{Code: "AS", Name: "Samoa américaines"},
	{Code: "AD", Name: "Andorre"},
	{Code: "AO", Name: "Angola"},
	{Code: "AI", Name: "Anguilla"},
	{Code: "AQ", Name: "Antarctique"},
	{Code: "AG", Name: "Antigua-et-Barbuda"},
	{Code: "AR", Name: "Argentine"},
	{Code: "AM", Name: "Arménie"},
	{Code: "AW", Name: "Aruba"},
	{Code: "AU", Name: "Australie"},
	{Code: "AT", Name: "Autriche"},
	{Code: "AZ", Name: "Azerbaïdjan"},
	{Code: "BS", Name: "Bahamas"},
	{Code: "BH", Name: "Bahreïn"},
	{Code: "BD", Name: "Bangladesh"},
	{Code: "BB", Name: "Barbade"},
	{Code: "BY", Name: "Biélorussie"},
	{Code: "BE", Name: "Belgique"},
	{Code: "BZ", Name: "Belize"},
	{Code: "BJ", Name: "Bénin"},
	{Code: "BM", Name: "Bermudes"},
	{Code: "BT", Name: "Bhoutan"},
	{Code: "BO", Name: "Bolivie"},
	{Code: "BA", Name: "Bosnie-Herzégovine"},
	{Code: "BW", Name: "Botswana"},
	{Code: "BR", Name: "Brésil"},
	{Code: "BN", Name: "Brunei"},
	{Code: "BG", Name: "Bulgarie"},
	{Code: "BF", Name: "Burkina Faso"},
	{Code: "BI", Name: "Burundi"},
	{Code: "CV", Name: "Cap-Vert"},
	{Code: "KH", Name: "Cambodge"},
	{Code: "CM", Name: "Cameroun"},
	{Code: "CA", Name: "Canada"},
	{Code: "KY", Name: "Îles Caïmans"},
	{Code: "CF", Name: "République centrafricaine"},
	{Code: "TD", Name: "Tchad"},
	{Code: "CL", Name: "Chili"},
	{Code: "CN", Name: "Chine"},
	{Code: "CX", Name: "Île Christmas"},
	{Code: "CC", Name: "Îles Cocos"},
	{Code: "CO", Name: "Colombie"},
	{Code: "KM", Name: "Comores"},
	{Code: "CG", Name: "Congo"},
	{Code: "CD", Name: "République démocratique du Congo"},
	{Code: "CK", Name: "Îles Cook"},
	{Code: "CR", Name: "Costa Rica"},
	{Code: "CI", Name: "Côte d’Ivoire"},
	{Code: "HR", Name: "Croatie"},
	{Code: "CU", Name: "Cuba"},
	{Code: "CY", Name: "Chypre"},
	{Code: "CZ", Name: "République tchèque"},
	{Code: "DK", Name: "Danemark"},
	{Code: "DJ", Name: "Djibouti"},
	{Code: "DM", Name: "Dominique"},
	{Code: "DO", Name: "République dominicaine"},
	{Code: "EC", Name: "Équateur"},
	{Code: "EG", Name: "Égypte"},
	{Code: "SV", Name: "Salvador"},
	{Code: "GQ", Name: "Guinée équatoriale"},
	{Code: "ER", Name: "Érythrée"},
	{Code: "EE", Name: "Estonie"},
	{Code: "SZ", Name: "Eswatini"},
	{Code: "ET", Name: "Éthiopie"},
	{Code: "FK", Name: "Îles Falkland"},
	{Code: "FO", Name: "Îles Féroé"},
	{Code: "FJ", Name: "Fidji"},
	{Code: "FI", Name: "Finlande"},
	{Code: "FR", Name: "France"},
	{Code: "GF", Name: "Guyane française"},
	{Code: "PF", Name: "Polynésie française"},
	{Code: "TF", Name: "Terres australes françaises"},
	{Code: "GA", Name: "Gabon"},
	{Code: "GM", Name: "Gambie"},
	{Code: "GE", Name: "Géorgie"},
	{Code: "DE", Name: "Allemagne"},
	{Code: "GH", Name: "Ghana"},
	{Code: "GI", Name: "Gibraltar"},
	{Code: "GR", Name: "Grèce"},
	{Code: "GL", Name: "Groenland"},
	{Code: "GD", Name: "Grenade"},
	{Code: "GP", Name: "Guadeloupe"},
	{Code: "GU", Name: "Guam"},
	{Code: "GT", Name: "Guatemala"},
	{Code: "GG", Name: "Guernesey"},
	{Code: "GN", Name: "Guinée"},
	{Code: "GW", Name: "Guinée-Bissau"},
	{Code: "GY", Name: "Guyana"},
	{Code: "HT", Name: "Haïti"},
	{Code: "HN", Name: "Honduras"},
	{Code: "HK", Name: "Hong Kong"},
	{Code: "HU", Name: "Hongrie"},
	{Code: "IS", Name: "Islande"},
	{Code: "IN", Name: "Inde"},
	{Code: "ID", Name: "Indonésie"},
	{Code: "IR", Name: "Iran"},
	{Code: "IQ", Name: "Irak"},
	{Code: "IE", Name: "Irlande"},
	{Code: "IM", Name: "Île de Man"},
	{Code: "IL", Name: "Israël"},
	{Code: "IT", Name: "Italie"},
	{Code: "JM", Name: "Jamaïque"},
	{Code: "JP", Name: "Japon"},
	{Code: "JE", Name: "Jersey"},
	{Code: "JO", Name: "Jordanie"},
	{Code: "KZ", Name: "Kazakhstan"},
	{Code: "KE", Name: "Kenya"},
	{Code: "KI", Name: "Kiribati"},
	{Code: "KW", Name: "Koweït"},
	{Code: "KG", Name: "Kirghizistan"},
	{Code: "LA", Name: "Laos"},
	{Code: "LV", Name: "Lettonie"},
	{Code: "LB", Name: "Liban"},
	{Code: "LS", Name: "Lesotho"},
	{Code: "LR", Name: "Libéria"},
	{Code: "LY", Name: "Libye"},
	{Code: "LI", Name: "Liechtenstein"},
	{Code: "LT", Name: "Lituanie"},
	{Code: "LU", Name: "Luxembourg"},
	{Code: "MO", Name: "Macao"},
	{Code: "MG", Name: "Madagascar"},
	{Code: "MW", Name: "Malawi"},
	{Code: "MY", Name: "Malaisie"},
	{Code: "MV", Name: "Maldives"},
	{Code: "ML", Name: "Mali"},
	{Code: "MT", Name: "Malte"},
	{Code: "MH", Name: "Îles Marshall"},
	{Code: "MQ", Name: "Martinique"},
	{Code: "MR", Name: "Mauritanie"},
	{Code: "MU", Name: "Maurice"},
	{Code: "YT", Name: "Mayotte"},
	{Code: "MX", Name: "Mexique"},
	{Code: "FM", Name: "Micronésie"},
	{Code: "MD", Name: "Moldavie"},
	{Code: "MC", Name: "Monaco"},
	{Code: "MN", Name: "Mongolie"},
	{Code: "ME", Name: "Monténégro"},
	{Code: "MS", Name: "Montserrat"},
	{Code: "MA", Name: "Maroc"},
	{Code: "MZ", Name: "Mozambique"},
	{Code: "MM", Name: "Myanmar"},
	{Code: "NA", Name: "Namibie"},
	{Code: "NR", Name: "Nauru"},
	{Code: "NP", Name: "Népal"},
	{Code: "NL", Name: "Pays-Bas"},
	{Code: "NC", Name: "Nouvelle-Calédonie"},
	{Code: "NZ", Name: "Nouvelle-Zélande"},
	{Code: "NI", Name: "Nicaragua"},
	{Code: "NE", Name: "Niger"},
	{Code: "NG", Name: "Nigeria"},
	{Code: "NU", Name: "Niue"},
	{Code: "NF", Name: "Île Norfolk"},
	{Code: "KP", Name: "Corée du Nord"},
	{Code: "MK", Name: "Macédoine du Nord"},
	{Code: "MP", Name: "Îles Mariannes du Nord"},
	{Code: "NO", Name: "Norvège"},
	{Code: "OM", Name: "Oman"},
	{Code: "PK", Name: "Pakistan"},
	{Code: "PW", Name: "Palaos"},
	{Code: "PS", Name: "Palestine"},
	{Code: "PA", Name: "Panama"},
	{Code: "PG", Name: "Papouasie-Nouvelle-Guinée"},
	{Code: "PY", Name: "Paraguay"},
	{Code: "PE", Name: "Pérou"},
	{Code: "PH", Name: "Philippines"},
	{Code: "PL", Name: "Pologne"},
	{Code: "PT", Name: "Portugal"},
	{Code: "PR", Name: "Porto Rico"},
	{Code: "QA", Name: "Qatar"},
	{Code: "RE", Name: "Réunion"},
	{Code: "RO", Name: "Roumanie"},
	{Code: "RU", Name: "Russie"},
	{Code: "RW", Name: "Rwanda"},
	{Code: "BL", Name: "Saint-Barthélemy"},
	{Code: "SH", Name: "Sainte-Hélène"},
	{Code: "KN", Name: "Saint-Kitts-et-Nevis"},
	{Code: "LC", Name: "Sainte-Lucie"},
	{Code: "MF", Name: "Saint-Martin"},
	{Code: "PM", Name: "Saint-Pierre-et-Miquelon"},
	{Code: "VC", Name: "Saint-Vincent-et-les-Grenadines"},
	{Code: "WS", Name: "Samoa"},
	{Code: "SM", Name: "Saint-Marin"},
	{Code: "ST", Name: "Sao Tomé-et-Principe"},
	{Code: "SA", Name: "Arabie Saoudite"},
	{Code: "SN", Name: "Sénégal"},
	{Code: "RS", Name: "Serbie"},
	{Code: "SC", Name: "Seychelles"},
	{Code: "SL", Name: "Sierra Leone"},
	{Code: "SG", Name: "Singapour"},
	{Code: "SX", Name: "Saint-Martin (Pays-Bas)"},
	{Code: "SK", Name: "Slovaquie"},
	{Code: "SI", Name: "Slovénie"},
	{Code: "SB", Name: "Îles Salomon"},
	{Code: "SO", Name: "Somalie"},
	{Code: "ZA", Name: "Afrique du Sud"},
	{Code: "KR", Name: "Corée du Sud"},
	{Code: "SS", Name: "Soudan du Sud"},
	{Code: "ES", Name: "Espagne"},
	{Code: "LK", Name: "Sri Lanka"},
	{Code: "SD", Name: "Soudan"},
	{Code: "SR", Name: "Suriname"},
	{Code: "SJ", Name: "Svalbard et Jan Mayen"},
	{Code: "SE", Name: "Suède"},
	{Code: "CH", Name: "Suisse"},
	{Code: "SY", Name: "Syrie"},
	{Code: "TW", Name: "Taïwan"},
	{Code: "TJ", Name: "Tadjikistan"},
	{Code: "TZ", Name: "Tanzanie"},
	{Code: "TH", Name: "Thaïlande"},
	{Code: "TL", Name: "Timor-Leste"},
	{Code: "TG", Name: "Togo"},
	{Code: "TK", Name: "Tokelau"},
	{Code: "TO", Name: "Tonga"},
	{Code: "TT", Name: "Trinité-et-Tobago"},
	{Code: "TN", Name: "Tunisie"},
	{Code: "TR", Name: "Turquie"},
	{Code: "TM", Name: "Turkménistan"},
	{Code: "TC", Name: "Îles Turks-et-Caïcos"},
	{Code: "TV", Name: "Tuvalu"},
	{Code: "UG", Name: "Ouganda"},
	{Code: "UA", Name: "Ukraine"},
	{Code: "AE", Name: "Émirats arabes unis"},
	{Code: "GB", Name: "Royaume-Uni"},
	{Code: "US", Name: "États-Unis"},
	{Code: "UY", Name: "Uruguay"},
	{Code: "UZ", Name: "Ouzbékistan"},
	{Code: "VU", Name: "Vanuatu"},
	{Code: "VA", Name: "Vatican"},
	{Code: "VE", Name: "Venezuela"},
	{Code: "VN", Name: "Viêt Nam"},
	{Code: "WF", Name: "Wallis-et-Futuna"},
	{Code: "EH", Name: "Sahara occidental"},
	{Code: "YE", Name: "Yémen"},
	{Code: "ZM", Name: "Zambie"},
	{Code: "ZW", Name: "Zimbabwe"},
}

var byCode = func() map[string]string {
	m := make(map[string]string, len(All))
	for _, c := range All {
		m[c.Code] = c.Name
	}
	return m
}()

// Resolve returns the display name for an ISO code. Unknown codes pass
// through unchanged so the remote system still receives something usable.
func Resolve(code string) string {
	if name, ok := byCode[code]; ok {
		return name
	}
	return code
}
