package api

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// Country is an uppercase two-letter ISO 3166-1 country code as accepted by
// Stripe's shipping address collection.
type Country string

const (
	CountryAC Country = "AC"
	CountryAD Country = "AD"
	CountryAE Country = "AE"
	CountryAF Country = "AF"
	CountryAG Country = "AG"
	CountryAI Country = "AI"
	CountryAL Country = "AL"
	CountryAM Country = "AM"
	CountryAO Country = "AO"
	CountryAQ Country = "AQ"
	CountryAR Country = "AR"
	CountryAT Country = "AT"
	CountryAU Country = "AU"
	CountryAW Country = "AW"
	CountryAX Country = "AX"
	CountryAZ Country = "AZ"
	CountryBA Country = "BA"
	CountryBB Country = "BB"
	CountryBD Country = "BD"
	CountryBE Country = "BE"
	CountryBF Country = "BF"
	CountryBG Country = "BG"
	CountryBH Country = "BH"
	CountryBI Country = "BI"
	CountryBJ Country = "BJ"
	CountryBL Country = "BL"
	CountryBM Country = "BM"
	CountryBN Country = "BN"
	CountryBO Country = "BO"
	CountryBQ Country = "BQ"
	CountryBR Country = "BR"
	CountryBS Country = "BS"
	CountryBT Country = "BT"
	CountryBV Country = "BV"
	CountryBW Country = "BW"
	CountryBY Country = "BY"
	CountryBZ Country = "BZ"
	CountryCA Country = "CA"
	CountryCD Country = "CD"
	CountryCF Country = "CF"
	CountryCG Country = "CG"
	CountryCH Country = "CH"
	CountryCI Country = "CI"
	CountryCK Country = "CK"
	CountryCL Country = "CL"
	CountryCM Country = "CM"
	CountryCN Country = "CN"
	CountryCO Country = "CO"
	CountryCR Country = "CR"
	CountryCV Country = "CV"
	CountryCW Country = "CW"
	CountryCY Country = "CY"
	CountryCZ Country = "CZ"
	CountryDE Country = "DE"
	CountryDJ Country = "DJ"
	CountryDK Country = "DK"
	CountryDM Country = "DM"
	CountryDO Country = "DO"
	CountryDZ Country = "DZ"
	CountryEC Country = "EC"
	CountryEE Country = "EE"
	CountryEG Country = "EG"
	CountryEH Country = "EH"
	CountryER Country = "ER"
	CountryES Country = "ES"
	CountryET Country = "ET"
	CountryFI Country = "FI"
	CountryFJ Country = "FJ"
	CountryFK Country = "FK"
	CountryFO Country = "FO"
	CountryFR Country = "FR"
	CountryGA Country = "GA"
	CountryGB Country = "GB"
	CountryGD Country = "GD"
	CountryGE Country = "GE"
	CountryGF Country = "GF"
	CountryGG Country = "GG"
	CountryGH Country = "GH"
	CountryGI Country = "GI"
	CountryGL Country = "GL"
	CountryGM Country = "GM"
	CountryGN Country = "GN"
	CountryGP Country = "GP"
	CountryGQ Country = "GQ"
	CountryGR Country = "GR"
	CountryGS Country = "GS"
	CountryGT Country = "GT"
	CountryGU Country = "GU"
	CountryGW Country = "GW"
	CountryGY Country = "GY"
	CountryHK Country = "HK"
	CountryHN Country = "HN"
	CountryHR Country = "HR"
	CountryHT Country = "HT"
	CountryHU Country = "HU"
	CountryID Country = "ID"
	CountryIE Country = "IE"
	CountryIL Country = "IL"
	CountryIM Country = "IM"
	CountryIN Country = "IN"
	CountryIO Country = "IO"
	CountryIQ Country = "IQ"
	CountryIS Country = "IS"
	CountryIT Country = "IT"
	CountryJE Country = "JE"
	CountryJM Country = "JM"
	CountryJO Country = "JO"
	CountryJP Country = "JP"
	CountryKE Country = "KE"
	CountryKG Country = "KG"
	CountryKH Country = "KH"
	CountryKI Country = "KI"
	CountryKM Country = "KM"
	CountryKN Country = "KN"
	CountryKR Country = "KR"
	CountryKW Country = "KW"
	CountryKY Country = "KY"
	CountryKZ Country = "KZ"
	CountryLA Country = "LA"
	CountryLB Country = "LB"
	CountryLC Country = "LC"
	CountryLI Country = "LI"
	CountryLK Country = "LK"
	CountryLR Country = "LR"
	CountryLS Country = "LS"
	CountryLT Country = "LT"
	CountryLU Country = "LU"
	CountryLV Country = "LV"
	CountryLY Country = "LY"
	CountryMA Country = "MA"
	CountryMC Country = "MC"
	CountryMD Country = "MD"
	CountryME Country = "ME"
	CountryMF Country = "MF"
	CountryMG Country = "MG"
	CountryMK Country = "MK"
	CountryML Country = "ML"
	CountryMM Country = "MM"
	CountryMN Country = "MN"
	CountryMO Country = "MO"
	CountryMQ Country = "MQ"
	CountryMR Country = "MR"
	CountryMS Country = "MS"
	CountryMT Country = "MT"
	CountryMU Country = "MU"
	CountryMV Country = "MV"
	CountryMW Country = "MW"
	CountryMX Country = "MX"
	CountryMY Country = "MY"
	CountryMZ Country = "MZ"
	CountryNA Country = "NA"
	CountryNC Country = "NC"
	CountryNE Country = "NE"
	CountryNG Country = "NG"
	CountryNI Country = "NI"
	CountryNL Country = "NL"
	CountryNO Country = "NO"
	CountryNP Country = "NP"
	CountryNR Country = "NR"
	CountryNU Country = "NU"
	CountryNZ Country = "NZ"
	CountryOM Country = "OM"
	CountryPA Country = "PA"
	CountryPE Country = "PE"
	CountryPF Country = "PF"
	CountryPG Country = "PG"
	CountryPH Country = "PH"
	CountryPK Country = "PK"
	CountryPL Country = "PL"
	CountryPM Country = "PM"
	CountryPN Country = "PN"
	CountryPR Country = "PR"
	CountryPS Country = "PS"
	CountryPT Country = "PT"
	CountryPY Country = "PY"
	CountryQA Country = "QA"
	CountryRE Country = "RE"
	CountryRO Country = "RO"
	CountryRS Country = "RS"
	CountryRU Country = "RU"
	CountryRW Country = "RW"
	CountrySA Country = "SA"
	CountrySB Country = "SB"
	CountrySC Country = "SC"
	CountrySE Country = "SE"
	CountrySG Country = "SG"
	CountrySH Country = "SH"
	CountrySI Country = "SI"
	CountrySJ Country = "SJ"
	CountrySK Country = "SK"
	CountrySL Country = "SL"
	CountrySM Country = "SM"
	CountrySN Country = "SN"
	CountrySO Country = "SO"
	CountrySR Country = "SR"
	CountrySS Country = "SS"
	CountryST Country = "ST"
	CountrySV Country = "SV"
	CountrySX Country = "SX"
	CountrySZ Country = "SZ"
	CountryTA Country = "TA"
	CountryTC Country = "TC"
	CountryTD Country = "TD"
	CountryTF Country = "TF"
	CountryTG Country = "TG"
	CountryTH Country = "TH"
	CountryTJ Country = "TJ"
	CountryTK Country = "TK"
	CountryTL Country = "TL"
	CountryTM Country = "TM"
	CountryTN Country = "TN"
	CountryTO Country = "TO"
	CountryTR Country = "TR"
	CountryTT Country = "TT"
	CountryTV Country = "TV"
	CountryTW Country = "TW"
	CountryTZ Country = "TZ"
	CountryUA Country = "UA"
	CountryUG Country = "UG"
	CountryUS Country = "US"
	CountryUY Country = "UY"
	CountryUZ Country = "UZ"
	CountryVA Country = "VA"
	CountryVC Country = "VC"
	CountryVE Country = "VE"
	CountryVG Country = "VG"
	CountryVN Country = "VN"
	CountryVU Country = "VU"
	CountryWF Country = "WF"
	CountryWS Country = "WS"
	CountryXK Country = "XK"
	CountryYE Country = "YE"
	CountryYT Country = "YT"
	CountryZA Country = "ZA"
	CountryZM Country = "ZM"
	CountryZW Country = "ZW"
	CountryZZ Country = "ZZ"
)

// Countries is the codec of Country.
var Countries = enum.Open("Country",
	CountryAC,
	CountryAD,
	CountryAE,
	CountryAF,
	CountryAG,
	CountryAI,
	CountryAL,
	CountryAM,
	CountryAO,
	CountryAQ,
	CountryAR,
	CountryAT,
	CountryAU,
	CountryAW,
	CountryAX,
	CountryAZ,
	CountryBA,
	CountryBB,
	CountryBD,
	CountryBE,
	CountryBF,
	CountryBG,
	CountryBH,
	CountryBI,
	CountryBJ,
	CountryBL,
	CountryBM,
	CountryBN,
	CountryBO,
	CountryBQ,
	CountryBR,
	CountryBS,
	CountryBT,
	CountryBV,
	CountryBW,
	CountryBY,
	CountryBZ,
	CountryCA,
	CountryCD,
	CountryCF,
	CountryCG,
	CountryCH,
	CountryCI,
	CountryCK,
	CountryCL,
	CountryCM,
	CountryCN,
	CountryCO,
	CountryCR,
	CountryCV,
	CountryCW,
	CountryCY,
	CountryCZ,
	CountryDE,
	CountryDJ,
	CountryDK,
	CountryDM,
	CountryDO,
	CountryDZ,
	CountryEC,
	CountryEE,
	CountryEG,
	CountryEH,
	CountryER,
	CountryES,
	CountryET,
	CountryFI,
	CountryFJ,
	CountryFK,
	CountryFO,
	CountryFR,
	CountryGA,
	CountryGB,
	CountryGD,
	CountryGE,
	CountryGF,
	CountryGG,
	CountryGH,
	CountryGI,
	CountryGL,
	CountryGM,
	CountryGN,
	CountryGP,
	CountryGQ,
	CountryGR,
	CountryGS,
	CountryGT,
	CountryGU,
	CountryGW,
	CountryGY,
	CountryHK,
	CountryHN,
	CountryHR,
	CountryHT,
	CountryHU,
	CountryID,
	CountryIE,
	CountryIL,
	CountryIM,
	CountryIN,
	CountryIO,
	CountryIQ,
	CountryIS,
	CountryIT,
	CountryJE,
	CountryJM,
	CountryJO,
	CountryJP,
	CountryKE,
	CountryKG,
	CountryKH,
	CountryKI,
	CountryKM,
	CountryKN,
	CountryKR,
	CountryKW,
	CountryKY,
	CountryKZ,
	CountryLA,
	CountryLB,
	CountryLC,
	CountryLI,
	CountryLK,
	CountryLR,
	CountryLS,
	CountryLT,
	CountryLU,
	CountryLV,
	CountryLY,
	CountryMA,
	CountryMC,
	CountryMD,
	CountryME,
	CountryMF,
	CountryMG,
	CountryMK,
	CountryML,
	CountryMM,
	CountryMN,
	CountryMO,
	CountryMQ,
	CountryMR,
	CountryMS,
	CountryMT,
	CountryMU,
	CountryMV,
	CountryMW,
	CountryMX,
	CountryMY,
	CountryMZ,
	CountryNA,
	CountryNC,
	CountryNE,
	CountryNG,
	CountryNI,
	CountryNL,
	CountryNO,
	CountryNP,
	CountryNR,
	CountryNU,
	CountryNZ,
	CountryOM,
	CountryPA,
	CountryPE,
	CountryPF,
	CountryPG,
	CountryPH,
	CountryPK,
	CountryPL,
	CountryPM,
	CountryPN,
	CountryPR,
	CountryPS,
	CountryPT,
	CountryPY,
	CountryQA,
	CountryRE,
	CountryRO,
	CountryRS,
	CountryRU,
	CountryRW,
	CountrySA,
	CountrySB,
	CountrySC,
	CountrySE,
	CountrySG,
	CountrySH,
	CountrySI,
	CountrySJ,
	CountrySK,
	CountrySL,
	CountrySM,
	CountrySN,
	CountrySO,
	CountrySR,
	CountrySS,
	CountryST,
	CountrySV,
	CountrySX,
	CountrySZ,
	CountryTA,
	CountryTC,
	CountryTD,
	CountryTF,
	CountryTG,
	CountryTH,
	CountryTJ,
	CountryTK,
	CountryTL,
	CountryTM,
	CountryTN,
	CountryTO,
	CountryTR,
	CountryTT,
	CountryTV,
	CountryTW,
	CountryTZ,
	CountryUA,
	CountryUG,
	CountryUS,
	CountryUY,
	CountryUZ,
	CountryVA,
	CountryVC,
	CountryVE,
	CountryVG,
	CountryVN,
	CountryVU,
	CountryWF,
	CountryWS,
	CountryXK,
	CountryYE,
	CountryYT,
	CountryZA,
	CountryZM,
	CountryZW,
	CountryZZ,
)
