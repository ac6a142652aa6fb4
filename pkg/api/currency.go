package api

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// Currency is a lowercase three-letter ISO 4217 currency code supported by
// Stripe. Codes added by Stripe after this list decode as Unknown values.
type Currency string

const (
	CurrencyAED  Currency = "aed"
	CurrencyAFN  Currency = "afn"
	CurrencyALL  Currency = "all"
	CurrencyAMD  Currency = "amd"
	CurrencyANG  Currency = "ang"
	CurrencyAOA  Currency = "aoa"
	CurrencyARS  Currency = "ars"
	CurrencyAUD  Currency = "aud"
	CurrencyAWG  Currency = "awg"
	CurrencyAZN  Currency = "azn"
	CurrencyBAM  Currency = "bam"
	CurrencyBBD  Currency = "bbd"
	CurrencyBDT  Currency = "bdt"
	CurrencyBGN  Currency = "bgn"
	CurrencyBHD  Currency = "bhd"
	CurrencyBIF  Currency = "bif"
	CurrencyBMD  Currency = "bmd"
	CurrencyBND  Currency = "bnd"
	CurrencyBOB  Currency = "bob"
	CurrencyBRL  Currency = "brl"
	CurrencyBSD  Currency = "bsd"
	CurrencyBTN  Currency = "btn"
	CurrencyBWP  Currency = "bwp"
	CurrencyBYN  Currency = "byn"
	CurrencyBYR  Currency = "byr"
	CurrencyBZD  Currency = "bzd"
	CurrencyCAD  Currency = "cad"
	CurrencyCDF  Currency = "cdf"
	CurrencyCHF  Currency = "chf"
	CurrencyCLP  Currency = "clp"
	CurrencyCNY  Currency = "cny"
	CurrencyCOP  Currency = "cop"
	CurrencyCRC  Currency = "crc"
	CurrencyCUC  Currency = "cuc"
	CurrencyCUP  Currency = "cup"
	CurrencyCVE  Currency = "cve"
	CurrencyCZK  Currency = "czk"
	CurrencyDJF  Currency = "djf"
	CurrencyDKK  Currency = "dkk"
	CurrencyDOP  Currency = "dop"
	CurrencyDZD  Currency = "dzd"
	CurrencyEEK  Currency = "eek"
	CurrencyEGP  Currency = "egp"
	CurrencyERN  Currency = "ern"
	CurrencyETB  Currency = "etb"
	CurrencyEUR  Currency = "eur"
	CurrencyFJD  Currency = "fjd"
	CurrencyFKP  Currency = "fkp"
	CurrencyGBP  Currency = "gbp"
	CurrencyGEL  Currency = "gel"
	CurrencyGHS  Currency = "ghs"
	CurrencyGIP  Currency = "gip"
	CurrencyGMD  Currency = "gmd"
	CurrencyGNF  Currency = "gnf"
	CurrencyGTQ  Currency = "gtq"
	CurrencyGYD  Currency = "gyd"
	CurrencyHKD  Currency = "hkd"
	CurrencyHNL  Currency = "hnl"
	CurrencyHRK  Currency = "hrk"
	CurrencyHTG  Currency = "htg"
	CurrencyHUF  Currency = "huf"
	CurrencyIDR  Currency = "idr"
	CurrencyILS  Currency = "ils"
	CurrencyINR  Currency = "inr"
	CurrencyIQD  Currency = "iqd"
	CurrencyIRR  Currency = "irr"
	CurrencyISK  Currency = "isk"
	CurrencyJMD  Currency = "jmd"
	CurrencyJOD  Currency = "jod"
	CurrencyJPY  Currency = "jpy"
	CurrencyKES  Currency = "kes"
	CurrencyKGS  Currency = "kgs"
	CurrencyKHR  Currency = "khr"
	CurrencyKMF  Currency = "kmf"
	CurrencyKPW  Currency = "kpw"
	CurrencyKRW  Currency = "krw"
	CurrencyKWD  Currency = "kwd"
	CurrencyKYD  Currency = "kyd"
	CurrencyKZT  Currency = "kzt"
	CurrencyLAK  Currency = "lak"
	CurrencyLBP  Currency = "lbp"
	CurrencyLKR  Currency = "lkr"
	CurrencyLRD  Currency = "lrd"
	CurrencyLSL  Currency = "lsl"
	CurrencyLTL  Currency = "ltl"
	CurrencyLVL  Currency = "lvl"
	CurrencyLYD  Currency = "lyd"
	CurrencyMAD  Currency = "mad"
	CurrencyMDL  Currency = "mdl"
	CurrencyMGA  Currency = "mga"
	CurrencyMKD  Currency = "mkd"
	CurrencyMMK  Currency = "mmk"
	CurrencyMNT  Currency = "mnt"
	CurrencyMOP  Currency = "mop"
	CurrencyMRO  Currency = "mro"
	CurrencyMRU  Currency = "mru"
	CurrencyMUR  Currency = "mur"
	CurrencyMVR  Currency = "mvr"
	CurrencyMWK  Currency = "mwk"
	CurrencyMXN  Currency = "mxn"
	CurrencyMYR  Currency = "myr"
	CurrencyMZN  Currency = "mzn"
	CurrencyNAD  Currency = "nad"
	CurrencyNGN  Currency = "ngn"
	CurrencyNIO  Currency = "nio"
	CurrencyNOK  Currency = "nok"
	CurrencyNPR  Currency = "npr"
	CurrencyNZD  Currency = "nzd"
	CurrencyOMR  Currency = "omr"
	CurrencyPAB  Currency = "pab"
	CurrencyPEN  Currency = "pen"
	CurrencyPGK  Currency = "pgk"
	CurrencyPHP  Currency = "php"
	CurrencyPKR  Currency = "pkr"
	CurrencyPLN  Currency = "pln"
	CurrencyPYG  Currency = "pyg"
	CurrencyQAR  Currency = "qar"
	CurrencyRON  Currency = "ron"
	CurrencyRSD  Currency = "rsd"
	CurrencyRUB  Currency = "rub"
	CurrencyRWF  Currency = "rwf"
	CurrencySAR  Currency = "sar"
	CurrencySBD  Currency = "sbd"
	CurrencySCR  Currency = "scr"
	CurrencySDG  Currency = "sdg"
	CurrencySEK  Currency = "sek"
	CurrencySGD  Currency = "sgd"
	CurrencySHP  Currency = "shp"
	CurrencySLE  Currency = "sle"
	CurrencySLL  Currency = "sll"
	CurrencySOS  Currency = "sos"
	CurrencySRD  Currency = "srd"
	CurrencySTD  Currency = "std"
	CurrencySTN  Currency = "stn"
	CurrencySVC  Currency = "svc"
	CurrencySYP  Currency = "syp"
	CurrencySZL  Currency = "szl"
	CurrencyTHB  Currency = "thb"
	CurrencyTJS  Currency = "tjs"
	CurrencyTMT  Currency = "tmt"
	CurrencyTND  Currency = "tnd"
	CurrencyTOP  Currency = "top"
	CurrencyTRY  Currency = "try"
	CurrencyTTD  Currency = "ttd"
	CurrencyTWD  Currency = "twd"
	CurrencyTZS  Currency = "tzs"
	CurrencyUAH  Currency = "uah"
	CurrencyUGX  Currency = "ugx"
	CurrencyUSD  Currency = "usd"
	CurrencyUSDC Currency = "usdc"
	CurrencyUYU  Currency = "uyu"
	CurrencyUZS  Currency = "uzs"
	CurrencyVEF  Currency = "vef"
	CurrencyVES  Currency = "ves"
	CurrencyVND  Currency = "vnd"
	CurrencyVUV  Currency = "vuv"
	CurrencyWST  Currency = "wst"
	CurrencyXAF  Currency = "xaf"
	CurrencyXCD  Currency = "xcd"
	CurrencyXOF  Currency = "xof"
	CurrencyXPF  Currency = "xpf"
	CurrencyYER  Currency = "yer"
	CurrencyZAR  Currency = "zar"
	CurrencyZMK  Currency = "zmk"
	CurrencyZMW  Currency = "zmw"
	CurrencyZWD  Currency = "zwd"
	CurrencyZWL  Currency = "zwl"
)

// Currencies is the codec of Currency.
var Currencies = enum.Open("Currency",
	CurrencyAED,
	CurrencyAFN,
	CurrencyALL,
	CurrencyAMD,
	CurrencyANG,
	CurrencyAOA,
	CurrencyARS,
	CurrencyAUD,
	CurrencyAWG,
	CurrencyAZN,
	CurrencyBAM,
	CurrencyBBD,
	CurrencyBDT,
	CurrencyBGN,
	CurrencyBHD,
	CurrencyBIF,
	CurrencyBMD,
	CurrencyBND,
	CurrencyBOB,
	CurrencyBRL,
	CurrencyBSD,
	CurrencyBTN,
	CurrencyBWP,
	CurrencyBYN,
	CurrencyBYR,
	CurrencyBZD,
	CurrencyCAD,
	CurrencyCDF,
	CurrencyCHF,
	CurrencyCLP,
	CurrencyCNY,
	CurrencyCOP,
	CurrencyCRC,
	CurrencyCUC,
	CurrencyCUP,
	CurrencyCVE,
	CurrencyCZK,
	CurrencyDJF,
	CurrencyDKK,
	CurrencyDOP,
	CurrencyDZD,
	CurrencyEEK,
	CurrencyEGP,
	CurrencyERN,
	CurrencyETB,
	CurrencyEUR,
	CurrencyFJD,
	CurrencyFKP,
	CurrencyGBP,
	CurrencyGEL,
	CurrencyGHS,
	CurrencyGIP,
	CurrencyGMD,
	CurrencyGNF,
	CurrencyGTQ,
	CurrencyGYD,
	CurrencyHKD,
	CurrencyHNL,
	CurrencyHRK,
	CurrencyHTG,
	CurrencyHUF,
	CurrencyIDR,
	CurrencyILS,
	CurrencyINR,
	CurrencyIQD,
	CurrencyIRR,
	CurrencyISK,
	CurrencyJMD,
	CurrencyJOD,
	CurrencyJPY,
	CurrencyKES,
	CurrencyKGS,
	CurrencyKHR,
	CurrencyKMF,
	CurrencyKPW,
	CurrencyKRW,
	CurrencyKWD,
	CurrencyKYD,
	CurrencyKZT,
	CurrencyLAK,
	CurrencyLBP,
	CurrencyLKR,
	CurrencyLRD,
	CurrencyLSL,
	CurrencyLTL,
	CurrencyLVL,
	CurrencyLYD,
	CurrencyMAD,
	CurrencyMDL,
	CurrencyMGA,
	CurrencyMKD,
	CurrencyMMK,
	CurrencyMNT,
	CurrencyMOP,
	CurrencyMRO,
	CurrencyMRU,
	CurrencyMUR,
	CurrencyMVR,
	CurrencyMWK,
	CurrencyMXN,
	CurrencyMYR,
	CurrencyMZN,
	CurrencyNAD,
	CurrencyNGN,
	CurrencyNIO,
	CurrencyNOK,
	CurrencyNPR,
	CurrencyNZD,
	CurrencyOMR,
	CurrencyPAB,
	CurrencyPEN,
	CurrencyPGK,
	CurrencyPHP,
	CurrencyPKR,
	CurrencyPLN,
	CurrencyPYG,
	CurrencyQAR,
	CurrencyRON,
	CurrencyRSD,
	CurrencyRUB,
	CurrencyRWF,
	CurrencySAR,
	CurrencySBD,
	CurrencySCR,
	CurrencySDG,
	CurrencySEK,
	CurrencySGD,
	CurrencySHP,
	CurrencySLE,
	CurrencySLL,
	CurrencySOS,
	CurrencySRD,
	CurrencySTD,
	CurrencySTN,
	CurrencySVC,
	CurrencySYP,
	CurrencySZL,
	CurrencyTHB,
	CurrencyTJS,
	CurrencyTMT,
	CurrencyTND,
	CurrencyTOP,
	CurrencyTRY,
	CurrencyTTD,
	CurrencyTWD,
	CurrencyTZS,
	CurrencyUAH,
	CurrencyUGX,
	CurrencyUSD,
	CurrencyUSDC,
	CurrencyUYU,
	CurrencyUZS,
	CurrencyVEF,
	CurrencyVES,
	CurrencyVND,
	CurrencyVUV,
	CurrencyWST,
	CurrencyXAF,
	CurrencyXCD,
	CurrencyXOF,
	CurrencyXPF,
	CurrencyYER,
	CurrencyZAR,
	CurrencyZMK,
	CurrencyZMW,
	CurrencyZWD,
	CurrencyZWL,
)
