package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// TaxIDType is the kind of tax id a customer entered during checkout.
// TaxIDTypeUNKNOWN is a wire value Stripe itself sends; types added later
// decode as Unknown values.
type TaxIDType string

const (
	TaxIDTypeADNRT    TaxIDType = "ad_nrt"
	TaxIDTypeAETRN    TaxIDType = "ae_trn"
	TaxIDTypeARCUIT   TaxIDType = "ar_cuit"
	TaxIDTypeAUABN    TaxIDType = "au_abn"
	TaxIDTypeAUARN    TaxIDType = "au_arn"
	TaxIDTypeBGUIC    TaxIDType = "bg_uic"
	TaxIDTypeBHVAT    TaxIDType = "bh_vat"
	TaxIDTypeBOTIN    TaxIDType = "bo_tin"
	TaxIDTypeBRCNPJ   TaxIDType = "br_cnpj"
	TaxIDTypeBRCPF    TaxIDType = "br_cpf"
	TaxIDTypeCABN     TaxIDType = "ca_bn"
	TaxIDTypeCAGSTHST TaxIDType = "ca_gst_hst"
	TaxIDTypeCAPSTBC  TaxIDType = "ca_pst_bc"
	TaxIDTypeCAPSTMB  TaxIDType = "ca_pst_mb"
	TaxIDTypeCAPSTSK  TaxIDType = "ca_pst_sk"
	TaxIDTypeCAQST    TaxIDType = "ca_qst"
	TaxIDTypeCHVAT    TaxIDType = "ch_vat"
	TaxIDTypeCLTIN    TaxIDType = "cl_tin"
	TaxIDTypeCNTIN    TaxIDType = "cn_tin"
	TaxIDTypeCONIT    TaxIDType = "co_nit"
	TaxIDTypeCRTIN    TaxIDType = "cr_tin"
	TaxIDTypeDORCN    TaxIDType = "do_rcn"
	TaxIDTypeECRUC    TaxIDType = "ec_ruc"
	TaxIDTypeEGTIN    TaxIDType = "eg_tin"
	TaxIDTypeESCIF    TaxIDType = "es_cif"
	TaxIDTypeEUOSSVAT TaxIDType = "eu_oss_vat"
	TaxIDTypeEUVAT    TaxIDType = "eu_vat"
	TaxIDTypeGBVAT    TaxIDType = "gb_vat"
	TaxIDTypeGEVAT    TaxIDType = "ge_vat"
	TaxIDTypeHKBR     TaxIDType = "hk_br"
	TaxIDTypeHUTIN    TaxIDType = "hu_tin"
	TaxIDTypeIDNPWP   TaxIDType = "id_npwp"
	TaxIDTypeILVAT    TaxIDType = "il_vat"
	TaxIDTypeINGST    TaxIDType = "in_gst"
	TaxIDTypeISVAT    TaxIDType = "is_vat"
	TaxIDTypeJPCN     TaxIDType = "jp_cn"
	TaxIDTypeJPRN     TaxIDType = "jp_rn"
	TaxIDTypeJPTRN    TaxIDType = "jp_trn"
	TaxIDTypeKEPIN    TaxIDType = "ke_pin"
	TaxIDTypeKRBRN    TaxIDType = "kr_brn"
	TaxIDTypeKZBIN    TaxIDType = "kz_bin"
	TaxIDTypeLIUID    TaxIDType = "li_uid"
	TaxIDTypeMXRFC    TaxIDType = "mx_rfc"
	TaxIDTypeMYFRP    TaxIDType = "my_frp"
	TaxIDTypeMYITN    TaxIDType = "my_itn"
	TaxIDTypeMYSST    TaxIDType = "my_sst"
	TaxIDTypeNGTIN    TaxIDType = "ng_tin"
	TaxIDTypeNOVAT    TaxIDType = "no_vat"
	TaxIDTypeNOVOEC   TaxIDType = "no_voec"
	TaxIDTypeNZGST    TaxIDType = "nz_gst"
	TaxIDTypeOMVAT    TaxIDType = "om_vat"
	TaxIDTypePERUC    TaxIDType = "pe_ruc"
	TaxIDTypePHTIN    TaxIDType = "ph_tin"
	TaxIDTypeROTIN    TaxIDType = "ro_tin"
	TaxIDTypeRSPIB    TaxIDType = "rs_pib"
	TaxIDTypeRUINN    TaxIDType = "ru_inn"
	TaxIDTypeRUKPP    TaxIDType = "ru_kpp"
	TaxIDTypeSAVAT    TaxIDType = "sa_vat"
	TaxIDTypeSGGST    TaxIDType = "sg_gst"
	TaxIDTypeSGUEN    TaxIDType = "sg_uen"
	TaxIDTypeSITIN    TaxIDType = "si_tin"
	TaxIDTypeSVNIT    TaxIDType = "sv_nit"
	TaxIDTypeTHVAT    TaxIDType = "th_vat"
	TaxIDTypeTRTIN    TaxIDType = "tr_tin"
	TaxIDTypeTWVAT    TaxIDType = "tw_vat"
	TaxIDTypeUAVAT    TaxIDType = "ua_vat"
	TaxIDTypeUNKNOWN  TaxIDType = "unknown"
	TaxIDTypeUSEIN    TaxIDType = "us_ein"
	TaxIDTypeUYRUC    TaxIDType = "uy_ruc"
	TaxIDTypeVERIF    TaxIDType = "ve_rif"
	TaxIDTypeVNTIN    TaxIDType = "vn_tin"
	TaxIDTypeZAVAT    TaxIDType = "za_vat"
)

// TaxIDTypes is the codec of TaxIDType.
var TaxIDTypes = enum.Open("CheckoutSessionTaxIDType",
	TaxIDTypeADNRT,
	TaxIDTypeAETRN,
	TaxIDTypeARCUIT,
	TaxIDTypeAUABN,
	TaxIDTypeAUARN,
	TaxIDTypeBGUIC,
	TaxIDTypeBHVAT,
	TaxIDTypeBOTIN,
	TaxIDTypeBRCNPJ,
	TaxIDTypeBRCPF,
	TaxIDTypeCABN,
	TaxIDTypeCAGSTHST,
	TaxIDTypeCAPSTBC,
	TaxIDTypeCAPSTMB,
	TaxIDTypeCAPSTSK,
	TaxIDTypeCAQST,
	TaxIDTypeCHVAT,
	TaxIDTypeCLTIN,
	TaxIDTypeCNTIN,
	TaxIDTypeCONIT,
	TaxIDTypeCRTIN,
	TaxIDTypeDORCN,
	TaxIDTypeECRUC,
	TaxIDTypeEGTIN,
	TaxIDTypeESCIF,
	TaxIDTypeEUOSSVAT,
	TaxIDTypeEUVAT,
	TaxIDTypeGBVAT,
	TaxIDTypeGEVAT,
	TaxIDTypeHKBR,
	TaxIDTypeHUTIN,
	TaxIDTypeIDNPWP,
	TaxIDTypeILVAT,
	TaxIDTypeINGST,
	TaxIDTypeISVAT,
	TaxIDTypeJPCN,
	TaxIDTypeJPRN,
	TaxIDTypeJPTRN,
	TaxIDTypeKEPIN,
	TaxIDTypeKRBRN,
	TaxIDTypeKZBIN,
	TaxIDTypeLIUID,
	TaxIDTypeMXRFC,
	TaxIDTypeMYFRP,
	TaxIDTypeMYITN,
	TaxIDTypeMYSST,
	TaxIDTypeNGTIN,
	TaxIDTypeNOVAT,
	TaxIDTypeNOVOEC,
	TaxIDTypeNZGST,
	TaxIDTypeOMVAT,
	TaxIDTypePERUC,
	TaxIDTypePHTIN,
	TaxIDTypeROTIN,
	TaxIDTypeRSPIB,
	TaxIDTypeRUINN,
	TaxIDTypeRUKPP,
	TaxIDTypeSAVAT,
	TaxIDTypeSGGST,
	TaxIDTypeSGUEN,
	TaxIDTypeSITIN,
	TaxIDTypeSVNIT,
	TaxIDTypeTHVAT,
	TaxIDTypeTRTIN,
	TaxIDTypeTWVAT,
	TaxIDTypeUAVAT,
	TaxIDTypeUNKNOWN,
	TaxIDTypeUSEIN,
	TaxIDTypeUYRUC,
	TaxIDTypeVERIF,
	TaxIDTypeVNTIN,
	TaxIDTypeZAVAT,
)
