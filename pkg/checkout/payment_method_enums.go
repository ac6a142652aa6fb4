package checkout

import "gitlab.com/ignitionrobotics/billing/checkout/pkg/enum"

// AcssDebitCurrency is the currency of an ACSS debit mandate.
type AcssDebitCurrency string

const (
	AcssDebitCurrencyCAD AcssDebitCurrency = "cad"
	AcssDebitCurrencyUSD AcssDebitCurrency = "usd"
)

// AcssDebitCurrencies is the codec of AcssDebitCurrency.
var AcssDebitCurrencies = enum.Closed("CheckoutSessionAcssDebitCurrency",
	AcssDebitCurrencyCAD,
	AcssDebitCurrencyUSD,
)

// AcssDebitPaymentSchedule is when ACSS debits happen.
type AcssDebitPaymentSchedule string

const (
	AcssDebitPaymentScheduleCombined AcssDebitPaymentSchedule = "combined"
	AcssDebitPaymentScheduleInterval AcssDebitPaymentSchedule = "interval"
	AcssDebitPaymentScheduleSporadic AcssDebitPaymentSchedule = "sporadic"
)

// AcssDebitPaymentSchedules is the codec of AcssDebitPaymentSchedule.
var AcssDebitPaymentSchedules = enum.Closed("CheckoutSessionAcssDebitPaymentSchedule",
	AcssDebitPaymentScheduleCombined,
	AcssDebitPaymentScheduleInterval,
	AcssDebitPaymentScheduleSporadic,
)

// AcssDebitTransactionType tells personal debits from business ones.
type AcssDebitTransactionType string

const (
	AcssDebitTransactionTypeBusiness AcssDebitTransactionType = "business"
	AcssDebitTransactionTypePersonal AcssDebitTransactionType = "personal"
)

// AcssDebitTransactionTypes is the codec of AcssDebitTransactionType.
var AcssDebitTransactionTypes = enum.Closed("CheckoutSessionAcssDebitTransactionType",
	AcssDebitTransactionTypeBusiness,
	AcssDebitTransactionTypePersonal,
)

// AcssDebitDefaultFor is what an ACSS debit mandate is the default for.
type AcssDebitDefaultFor string

const (
	AcssDebitDefaultForInvoice      AcssDebitDefaultFor = "invoice"
	AcssDebitDefaultForSubscription AcssDebitDefaultFor = "subscription"
)

// AcssDebitDefaultFors is the codec of AcssDebitDefaultFor.
var AcssDebitDefaultFors = enum.Closed("CheckoutSessionAcssDebitDefaultFor",
	AcssDebitDefaultForInvoice,
	AcssDebitDefaultForSubscription,
)

// VerificationMethod is how a bank account is verified.
type VerificationMethod string

const (
	VerificationMethodAutomatic     VerificationMethod = "automatic"
	VerificationMethodInstant       VerificationMethod = "instant"
	VerificationMethodMicrodeposits VerificationMethod = "microdeposits"
)

// VerificationMethods is the codec of VerificationMethod.
var VerificationMethods = enum.Closed("CheckoutSessionVerificationMethod",
	VerificationMethodAutomatic,
	VerificationMethodInstant,
	VerificationMethodMicrodeposits,
)

// RequestThreeDSecure decides when 3D Secure is requested.
type RequestThreeDSecure string

const (
	RequestThreeDSecureAny       RequestThreeDSecure = "any"
	RequestThreeDSecureAutomatic RequestThreeDSecure = "automatic"
	RequestThreeDSecureChallenge RequestThreeDSecure = "challenge"
)

// RequestThreeDSecures is the codec of RequestThreeDSecure.
var RequestThreeDSecures = enum.Closed("CheckoutSessionRequestThreeDSecure",
	RequestThreeDSecureAny,
	RequestThreeDSecureAutomatic,
	RequestThreeDSecureChallenge,
)

// BankTransferType is the kind of bank transfer.
type BankTransferType string

const (
	BankTransferTypeEUBankTransfer BankTransferType = "eu_bank_transfer"
	BankTransferTypeGBBankTransfer BankTransferType = "gb_bank_transfer"
	BankTransferTypeJPBankTransfer BankTransferType = "jp_bank_transfer"
	BankTransferTypeMXBankTransfer BankTransferType = "mx_bank_transfer"
	BankTransferTypeUSBankTransfer BankTransferType = "us_bank_transfer"
)

// BankTransferTypes is the codec of BankTransferType.
var BankTransferTypes = enum.Closed("CheckoutSessionBankTransferType",
	BankTransferTypeEUBankTransfer,
	BankTransferTypeGBBankTransfer,
	BankTransferTypeJPBankTransfer,
	BankTransferTypeMXBankTransfer,
	BankTransferTypeUSBankTransfer,
)

// RequestedAddressType is a kind of bank address shown to the customer.
type RequestedAddressType string

const (
	RequestedAddressTypeABA      RequestedAddressType = "aba"
	RequestedAddressTypeIBAN     RequestedAddressType = "iban"
	RequestedAddressTypeSEPA     RequestedAddressType = "sepa"
	RequestedAddressTypeSortCode RequestedAddressType = "sort_code"
	RequestedAddressTypeSPEI     RequestedAddressType = "spei"
	RequestedAddressTypeSWIFT    RequestedAddressType = "swift"
	RequestedAddressTypeZengin   RequestedAddressType = "zengin"
)

// RequestedAddressTypes is the codec of RequestedAddressType.
var RequestedAddressTypes = enum.Closed("CheckoutSessionRequestedAddressType",
	RequestedAddressTypeABA,
	RequestedAddressTypeIBAN,
	RequestedAddressTypeSEPA,
	RequestedAddressTypeSortCode,
	RequestedAddressTypeSPEI,
	RequestedAddressTypeSWIFT,
	RequestedAddressTypeZengin,
)

// FundingType is how a customer balance payment is funded.
type FundingType string

const (
	FundingTypeBankTransfer FundingType = "bank_transfer"
)

// FundingTypes is the codec of FundingType.
var FundingTypes = enum.Closed("CheckoutSessionFundingType",
	FundingTypeBankTransfer,
)

// FinancialConnectionsPermission is account data requested through Financial Connections.
type FinancialConnectionsPermission string

const (
	FinancialConnectionsPermissionBalances      FinancialConnectionsPermission = "balances"
	FinancialConnectionsPermissionOwnership     FinancialConnectionsPermission = "ownership"
	FinancialConnectionsPermissionPaymentMethod FinancialConnectionsPermission = "payment_method"
	FinancialConnectionsPermissionTransactions  FinancialConnectionsPermission = "transactions"
)

// FinancialConnectionsPermissions is the codec of FinancialConnectionsPermission.
var FinancialConnectionsPermissions = enum.Closed("CheckoutSessionFinancialConnectionsPermission",
	FinancialConnectionsPermissionBalances,
	FinancialConnectionsPermissionOwnership,
	FinancialConnectionsPermissionPaymentMethod,
	FinancialConnectionsPermissionTransactions,
)

// FinancialConnectionsPrefetch is account data fetched right after linking.
type FinancialConnectionsPrefetch string

const (
	FinancialConnectionsPrefetchBalances     FinancialConnectionsPrefetch = "balances"
	FinancialConnectionsPrefetchOwnership    FinancialConnectionsPrefetch = "ownership"
	FinancialConnectionsPrefetchTransactions FinancialConnectionsPrefetch = "transactions"
)

// FinancialConnectionsPrefetches is the codec of FinancialConnectionsPrefetch.
var FinancialConnectionsPrefetches = enum.Closed("CheckoutSessionFinancialConnectionsPrefetch",
	FinancialConnectionsPrefetchBalances,
	FinancialConnectionsPrefetchOwnership,
	FinancialConnectionsPrefetchTransactions,
)

// WechatPayClient is the client WeChat Pay runs in.
type WechatPayClient string

const (
	WechatPayClientAndroid WechatPayClient = "android"
	WechatPayClientIOS     WechatPayClient = "ios"
	WechatPayClientWeb     WechatPayClient = "web"
)

// WechatPayClients is the codec of WechatPayClient.
var WechatPayClients = enum.Closed("CheckoutSessionWechatPayClient",
	WechatPayClientAndroid,
	WechatPayClientIOS,
	WechatPayClientWeb,
)

// PaypalPreferredLocale is the language of the PayPal payment page. New
// tags decode as Unknown values.
type PaypalPreferredLocale string

const (
	PaypalPreferredLocaleCsCZ PaypalPreferredLocale = "cs-CZ"
	PaypalPreferredLocaleDaDK PaypalPreferredLocale = "da-DK"
	PaypalPreferredLocaleDeAT PaypalPreferredLocale = "de-AT"
	PaypalPreferredLocaleDeDE PaypalPreferredLocale = "de-DE"
	PaypalPreferredLocaleDeLU PaypalPreferredLocale = "de-LU"
	PaypalPreferredLocaleElGR PaypalPreferredLocale = "el-GR"
	PaypalPreferredLocaleEnGB PaypalPreferredLocale = "en-GB"
	PaypalPreferredLocaleEnUS PaypalPreferredLocale = "en-US"
	PaypalPreferredLocaleEsES PaypalPreferredLocale = "es-ES"
	PaypalPreferredLocaleFiFI PaypalPreferredLocale = "fi-FI"
	PaypalPreferredLocaleFrBE PaypalPreferredLocale = "fr-BE"
	PaypalPreferredLocaleFrFR PaypalPreferredLocale = "fr-FR"
	PaypalPreferredLocaleFrLU PaypalPreferredLocale = "fr-LU"
	PaypalPreferredLocaleHuHU PaypalPreferredLocale = "hu-HU"
	PaypalPreferredLocaleItIT PaypalPreferredLocale = "it-IT"
	PaypalPreferredLocaleNlBE PaypalPreferredLocale = "nl-BE"
	PaypalPreferredLocaleNlNL PaypalPreferredLocale = "nl-NL"
	PaypalPreferredLocalePlPL PaypalPreferredLocale = "pl-PL"
	PaypalPreferredLocalePtPT PaypalPreferredLocale = "pt-PT"
	PaypalPreferredLocaleSkSK PaypalPreferredLocale = "sk-SK"
	PaypalPreferredLocaleSvSE PaypalPreferredLocale = "sv-SE"
)

// PaypalPreferredLocales is the codec of PaypalPreferredLocale.
var PaypalPreferredLocales = enum.Open("CheckoutSessionPaypalPreferredLocale",
	PaypalPreferredLocaleCsCZ,
	PaypalPreferredLocaleDaDK,
	PaypalPreferredLocaleDeAT,
	PaypalPreferredLocaleDeDE,
	PaypalPreferredLocaleDeLU,
	PaypalPreferredLocaleElGR,
	PaypalPreferredLocaleEnGB,
	PaypalPreferredLocaleEnUS,
	PaypalPreferredLocaleEsES,
	PaypalPreferredLocaleFiFI,
	PaypalPreferredLocaleFrBE,
	PaypalPreferredLocaleFrFR,
	PaypalPreferredLocaleFrLU,
	PaypalPreferredLocaleHuHU,
	PaypalPreferredLocaleItIT,
	PaypalPreferredLocaleNlBE,
	PaypalPreferredLocaleNlNL,
	PaypalPreferredLocalePlPL,
	PaypalPreferredLocalePtPT,
	PaypalPreferredLocaleSkSK,
	PaypalPreferredLocaleSvSE,
)

// PaymentMethodType is a type of payment method a Checkout Session can accept.
// Stripe adds payment methods regularly, so values this list does not know
// decode as Unknown values that keep the wire string.
type PaymentMethodType string

const (
	PaymentMethodTypeACSSDebit        PaymentMethodType = "acss_debit"
	PaymentMethodTypeAffirm           PaymentMethodType = "affirm"
	PaymentMethodTypeAfterpayClearpay PaymentMethodType = "afterpay_clearpay"
	PaymentMethodTypeAlipay           PaymentMethodType = "alipay"
	PaymentMethodTypeAmazonPay        PaymentMethodType = "amazon_pay"
	PaymentMethodTypeAUBECSDebit      PaymentMethodType = "au_becs_debit"
	PaymentMethodTypeBACSDebit        PaymentMethodType = "bacs_debit"
	PaymentMethodTypeBancontact       PaymentMethodType = "bancontact"
	PaymentMethodTypeBlik             PaymentMethodType = "blik"
	PaymentMethodTypeBoleto           PaymentMethodType = "boleto"
	PaymentMethodTypeCard             PaymentMethodType = "card"
	PaymentMethodTypeCashApp          PaymentMethodType = "cashapp"
	PaymentMethodTypeCustomerBalance  PaymentMethodType = "customer_balance"
	PaymentMethodTypeEPS              PaymentMethodType = "eps"
	PaymentMethodTypeFPX              PaymentMethodType = "fpx"
	PaymentMethodTypeGiropay          PaymentMethodType = "giropay"
	PaymentMethodTypeGrabPay          PaymentMethodType = "grabpay"
	PaymentMethodTypeIdeal            PaymentMethodType = "ideal"
	PaymentMethodTypeKlarna           PaymentMethodType = "klarna"
	PaymentMethodTypeKonbini          PaymentMethodType = "konbini"
	PaymentMethodTypeLink             PaymentMethodType = "link"
	PaymentMethodTypeMobilePay        PaymentMethodType = "mobilepay"
	PaymentMethodTypeMultibanco       PaymentMethodType = "multibanco"
	PaymentMethodTypeOXXO             PaymentMethodType = "oxxo"
	PaymentMethodTypeP24              PaymentMethodType = "p24"
	PaymentMethodTypePayNow           PaymentMethodType = "paynow"
	PaymentMethodTypePayPal           PaymentMethodType = "paypal"
	PaymentMethodTypePix              PaymentMethodType = "pix"
	PaymentMethodTypePromptPay        PaymentMethodType = "promptpay"
	PaymentMethodTypeRevolutPay       PaymentMethodType = "revolut_pay"
	PaymentMethodTypeSEPADebit        PaymentMethodType = "sepa_debit"
	PaymentMethodTypeSofort           PaymentMethodType = "sofort"
	PaymentMethodTypeSwish            PaymentMethodType = "swish"
	PaymentMethodTypeTwint            PaymentMethodType = "twint"
	PaymentMethodTypeUSBankAccount    PaymentMethodType = "us_bank_account"
	PaymentMethodTypeWeChatPay        PaymentMethodType = "wechat_pay"
	PaymentMethodTypeZip              PaymentMethodType = "zip"
)

// PaymentMethodTypes is the codec of PaymentMethodType.
var PaymentMethodTypes = enum.Open("CheckoutSessionPaymentMethodType",
	PaymentMethodTypeACSSDebit,
	PaymentMethodTypeAffirm,
	PaymentMethodTypeAfterpayClearpay,
	PaymentMethodTypeAlipay,
	PaymentMethodTypeAmazonPay,
	PaymentMethodTypeAUBECSDebit,
	PaymentMethodTypeBACSDebit,
	PaymentMethodTypeBancontact,
	PaymentMethodTypeBlik,
	PaymentMethodTypeBoleto,
	PaymentMethodTypeCard,
	PaymentMethodTypeCashApp,
	PaymentMethodTypeCustomerBalance,
	PaymentMethodTypeEPS,
	PaymentMethodTypeFPX,
	PaymentMethodTypeGiropay,
	PaymentMethodTypeGrabPay,
	PaymentMethodTypeIdeal,
	PaymentMethodTypeKlarna,
	PaymentMethodTypeKonbini,
	PaymentMethodTypeLink,
	PaymentMethodTypeMobilePay,
	PaymentMethodTypeMultibanco,
	PaymentMethodTypeOXXO,
	PaymentMethodTypeP24,
	PaymentMethodTypePayNow,
	PaymentMethodTypePayPal,
	PaymentMethodTypePix,
	PaymentMethodTypePromptPay,
	PaymentMethodTypeRevolutPay,
	PaymentMethodTypeSEPADebit,
	PaymentMethodTypeSofort,
	PaymentMethodTypeSwish,
	PaymentMethodTypeTwint,
	PaymentMethodTypeUSBankAccount,
	PaymentMethodTypeWeChatPay,
	PaymentMethodTypeZip,
)
