package checkout

// PaymentMethodOptionsParams holds payment method specific settings of a
// Checkout Session. Only the payment methods the session can use are read.
type PaymentMethodOptionsParams struct {
	ACSSDebit        *ACSSDebitOptionsParams        `form:"acss_debit"`
	Affirm           *SetupFutureUsageOptionsParams `form:"affirm"`
	AfterpayClearpay *SetupFutureUsageOptionsParams `form:"afterpay_clearpay"`
	Alipay           *SetupFutureUsageOptionsParams `form:"alipay"`
	AUBECSDebit      *SetupFutureUsageOptionsParams `form:"au_becs_debit"`
	BACSDebit        *SetupFutureUsageOptionsParams `form:"bacs_debit"`
	Bancontact       *SetupFutureUsageOptionsParams `form:"bancontact"`
	Boleto           *ExpiringOptionsParams         `form:"boleto"`
	Card             *CardOptionsParams             `form:"card"`
	CashApp          *SetupFutureUsageOptionsParams `form:"cashapp"`
	CustomerBalance  *CustomerBalanceOptionsParams  `form:"customer_balance"`
	EPS              *SetupFutureUsageOptionsParams `form:"eps"`
	FPX              *SetupFutureUsageOptionsParams `form:"fpx"`
	Giropay          *SetupFutureUsageOptionsParams `form:"giropay"`
	GrabPay          *SetupFutureUsageOptionsParams `form:"grabpay"`
	Ideal            *SetupFutureUsageOptionsParams `form:"ideal"`
	Klarna           *SetupFutureUsageOptionsParams `form:"klarna"`
	Konbini          *ExpiringOptionsParams         `form:"konbini"`
	Link             *SetupFutureUsageOptionsParams `form:"link"`
	OXXO             *ExpiringOptionsParams         `form:"oxxo"`
	P24              *P24OptionsParams              `form:"p24"`
	PayNow           *SetupFutureUsageOptionsParams `form:"paynow"`
	PayPal           *PayPalOptionsParams           `form:"paypal"`
	Pix              *PixOptionsParams              `form:"pix"`
	RevolutPay       *SetupFutureUsageOptionsParams `form:"revolut_pay"`
	SEPADebit        *SetupFutureUsageOptionsParams `form:"sepa_debit"`
	Sofort           *SetupFutureUsageOptionsParams `form:"sofort"`
	Swish            *SwishOptionsParams            `form:"swish"`
	USBankAccount    *USBankAccountOptionsParams    `form:"us_bank_account"`
	WeChatPay        *WeChatPayOptionsParams        `form:"wechat_pay"`
}

// SetupFutureUsageOptionsParams is the option set of payment methods whose
// only setting is whether they are saved for future use.
type SetupFutureUsageOptionsParams struct {
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`
}

// ExpiringOptionsParams is the option set of voucher payment methods.
type ExpiringOptionsParams struct {
	// ExpiresAfterDays is the number of calendar days before the voucher expires.
	ExpiresAfterDays *int64            `form:"expires_after_days"`
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`
}

// ACSSDebitOptionsParams configures Canadian pre-authorized debits.
type ACSSDebitOptionsParams struct {
	// Currency is required in setup mode.
	Currency           *AcssDebitCurrency             `form:"currency"`
	MandateOptions     *ACSSDebitMandateOptionsParams `form:"mandate_options"`
	SetupFutureUsage   *SetupFutureUsage              `form:"setup_future_usage"`
	VerificationMethod *VerificationMethod            `form:"verification_method"`
}

// ACSSDebitMandateOptionsParams configures the ACSS debit mandate.
type ACSSDebitMandateOptionsParams struct {
	// CustomMandateURL is a URL for a custom mandate, or "" to unset it.
	CustomMandateURL    *string                   `form:"custom_mandate_url"`
	DefaultFor          []AcssDebitDefaultFor     `form:"default_for"`
	IntervalDescription *string                   `form:"interval_description"`
	PaymentSchedule     *AcssDebitPaymentSchedule `form:"payment_schedule"`
	TransactionType     *AcssDebitTransactionType `form:"transaction_type"`
}

// CardOptionsParams configures card payments.
type CardOptionsParams struct {
	Installments        *CardInstallmentsParams `form:"installments"`
	RequestThreeDSecure *RequestThreeDSecure    `form:"request_three_d_secure"`
	SetupFutureUsage    *SetupFutureUsage       `form:"setup_future_usage"`

	// StatementDescriptorSuffixKana applies to Japanese cards only.
	StatementDescriptorSuffixKana *string `form:"statement_descriptor_suffix_kana"`

	// StatementDescriptorSuffixKanji applies to Japanese cards only.
	StatementDescriptorSuffixKanji *string `form:"statement_descriptor_suffix_kanji"`
}

// CardInstallmentsParams enables card installment plans.
type CardInstallmentsParams struct {
	Enabled *bool `form:"enabled"`
}

// CustomerBalanceOptionsParams configures customer balance payments.
type CustomerBalanceOptionsParams struct {
	BankTransfer     *BankTransferParams `form:"bank_transfer"`
	FundingType      *FundingType        `form:"funding_type"`
	SetupFutureUsage *SetupFutureUsage   `form:"setup_future_usage"`
}

// BankTransferParams configures the bank transfer funding of a customer
// balance payment.
type BankTransferParams struct {
	// EUBankTransfer is required when Type is eu_bank_transfer.
	EUBankTransfer        *EUBankTransferParams  `form:"eu_bank_transfer"`
	RequestedAddressTypes []RequestedAddressType `form:"requested_address_types"`
	Type                  BankTransferType       `form:"type,required"`
}

// NewBankTransferParams returns BankTransferParams with the required fields set.
func NewBankTransferParams(typ BankTransferType) *BankTransferParams {
	return &BankTransferParams{Type: typ}
}

// EUBankTransferParams selects the country of the EU bank account.
type EUBankTransferParams struct {
	// Country is one of BE, DE, ES, FR, IE or NL.
	Country string `form:"country,required"`
}

// P24OptionsParams configures Przelewy24 payments.
type P24OptionsParams struct {
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`

	// TOSShownAndAccepted confirms the customer saw the P24 terms.
	TOSShownAndAccepted *bool `form:"tos_shown_and_accepted"`
}

// PayPalOptionsParams configures PayPal payments.
type PayPalOptionsParams struct {
	CaptureMethod     *CaptureMethod         `form:"capture_method"`
	PreferredLocale   *PaypalPreferredLocale `form:"preferred_locale"`
	Reference         *string                `form:"reference"`
	RiskCorrelationID *string                `form:"risk_correlation_id"`
	SetupFutureUsage  *SetupFutureUsage      `form:"setup_future_usage"`
}

// PixOptionsParams configures Pix payments.
type PixOptionsParams struct {
	// ExpiresAfterSeconds defaults to 86400.
	ExpiresAfterSeconds *int64 `form:"expires_after_seconds"`
}

// SwishOptionsParams configures Swish payments.
type SwishOptionsParams struct {
	Reference *string `form:"reference"`
}

// USBankAccountOptionsParams configures US bank account payments.
type USBankAccountOptionsParams struct {
	FinancialConnections *FinancialConnectionsParams `form:"financial_connections"`
	SetupFutureUsage     *SetupFutureUsage           `form:"setup_future_usage"`
	VerificationMethod   *VerificationMethod         `form:"verification_method"`
}

// FinancialConnectionsParams lists the account data requested through Financial Connections.
type FinancialConnectionsParams struct {
	Permissions []FinancialConnectionsPermission `form:"permissions"`
	Prefetch    []FinancialConnectionsPrefetch   `form:"prefetch"`
}

// WeChatPayOptionsParams configures WeChat Pay payments.
type WeChatPayOptionsParams struct {
	AppID            *string           `form:"app_id"`
	Client           WechatPayClient   `form:"client,required"`
	SetupFutureUsage *SetupFutureUsage `form:"setup_future_usage"`
}

// NewWeChatPayOptionsParams returns WeChatPayOptionsParams with the required fields set.
func NewWeChatPayOptionsParams(client WechatPayClient) *WeChatPayOptionsParams {
	return &WeChatPayOptionsParams{Client: client}
}
