package models

import "encoding/json"

// Transaction statuses the provider reports. Anything else is ignored.
const (
	TransactionApproved = "Approved"
	TransactionPending  = "Pending"
)

// PaymentWebhook is the provider's webhook payload. Numeric fields are kept
// as json.Number because the signature is computed over their exact string
// representation.
type PaymentWebhook struct {
	MerchantAccount   string      `json:"merchantAccount"`
	OrderReference    string      `json:"orderReference"`
	Amount            json.Number `json:"amount"`
	Currency          string      `json:"currency"`
	AuthCode          string      `json:"authCode"`
	CardPan           string      `json:"cardPan"`
	TransactionStatus string      `json:"transactionStatus"`
	ReasonCode        json.Number `json:"reasonCode"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	CardType          string      `json:"cardType"`
	IssuerBankCountry string      `json:"issuerBankCountry"`
	IssuerBankName    string      `json:"issuerBankName"`
	Reason            string      `json:"reason"`
	Fee               json.Number `json:"fee"`
	PaymentSystem     string      `json:"paymentSystem"`
	ClientName        string      `json:"clientName"`
	MerchantSignature string      `json:"merchantSignature"`
}

// AckResponse is the signed acknowledgement returned to the provider.
// The zero value marshals to an empty-looking body and is what an
// unauthenticated delivery gets back.
type AckResponse struct {
	OrderReference string `json:"orderReference,omitempty"`
	Status         string `json:"status,omitempty"`
	Time           int64  `json:"time,omitempty"`
	Signature      string `json:"signature,omitempty"`
}
