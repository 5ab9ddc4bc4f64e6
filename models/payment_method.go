package models

import (
	"errors"
	"fmt"
)

// PaymentMethod is a closed enum. Unknown values are rejected at the API
// boundary rather than defaulted.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
	PaymentQrcode PaymentMethod = "qrcode"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

func AllPaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentDebit, PaymentCredit, PaymentQrcode}
}

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
	return m, nil
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentDebit, PaymentCredit, PaymentQrcode:
		return true
	}
	return false
}

// Label returns the display name used on receipts and reports.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCash:
		return "Dinheiro"
	case PaymentDebit:
		return "Cartão Débito"
	case PaymentCredit:
		return "Cartão Crédito"
	case PaymentQrcode:
		return "QR Code/PIX"
	}
	return string(m)
}
