package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	for _, m := range AllPaymentMethods() {
		parsed, err := ParsePaymentMethod(string(m))
		assert.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestParsePaymentMethodRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "cheque", "pix", "CASH", "Cash"} {
		_, err := ParsePaymentMethod(s)
		assert.ErrorIs(t, err, ErrUnknownPaymentMethod, s)
	}
}

func TestPaymentMethodLabels(t *testing.T) {
	assert.Equal(t, "Dinheiro", PaymentCash.Label())
	assert.Equal(t, "Cartão Débito", PaymentDebit.Label())
	assert.Equal(t, "Cartão Crédito", PaymentCredit.Label())
	assert.Equal(t, "QR Code/PIX", PaymentQrcode.Label())
}
