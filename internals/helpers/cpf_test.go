package helper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
)

func TestNormalizeCPF(t *testing.T) {
	cases := map[string]string{
		"123.456.789-01":    "12345678901",
		"12345678901":       "12345678901",
		"  123 456 789 01 ": "12345678901",
		"abc":               "",
		"":                  "",
		"1a2b3c":            "123",
	}
	for in, want := range cases {
		assert.Equal(t, want, helper.NormalizeCPF(in), "entrada %q", in)
	}
}

func TestIsValidCPF(t *testing.T) {
	assert.True(t, helper.IsValidCPF("12345678901"))
	assert.True(t, helper.IsValidCPF("10987654321"))

	// tamanho errado
	assert.False(t, helper.IsValidCPF(""))
	assert.False(t, helper.IsValidCPF("1234567890"))
	assert.False(t, helper.IsValidCPF("123456789012"))

	// dígito repetido (placeholder comum em planilha)
	assert.False(t, helper.IsValidCPF("00000000000"))
	assert.False(t, helper.IsValidCPF("11111111111"))
	assert.False(t, helper.IsValidCPF("99999999999"))
}

func TestSenhaTemporaria(t *testing.T) {
	assert.Equal(t, "678901", helper.SenhaTemporaria("12345678901"))
	assert.Equal(t, "123", helper.SenhaTemporaria("123"))
}
