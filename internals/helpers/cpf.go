package helper

import "strings"

// NormalizeCPF remove tudo que não for dígito ("123.456.789-01" → "12345678901").
func NormalizeCPF(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF valida o formato usado como chave natural do sistema:
// exatamente 11 dígitos e não pode ser dígito repetido (ex.: "00000000000",
// placeholder comum em planilhas de lojista).
func IsValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	first := cpf[0]
	for i := 1; i < 11; i++ {
		if cpf[i] != first {
			return true
		}
	}
	return false
}

// SenhaTemporaria deriva a credencial provisória de primeiro acesso a partir
// do CPF normalizado (sufixo de 6 dígitos). O usuário troca no primeiro login.
func SenhaTemporaria(cpf string) string {
	if len(cpf) < 6 {
		return cpf
	}
	return cpf[len(cpf)-6:]
}
