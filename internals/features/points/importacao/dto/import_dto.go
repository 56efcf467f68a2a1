package dto

import (
	"github.com/google/uuid"
)

// RowIssue — um problema registrado em uma linha da planilha.
// Row é 1-based e conta o cabeçalho (linha 1), igual ao que o operador
// enxerga ao abrir o arquivo original.
type RowIssue struct {
	Row      int    `json:"row"`
	CPF      string `json:"cpf"`
	Mensagem string `json:"mensagem"`
}

// ImportResult — relatório devolvido ao admin após o processamento do lote.
type ImportResult struct {
	ImportID       uuid.UUID  `json:"import_id"`
	TotalRecords   int        `json:"total_records"`
	SuccessRecords int        `json:"success_records"`
	ErrorRecords   int        `json:"error_records"`
	Errors         []RowIssue `json:"errors"`
	Warnings       []RowIssue `json:"warnings,omitempty"`
}
