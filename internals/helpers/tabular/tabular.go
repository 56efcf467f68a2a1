// Package tabular converte o upload bruto (CSV ou XLSX) em uma matriz de
// células string, primeira linha = cabeçalho, preservando a ordem das linhas.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	ErrArquivoVazio     = errors.New("arquivo vazio")
	ErrFormatoInvalido  = errors.New("formato de arquivo não suportado")
	ErrPlanilhaIlegivel = errors.New("não foi possível ler a planilha")
)

// assinatura ZIP — todo .xlsx começa com PK\x03\x04
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// Parse decide o parser pela extensão do arquivo e, na dúvida, pelo conteúdo.
// Todas as linhas retornam com o mesmo número de colunas do cabeçalho
// (células finais em branco não são descartadas).
func Parse(data []byte, filename string) ([][]string, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrArquivoVazio
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return parseXLSX(data)
	case ".csv", ".txt":
		return parseCSV(data)
	}

	// sem extensão confiável → sniff pelo conteúdo
	if bytes.HasPrefix(data, xlsxMagic) {
		return parseXLSX(data)
	}
	return parseCSV(data)
}

func parseCSV(data []byte) ([][]string, error) {
	// remove BOM UTF-8 (Excel "salvar como CSV" adora mandar um)
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrPlanilhaIlegivel
		}
		rows = append(rows, record)
	}
	if len(rows) == 0 {
		return nil, ErrArquivoVazio
	}
	return padRows(rows), nil
}

func parseXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrPlanilhaIlegivel
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrPlanilhaIlegivel
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrPlanilhaIlegivel
	}
	if len(rows) == 0 {
		return nil, ErrArquivoVazio
	}
	// GetRows descarta células finais vazias — padRows devolve o retângulo
	return padRows(rows), nil
}

// sniffDelimiter: planilha brasileira exportada do Excel costuma vir com ';'
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	if bytes.Count(line, []byte{';'}) > bytes.Count(line, []byte{','}) {
		return ';'
	}
	return ','
}

func padRows(rows [][]string) [][]string {
	width := len(rows[0])
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}
	return rows
}
