package tabular_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jleandrodev/nextpage-sub000/internals/helpers/tabular"
)

func TestParseCSVVirgula(t *testing.T) {
	data := []byte("CPF,Pontos,Nome\n12345678901,100,Maria\n98765432100,50,João\n")

	rows, err := tabular.Parse(data, "planilha.csv")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"CPF", "Pontos", "Nome"}, rows[0])
	assert.Equal(t, []string{"12345678901", "100", "Maria"}, rows[1])
	assert.Equal(t, []string{"98765432100", "50", "João"}, rows[2])
}

func TestParseCSVPontoEVirgula(t *testing.T) {
	// export padrão do Excel pt-BR
	data := []byte("CPF;Pontos\n12345678901;100\n")

	rows, err := tabular.Parse(data, "planilha.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"CPF", "Pontos"}, rows[0])
	assert.Equal(t, []string{"12345678901", "100"}, rows[1])
}

func TestParseCSVComBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("CPF,Pontos\n12345678901,10\n")...)

	rows, err := tabular.Parse(data, "planilha.csv")
	require.NoError(t, err)
	assert.Equal(t, "CPF", rows[0][0], "BOM deve ser removido do primeiro cabeçalho")
}

func TestParseCSVLinhasIrregulares(t *testing.T) {
	// linha curta precisa voltar preenchida até a largura do cabeçalho
	data := []byte("CPF,Pontos,Nome,Email\n12345678901,100\n")

	rows, err := tabular.Parse(data, "planilha.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"12345678901", "100", "", ""}, rows[1])
}

func TestParseArquivoVazio(t *testing.T) {
	_, err := tabular.Parse([]byte(""), "planilha.csv")
	assert.ErrorIs(t, err, tabular.ErrArquivoVazio)

	_, err = tabular.Parse([]byte("   \n  "), "planilha.csv")
	assert.ErrorIs(t, err, tabular.ErrArquivoVazio)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"CPF", "Pontos", "Nome"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"12345678901", 100, "Maria"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"98765432100", 50}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := tabular.Parse(buf.Bytes(), "planilha.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"CPF", "Pontos", "Nome"}, rows[0])
	assert.Equal(t, []string{"12345678901", "100", "Maria"}, rows[1])
	// célula final vazia não pode ser descartada
	assert.Equal(t, []string{"98765432100", "50", ""}, rows[2])
}

func TestParseXLSXSemExtensao(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"CPF", "Pontos"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"12345678901", 10}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	// sniff pela assinatura ZIP quando a extensão não ajuda
	rows, err := tabular.Parse(buf.Bytes(), "upload")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}

func TestParseFormatoIlegivel(t *testing.T) {
	// começa com assinatura xlsx mas não é um zip válido
	data := []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0x01, 0x02}
	_, err := tabular.Parse(data, "planilha.xlsx")
	assert.ErrorIs(t, err, tabular.ErrPlanilhaIlegivel)
}
