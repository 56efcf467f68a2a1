// file: internals/features/points/importacao/service/import_service.go
//
// Motor de reconciliação da importação de pontos: planilha (CSV/XLSX) enviada
// pelo admin do lojista → incrementos de saldo + extrato + lote de auditoria.
// Cada linha é sua própria unidade atômica: erro em uma linha não desfaz as
// demais, e o relatório final preserva a ordem do arquivo.
package service

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"

	histModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/model"
	impDTO "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/dto"
	impModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/model"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
	helper "github.com/jleandrodev/nextpage-sub000/internals/helpers"
	"github.com/jleandrodev/nextpage-sub000/internals/helpers/tabular"
)

// Erros estruturais — abortam o lote inteiro, sem efeitos parciais.
var (
	ErrColunasObrigatorias = errors.New("planilha sem coluna de CPF/documento ou de pontos")
	ErrPlanilhaSemDados    = errors.New("planilha vazia ou somente com cabeçalho")
)

const descricaoImportacao = "Importação de pontos via planilha"

// Store — persistência consumida pelo motor. A implementação GORM fica em
// repository; os testes usam um fake em memória.
type Store interface {
	// FindUserByCPF retorna (nil, nil) quando o CPF não existe.
	FindUserByCPF(cpf string) (*userModel.UserModel, error)
	CreateUser(u *userModel.UserModel) error
	UpdateUser(u *userModel.UserModel) error
	AddPoints(userID uuid.UUID, pontos int) error
	AppendHistory(h *histModel.PointsHistoryModel) error
	CreateImport(b *impModel.PointsImportModel) error
	SaveImport(b *impModel.PointsImportModel) error
	// Transaction executa fn com todas as escritas em uma única transação.
	Transaction(fn func(tx Store) error) error
}

type ImportService struct {
	store Store
}

func NewImportService(store Store) *ImportService {
	return &ImportService{store: store}
}

/* =======================================================
   Resolução de colunas (função pura, testável isolada)
   ======================================================= */

// ColumnMap — posições descobertas no cabeçalho (-1 = coluna ausente).
type ColumnMap struct {
	CPF    int
	Pontos int
	Nome   int
	Email  int
}

var deaccent = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ç", "c",
)

func normalizeHeader(h string) string {
	return deaccent.Replace(strings.ToLower(strings.TrimSpace(h)))
}

func headerMatches(h string, tokens ...string) bool {
	for _, tok := range tokens {
		if strings.Contains(h, tok) {
			return true
		}
	}
	return false
}

// ResolveColumns localiza as colunas por substring case-insensitive no
// cabeçalho. CPF e pontos são obrigatórias; nome e email são opcionais.
func ResolveColumns(header []string) (ColumnMap, error) {
	cols := ColumnMap{CPF: -1, Pontos: -1, Nome: -1, Email: -1}

	for i, raw := range header {
		h := normalizeHeader(raw)
		if h == "" {
			continue
		}
		switch {
		case cols.CPF < 0 && headerMatches(h, "cpf", "documento", "doc"):
			cols.CPF = i
		case cols.Pontos < 0 && headerMatches(h, "ponto", "credito", "valor"):
			cols.Pontos = i
		case cols.Email < 0 && headerMatches(h, "mail"):
			cols.Email = i
		case cols.Nome < 0 && headerMatches(h, "nome", "name"):
			cols.Nome = i
		}
	}

	if cols.CPF < 0 || cols.Pontos < 0 {
		return cols, ErrColunasObrigatorias
	}
	return cols, nil
}

/* =======================================================
   Processamento do lote
   ======================================================= */

// ImportSpreadsheet processa a planilha linha a linha, em ordem.
// Falhas estruturais retornam erro sem criar nada; erros de linha viram
// entradas do relatório e não abortam o lote.
func (s *ImportService) ImportSpreadsheet(fileBytes []byte, filename string, lojistaID, importedBy uuid.UUID) (*impDTO.ImportResult, error) {
	rows, err := tabular.Parse(fileBytes, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrPlanilhaSemDados
	}

	cols, err := ResolveColumns(rows[0])
	if err != nil {
		return nil, err
	}

	dataRows := rows[1:]
	if !hasDataRow(dataRows) {
		return nil, ErrPlanilhaSemDados
	}

	// Lote de auditoria criado antes do processamento (status PROCESSING)
	batch := &impModel.PointsImportModel{
		PointsImportLojistaID: lojistaID,
		PointsImportArquivo:   filename,
		PointsImportStatus:    impModel.StatusProcessing,
		PointsImportCreatedBy: importedBy,
	}
	if err := s.store.CreateImport(batch); err != nil {
		return nil, err
	}

	var (
		total    int
		sucessos int
		rowErrs  []impDTO.RowIssue
		warns    []impDTO.RowIssue
	)

	for i, row := range dataRows {
		rowNum := i + 2 // 1-based contando o cabeçalho

		if isBlankRow(row) {
			continue // linha em branco: pula sem registrar erro
		}
		total++

		rawCPF := cell(row, cols.CPF)
		cpf := helper.NormalizeCPF(rawCPF)
		if !helper.IsValidCPF(cpf) {
			rowErrs = append(rowErrs, impDTO.RowIssue{Row: rowNum, CPF: rawCPF, Mensagem: "CPF inválido"})
			continue
		}

		pontos, perr := parsePontos(cell(row, cols.Pontos))
		if perr != nil || pontos <= 0 {
			rowErrs = append(rowErrs, impDTO.RowIssue{Row: rowNum, CPF: cpf, Mensagem: "Quantidade de pontos inválida"})
			continue
		}

		nome := optionalCell(row, cols.Nome)
		email := optionalCell(row, cols.Email)

		warn, err := s.processRow(batch.PointsImportID, lojistaID, cpf, pontos, nome, email)
		if err != nil {
			// qualquer exceção de linha vira erro de dado, nunca aborta o lote
			log.Printf("[ERROR] importação linha %d cpf=%s: %v", rowNum, cpf, err)
			rowErrs = append(rowErrs, impDTO.RowIssue{Row: rowNum, CPF: cpf, Mensagem: "Falha ao processar a linha"})
			continue
		}
		if warn != "" {
			warns = append(warns, impDTO.RowIssue{Row: rowNum, CPF: cpf, Mensagem: warn})
		}
		sucessos++
	}

	// Atualização única ao final do lote
	batch.PointsImportTotal = total
	batch.PointsImportSucessos = sucessos
	batch.PointsImportErros = len(rowErrs)
	if len(rowErrs) == 0 {
		batch.PointsImportStatus = impModel.StatusCompleted
	} else {
		batch.PointsImportStatus = impModel.StatusPartial
	}
	batch.PointsImportErrorList = marshalIssues(rowErrs)
	batch.PointsImportWarningList = marshalIssues(warns)

	if err := s.store.SaveImport(batch); err != nil {
		return nil, err
	}

	return &impDTO.ImportResult{
		ImportID:       batch.PointsImportID,
		TotalRecords:   total,
		SuccessRecords: sucessos,
		ErrorRecords:   len(rowErrs),
		Errors:         rowErrs,
		Warnings:       warns,
	}, nil
}

// processRow reconcilia uma linha válida dentro de uma transação própria.
// Retorna uma mensagem de warning quando o usuário já pertence a outro lojista.
func (s *ImportService) processRow(importID, lojistaID uuid.UUID, cpf string, pontos int, nome, email *string) (string, error) {
	warn := ""
	err := s.store.Transaction(func(tx Store) error {
		u, err := tx.FindUserByCPF(cpf)
		if err != nil {
			return err
		}

		if u == nil {
			// usuário novo: criado com credencial provisória derivada do CPF
			hash, err := bcrypt.GenerateFromPassword([]byte(helper.SenhaTemporaria(cpf)), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			u = &userModel.UserModel{
				UserCPF:            cpf,
				UserNome:           nome,
				UserEmail:          email,
				UserSenha:          string(hash),
				UserSaldoPontos:    pontos,
				UserPrimeiroAcesso: true,
				UserIsActive:       true,
				UserLojistaID:      &lojistaID,
			}
			if err := tx.CreateUser(u); err != nil {
				return err
			}
		} else {
			changed := false
			// preenche campos vazios, nunca sobrescreve valor existente
			if isUnset(u.UserNome) && !isUnset(nome) {
				u.UserNome = nome
				changed = true
			}
			if isUnset(u.UserEmail) && !isUnset(email) {
				u.UserEmail = email
				changed = true
			}
			switch {
			case u.UserLojistaID == nil:
				u.UserLojistaID = &lojistaID
				changed = true
			case *u.UserLojistaID != lojistaID:
				// anomalia cross-tenant: credita mesmo assim, sem reatribuir
				warn = "Usuário já vinculado a outro lojista; pontos creditados sem reatribuição"
			}
			if changed {
				if err := tx.UpdateUser(u); err != nil {
					return err
				}
			}
			if err := tx.AddPoints(u.UserID, pontos); err != nil {
				return err
			}
		}

		return tx.AppendHistory(&histModel.PointsHistoryModel{
			PointsHistoryUserID:    u.UserID,
			PointsHistoryPontos:    pontos,
			PointsHistoryDescricao: descricaoImportacao,
			PointsHistoryImportID:  &importID,
		})
	})
	if err != nil {
		return "", err
	}
	return warn, nil
}

/* =======================================================
   Miudezas de célula/linha
   ======================================================= */

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalCell(row []string, idx int) *string {
	v := cell(row, idx)
	if v == "" {
		return nil
	}
	return &v
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func hasDataRow(rows [][]string) bool {
	for _, r := range rows {
		if !isBlankRow(r) {
			return true
		}
	}
	return false
}

// parsePontos aceita inteiro puro e o "100.0" que o Excel adora produzir.
func parsePontos(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, err
	}
	n := int(f)
	if float64(n) != f {
		return 0, errors.New("valor de pontos não inteiro")
	}
	return n, nil
}

func isUnset(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func marshalIssues(issues []impDTO.RowIssue) datatypes.JSON {
	if len(issues) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	b, err := json.Marshal(issues)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(b)
}
