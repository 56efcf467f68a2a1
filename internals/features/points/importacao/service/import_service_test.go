package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	histModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/history/model"
	impModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/importacao/service"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

/* =======================================================
   Fake em memória do Store
   ======================================================= */

type fakeStore struct {
	users   map[string]*userModel.UserModel // por CPF
	history []histModel.PointsHistoryModel
	imports map[uuid.UUID]*impModel.PointsImportModel
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*userModel.UserModel),
		imports: make(map[uuid.UUID]*impModel.PointsImportModel),
	}
}

func (f *fakeStore) FindUserByCPF(cpf string) (*userModel.UserModel, error) {
	u, ok := f.users[cpf]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) CreateUser(u *userModel.UserModel) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	cp := *u
	f.users[u.UserCPF] = &cp
	return nil
}

func (f *fakeStore) UpdateUser(u *userModel.UserModel) error {
	cp := *u
	f.users[u.UserCPF] = &cp
	return nil
}

func (f *fakeStore) AddPoints(userID uuid.UUID, pontos int) error {
	for _, u := range f.users {
		if u.UserID == userID {
			u.UserSaldoPontos += pontos
			return nil
		}
	}
	return assert.AnError
}

func (f *fakeStore) AppendHistory(h *histModel.PointsHistoryModel) error {
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeStore) CreateImport(b *impModel.PointsImportModel) error {
	if b.PointsImportID == uuid.Nil {
		b.PointsImportID = uuid.New()
	}
	cp := *b
	f.imports[b.PointsImportID] = &cp
	return nil
}

func (f *fakeStore) SaveImport(b *impModel.PointsImportModel) error {
	cp := *b
	f.imports[b.PointsImportID] = &cp
	return nil
}

func (f *fakeStore) Transaction(fn func(tx service.Store) error) error {
	return fn(f)
}

/* =======================================================
   Resolução de colunas
   ======================================================= */

func TestResolveColumns(t *testing.T) {
	cols, err := service.ResolveColumns([]string{"CPF", "Pontos", "Nome", "Email"})
	require.NoError(t, err)
	assert.Equal(t, 0, cols.CPF)
	assert.Equal(t, 1, cols.Pontos)
	assert.Equal(t, 2, cols.Nome)
	assert.Equal(t, 3, cols.Email)
}

func TestResolveColumnsSinonimos(t *testing.T) {
	// cabeçalhos brasileiros típicos, com acento e ordem trocada
	cols, err := service.ResolveColumns([]string{"Nome do Cliente", "Documento", "Créditos", "E-mail"})
	require.NoError(t, err)
	assert.Equal(t, 1, cols.CPF)
	assert.Equal(t, 2, cols.Pontos)
	assert.Equal(t, 0, cols.Nome)
	assert.Equal(t, 3, cols.Email)
}

func TestResolveColumnsObrigatoriasAusentes(t *testing.T) {
	_, err := service.ResolveColumns([]string{"Nome", "Email"})
	assert.ErrorIs(t, err, service.ErrColunasObrigatorias)

	_, err = service.ResolveColumns([]string{"CPF", "Nome"})
	assert.ErrorIs(t, err, service.ErrColunasObrigatorias)
}

/* =======================================================
   Importação fim a fim (CSV em memória)
   ======================================================= */

func TestImportSpreadsheetNovoUsuario(t *testing.T) {
	store := newFakeStore()
	svc := service.NewImportService(store)
	lojistaID := uuid.New()

	csv := []byte("CPF,Pontos,Nome,Email\n123.456.789-01,75,Maria Silva,maria@example.com\n")

	res, err := svc.ImportSpreadsheet(csv, "lote.csv", lojistaID, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalRecords)
	assert.Equal(t, 1, res.SuccessRecords)
	assert.Equal(t, 0, res.ErrorRecords)

	u := store.users["12345678901"]
	require.NotNil(t, u)
	assert.Equal(t, 75, u.UserSaldoPontos)
	assert.True(t, u.UserPrimeiroAcesso)
	assert.True(t, u.UserIsActive)
	require.NotNil(t, u.UserLojistaID)
	assert.Equal(t, lojistaID, *u.UserLojistaID)
	require.NotNil(t, u.UserNome)
	assert.Equal(t, "Maria Silva", *u.UserNome)

	// credencial provisória = últimos 6 dígitos do CPF, com hash bcrypt
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.UserSenha), []byte("678901")))

	require.Len(t, store.history, 1)
	assert.Equal(t, u.UserID, store.history[0].PointsHistoryUserID)
	assert.Equal(t, 75, store.history[0].PointsHistoryPontos)
	require.NotNil(t, store.history[0].PointsHistoryImportID)
	assert.Equal(t, res.ImportID, *store.history[0].PointsHistoryImportID)
}

func TestImportSpreadsheetUsuarioExistente(t *testing.T) {
	store := newFakeStore()
	lojistaID := uuid.New()
	nome := "Maria"
	existente := &userModel.UserModel{
		UserID:          uuid.New(),
		UserCPF:         "12345678901",
		UserNome:        &nome,
		UserSaldoPontos: 100,
		UserLojistaID:   &lojistaID,
	}
	store.users[existente.UserCPF] = existente

	svc := service.NewImportService(store)

	csv := []byte("CPF,Pontos,Nome,Email\n12345678901,50,Outro Nome,maria@example.com\n")
	res, err := svc.ImportSpreadsheet(csv, "lote.csv", lojistaID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 1, res.SuccessRecords)

	u := store.users["12345678901"]
	assert.Equal(t, 150, u.UserSaldoPontos, "saldo deve ser incrementado, nunca substituído")
	assert.Equal(t, "Maria", *u.UserNome, "nome já preenchido não é sobrescrito")
	require.NotNil(t, u.UserEmail)
	assert.Equal(t, "maria@example.com", *u.UserEmail, "email vazio é preenchido")
	assert.Len(t, store.history, 1)
}

func TestImportSpreadsheetLinhasInvalidasNaoAbortam(t *testing.T) {
	store := newFakeStore()
	svc := service.NewImportService(store)

	csv := []byte("CPF,Pontos\n" +
		"12345678901,100\n" + // linha 2: ok
		"00000000000,50\n" + // linha 3: CPF placeholder
		",,\n" + // linha 4: em branco — pulada sem erro
		"98765432100,abc\n" + // linha 5: pontos inválidos
		"10987654321,-5\n" + // linha 6: pontos negativos
		"45678912300,30\n") // linha 7: ok

	res, err := svc.ImportSpreadsheet(csv, "lote.csv", uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 5, res.TotalRecords, "linha em branco não conta no total")
	assert.Equal(t, 2, res.SuccessRecords)
	assert.Equal(t, 3, res.ErrorRecords)

	// relatório preserva a ordem e a numeração do arquivo (1-based com cabeçalho)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.Equal(t, 5, res.Errors[1].Row)
	assert.Equal(t, 6, res.Errors[2].Row)

	batch := store.imports[res.ImportID]
	require.NotNil(t, batch)
	assert.Equal(t, impModel.StatusPartial, batch.PointsImportStatus)
	assert.Equal(t, 5, batch.PointsImportTotal)
	assert.Equal(t, 2, batch.PointsImportSucessos)
	assert.Equal(t, 3, batch.PointsImportErros)
}

func TestImportSpreadsheetSemErrosFicaCompleted(t *testing.T) {
	store := newFakeStore()
	svc := service.NewImportService(store)

	csv := []byte("CPF,Pontos\n12345678901,10\n98765432100,20\n")
	res, err := svc.ImportSpreadsheet(csv, "lote.csv", uuid.New(), uuid.New())
	require.NoError(t, err)

	batch := store.imports[res.ImportID]
	require.NotNil(t, batch)
	assert.Equal(t, impModel.StatusCompleted, batch.PointsImportStatus)
}

func TestImportSpreadsheetFalhaEstruturalSemEfeitos(t *testing.T) {
	store := newFakeStore()
	svc := service.NewImportService(store)
	lojistaID := uuid.New()

	// sem coluna de pontos
	_, err := svc.ImportSpreadsheet([]byte("CPF,Nome\n12345678901,Maria\n"), "lote.csv", lojistaID, uuid.New())
	assert.ErrorIs(t, err, service.ErrColunasObrigatorias)

	// só cabeçalho
	_, err = svc.ImportSpreadsheet([]byte("CPF,Pontos\n"), "lote.csv", lojistaID, uuid.New())
	assert.ErrorIs(t, err, service.ErrPlanilhaSemDados)

	// cabeçalho + linhas todas em branco
	_, err = svc.ImportSpreadsheet([]byte("CPF,Pontos\n,\n,\n"), "lote.csv", lojistaID, uuid.New())
	assert.ErrorIs(t, err, service.ErrPlanilhaSemDados)

	// nada pode ter sido criado
	assert.Empty(t, store.users)
	assert.Empty(t, store.history)
	assert.Empty(t, store.imports)
}

func TestImportSpreadsheetCrossTenantViraWarning(t *testing.T) {
	store := newFakeStore()
	outroLojista := uuid.New()
	existente := &userModel.UserModel{
		UserID:          uuid.New(),
		UserCPF:         "12345678901",
		UserSaldoPontos: 10,
		UserLojistaID:   &outroLojista,
	}
	store.users[existente.UserCPF] = existente

	svc := service.NewImportService(store)
	lojistaID := uuid.New()

	csv := []byte("CPF,Pontos\n12345678901,40\n")
	res, err := svc.ImportSpreadsheet(csv, "lote.csv", lojistaID, uuid.New())
	require.NoError(t, err)

	// credita normalmente, mas sinaliza o conflito sem reatribuir o vínculo
	assert.Equal(t, 1, res.SuccessRecords)
	assert.Equal(t, 0, res.ErrorRecords)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 2, res.Warnings[0].Row)

	u := store.users["12345678901"]
	assert.Equal(t, 50, u.UserSaldoPontos)
	assert.Equal(t, outroLojista, *u.UserLojistaID, "vínculo original preservado")
}

func TestImportSpreadsheetPontosFormatoExcel(t *testing.T) {
	store := newFakeStore()
	svc := service.NewImportService(store)

	// "100.0" e "30,0" aparecem em exports reais do Excel
	csv := []byte("CPF;Pontos\n12345678901;100.0\n98765432100;30,0\n")
	res, err := svc.ImportSpreadsheet(csv, "lote.csv", uuid.New(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2, res.SuccessRecords)
	assert.Equal(t, 100, store.users["12345678901"].UserSaldoPontos)
	assert.Equal(t, 30, store.users["98765432100"].UserSaldoPontos)
}
