package service_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	resgateModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/model"
	"github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/service"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

/* =======================================================
   Fake em memória do Store
   O mutex serializa as transações, reproduzindo o lock de
   linha (SELECT ... FOR UPDATE) do banco real.
   ======================================================= */

type fakeStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*userModel.UserModel
	resgates []resgateModel.ResgateModel
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[uuid.UUID]*userModel.UserModel)}
}

func (f *fakeStore) addUser(saldo int) uuid.UUID {
	id := uuid.New()
	f.users[id] = &userModel.UserModel{UserID: id, UserSaldoPontos: saldo, UserIsActive: true}
	return id
}

func (f *fakeStore) UserForUpdate(userID uuid.UUID) (*userModel.UserModel, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeStore) DebitPoints(userID uuid.UUID, pontos int) error {
	u, ok := f.users[userID]
	if !ok || u.UserSaldoPontos < pontos {
		return errors.New("saldo insuficiente ou usuário ausente")
	}
	u.UserSaldoPontos -= pontos
	return nil
}

func (f *fakeStore) FindResgate(userID, ebookID uuid.UUID) (*resgateModel.ResgateModel, error) {
	for i := range f.resgates {
		if f.resgates[i].ResgateUserID == userID && f.resgates[i].ResgateEbookID == ebookID {
			cp := f.resgates[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateResgate(r *resgateModel.ResgateModel) error {
	for i := range f.resgates {
		if f.resgates[i].ResgateUserID == r.ResgateUserID && f.resgates[i].ResgateEbookID == r.ResgateEbookID {
			return errors.New(`duplicate key value violates unique constraint "uq_resgates_user_ebook" (SQLSTATE 23505)`)
		}
	}
	if r.ResgateID == uuid.Nil {
		r.ResgateID = uuid.New()
	}
	f.resgates = append(f.resgates, *r)
	return nil
}

func (f *fakeStore) Transaction(fn func(tx service.Store) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f)
}

/* =======================================================
   Resgatar
   ======================================================= */

func TestResgatarDebitaEInsere(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(100)
	ebookID := uuid.New()
	svc := service.NewResgateService(store)

	r, err := svc.Resgatar(userID, ebookID, nil, 60)
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, userID, r.ResgateUserID)
	assert.Equal(t, ebookID, r.ResgateEbookID)
	assert.Equal(t, 60, r.ResgatePontos)

	assert.Equal(t, 40, store.users[userID].UserSaldoPontos)
	assert.Len(t, store.resgates, 1)
}

func TestResgatarSaldoInsuficiente(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(30)
	svc := service.NewResgateService(store)

	_, err := svc.Resgatar(userID, uuid.New(), nil, 50)
	assert.ErrorIs(t, err, service.ErrSaldoInsuficiente)

	// nenhum efeito parcial
	assert.Equal(t, 30, store.users[userID].UserSaldoPontos)
	assert.Empty(t, store.resgates)
}

func TestResgatarDuasVezesFalha(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(200)
	ebookID := uuid.New()
	svc := service.NewResgateService(store)

	_, err := svc.Resgatar(userID, ebookID, nil, 50)
	require.NoError(t, err)

	_, err = svc.Resgatar(userID, ebookID, nil, 50)
	assert.ErrorIs(t, err, service.ErrJaResgatado)

	assert.Equal(t, 150, store.users[userID].UserSaldoPontos, "segundo resgate não pode debitar")
	assert.Len(t, store.resgates, 1)
}

func TestResgatarUsuarioInexistente(t *testing.T) {
	store := newFakeStore()
	svc := service.NewResgateService(store)

	_, err := svc.Resgatar(uuid.New(), uuid.New(), nil, 10)
	assert.ErrorIs(t, err, service.ErrUsuarioNaoEncontrado)
}

func TestResgatarConcorrenteDebitaUmaVez(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(100)
	ebookID := uuid.New()
	svc := service.NewResgateService(store)

	const n = 20
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Resgatar(userID, ebookID, nil, 60)
		}(i)
	}
	wg.Wait()

	sucessos := 0
	for _, err := range errs {
		if err == nil {
			sucessos++
		} else {
			assert.ErrorIs(t, err, service.ErrJaResgatado)
		}
	}

	assert.Equal(t, 1, sucessos, "exatamente uma chamada concorrente pode vencer")
	assert.Equal(t, 40, store.users[userID].UserSaldoPontos, "débito único")
	assert.Len(t, store.resgates, 1)
}

/* =======================================================
   Download
   ======================================================= */

func TestDownloadDebitaACadaChamada(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(100)
	ebookID := uuid.New()
	svc := service.NewResgateService(store)

	saldo, err := svc.Download(userID, ebookID, nil, 30)
	require.NoError(t, err)
	assert.Equal(t, 70, saldo)

	saldo, err = svc.Download(userID, ebookID, nil, 30)
	require.NoError(t, err)
	assert.Equal(t, 40, saldo)

	// dois débitos, mas uma única linha de resgate (desbloqueio lazy)
	assert.Equal(t, 40, store.users[userID].UserSaldoPontos)
	assert.Len(t, store.resgates, 1)
}

func TestDownloadSaldoInsuficiente(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(10)
	svc := service.NewResgateService(store)

	_, err := svc.Download(userID, uuid.New(), nil, 30)
	assert.ErrorIs(t, err, service.ErrSaldoInsuficiente)
	assert.Equal(t, 10, store.users[userID].UserSaldoPontos)
	assert.Empty(t, store.resgates)
}

func TestDownloadDepoisDeResgatar(t *testing.T) {
	store := newFakeStore()
	userID := store.addUser(100)
	ebookID := uuid.New()
	svc := service.NewResgateService(store)

	_, err := svc.Resgatar(userID, ebookID, nil, 40)
	require.NoError(t, err)

	// Download continua disponível depois do resgate e volta a debitar
	saldo, err := svc.Download(userID, ebookID, nil, 40)
	require.NoError(t, err)
	assert.Equal(t, 20, saldo)
	assert.Len(t, store.resgates, 1)

	// mas Resgatar de novo falha
	_, err = svc.Resgatar(userID, ebookID, nil, 40)
	assert.ErrorIs(t, err, service.ErrJaResgatado)
}
