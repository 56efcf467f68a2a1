// file: internals/features/points/resgate/service/resgate_service.go
//
// Transator de resgate: troca atômica de pontos por acesso a ebook.
// Modelo de estado unificado (decisão de produto documentada aqui):
//   - Resgatar = desbloqueio único por (user, ebook), índice unique no banco.
//   - Download = acesso pago repetível; debita a cada chamada e cria a linha
//     de resgate de forma lazy na primeira vez, se o ebook nunca foi resgatado.
// Depois de desbloqueado por qualquer um dos caminhos, Resgatar passa a falhar
// com ErrJaResgatado e Download continua disponível.
//
// As duas operações rodam inteiras dentro de uma transação do banco com lock
// de linha no usuário: chamadas concorrentes não conseguem passar juntas pela
// checagem de saldo (sem overdraft) nem inserir dois resgates.
package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	resgateModel "github.com/jleandrodev/nextpage-sub000/internals/features/points/resgate/model"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

// Erros de domínio — esperados, recuperáveis, visíveis ao usuário.
// Qualquer outro erro é infraestrutura e sobe como 500 genérico.
var (
	ErrSaldoInsuficiente   = errors.New("saldo de pontos insuficiente")
	ErrJaResgatado         = errors.New("ebook já resgatado por este usuário")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// Store — persistência consumida pelo transator, sempre dentro de Transaction.
type Store interface {
	// UserForUpdate carrega o usuário com lock de linha (SELECT ... FOR UPDATE).
	UserForUpdate(userID uuid.UUID) (*userModel.UserModel, error)
	DebitPoints(userID uuid.UUID, pontos int) error
	// FindResgate retorna (nil, nil) quando não há resgate para o par.
	FindResgate(userID, ebookID uuid.UUID) (*resgateModel.ResgateModel, error)
	CreateResgate(r *resgateModel.ResgateModel) error
	Transaction(fn func(tx Store) error) error
}

type ResgateService struct {
	store Store
}

func NewResgateService(store Store) *ResgateService {
	return &ResgateService{store: store}
}

// Resgatar — desbloqueio único: checa saldo + unicidade, debita e insere,
// tudo em uma transação.
func (s *ResgateService) Resgatar(userID, ebookID uuid.UUID, lojistaID *uuid.UUID, pontos int) (*resgateModel.ResgateModel, error) {
	var resgate *resgateModel.ResgateModel

	err := s.store.Transaction(func(tx Store) error {
		u, err := tx.UserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUsuarioNaoEncontrado
		}

		existente, err := tx.FindResgate(userID, ebookID)
		if err != nil {
			return err
		}
		if existente != nil {
			return ErrJaResgatado
		}

		if u.UserSaldoPontos < pontos {
			return ErrSaldoInsuficiente
		}

		if err := tx.DebitPoints(userID, pontos); err != nil {
			return err
		}

		resgate = &resgateModel.ResgateModel{
			ResgateUserID:    userID,
			ResgateEbookID:   ebookID,
			ResgateLojistaID: lojistaID,
			ResgatePontos:    pontos,
		}
		if err := tx.CreateResgate(resgate); err != nil {
			// corrida perdida no índice unique conta como "já resgatado"
			if isDuplicateKey(err) {
				return ErrJaResgatado
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resgate, nil
}

// Download — debita a cada chamada e desbloqueia de forma lazy na primeira.
// Retorna o novo saldo para exibição.
func (s *ResgateService) Download(userID, ebookID uuid.UUID, lojistaID *uuid.UUID, pontos int) (int, error) {
	novoSaldo := 0

	err := s.store.Transaction(func(tx Store) error {
		u, err := tx.UserForUpdate(userID)
		if err != nil {
			return err
		}
		if u == nil {
			return ErrUsuarioNaoEncontrado
		}

		if u.UserSaldoPontos < pontos {
			return ErrSaldoInsuficiente
		}

		if err := tx.DebitPoints(userID, pontos); err != nil {
			return err
		}
		novoSaldo = u.UserSaldoPontos - pontos

		existente, err := tx.FindResgate(userID, ebookID)
		if err != nil {
			return err
		}
		if existente == nil {
			r := &resgateModel.ResgateModel{
				ResgateUserID:    userID,
				ResgateEbookID:   ebookID,
				ResgateLojistaID: lojistaID,
				ResgatePontos:    pontos,
			}
			if err := tx.CreateResgate(r); err != nil && !isDuplicateKey(err) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return novoSaldo, nil
}

// isDuplicateKey: violação de unique do Postgres (SQLSTATE 23505)
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
