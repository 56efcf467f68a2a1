package seeds

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jleandrodev/nextpage-sub000/internals/configs"
	"github.com/jleandrodev/nextpage-sub000/internals/constants"
	lojistaModel "github.com/jleandrodev/nextpage-sub000/internals/features/lojistas/lojista/model"
	userModel "github.com/jleandrodev/nextpage-sub000/internals/features/users/user/model"
)

// RunAllSeeds garante os registros mínimos para um ambiente novo:
// o usuário owner da plataforma e um lojista de demonstração.
// Idempotente: nada é recriado se já existir.
func RunAllSeeds(db *gorm.DB) {
	seedOwner(db)
	seedLojistaDemo(db)
}

func seedOwner(db *gorm.DB) {
	email := strings.ToLower(configs.GetEnv("SEED_OWNER_EMAIL", "owner@nextpage.com.br"))
	senha := configs.GetEnv("SEED_OWNER_SENHA")
	if senha == "" {
		log.Println("⚠️ SEED_OWNER_SENHA não configurado — seed do owner ignorado")
		return
	}

	var count int64
	if err := db.Model(&userModel.UserModel{}).
		Where("user_email = ? AND user_role = ?", email, constants.RoleAdmin).
		Count(&count).Error; err != nil || count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		log.Println("[ERROR] seed do owner:", err)
		return
	}

	nome := "Owner NextPage"
	owner := &userModel.UserModel{
		UserCPF:            "00000000191", // CPF reservado de teste da Receita
		UserNome:           &nome,
		UserEmail:          &email,
		UserSenha:          string(hash),
		UserRole:           constants.RoleAdmin,
		UserIsActive:       true,
		UserPrimeiroAcesso: false,
	}
	if err := db.Create(owner).Error; err != nil {
		log.Println("[ERROR] seed do owner:", err)
		return
	}
	log.Println("✅ Owner seedado:", email)
}

func seedLojistaDemo(db *gorm.DB) {
	if configs.GetEnv("SEED_LOJISTA_DEMO") != "true" {
		return
	}

	var count int64
	if err := db.Model(&lojistaModel.LojistaModel{}).
		Where("lojista_slug = ?", "demo").
		Count(&count).Error; err != nil || count > 0 {
		return
	}

	demo := &lojistaModel.LojistaModel{
		LojistaNome:     "Lojista Demo",
		LojistaSlug:     "demo",
		LojistaIsActive: true,
	}
	if err := db.Create(demo).Error; err != nil {
		log.Println("[ERROR] seed do lojista demo:", err)
		return
	}
	log.Println("✅ Lojista demo seedado")
}
