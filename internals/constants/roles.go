package constants

const (
	RoleAdmin   = "admin"   // admin global da plataforma
	RoleLojista = "lojista" // admin de um lojista (tenant)
	RoleCliente = "cliente" // cliente final que acumula/resgata pontos
)
