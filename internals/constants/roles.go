package constants

import "fmt"

const (
	RoleAdmin = "admin"
	RoleAgent = "agent" // agente de saúde
	RoleUser  = "user"
)

// Template das mensagens de erro por role
const (
	ErrOnlyAdminsCanAccess = "❌ Apenas admin pode acessar o recurso %s."
	ErrOnlyAgentsCanAccess = "❌ Apenas admin ou agente de saúde pode acessar o recurso %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorAgent(feature string) string {
	return fmt.Sprintf(ErrOnlyAgentsCanAccess, feature)
}
