package services

import (
	"contahub/database"
	"contahub/models"
	"contahub/simulators"
)

// Origem do payload resolvido para um simulador.
const (
	OrigemWorkspace = "workspace"
	OrigemGlobal    = "global"
	OrigemPadrao    = "padrao"
)

// ActiveRuleSet resolve o payload vigente de um simulador: versão ativa
// do workspace, senão a versão global ativa (workspace_id nulo), senão
// o payload padrão embutido. Nunca devolve nil para chave válida.
func ActiveRuleSet(workspaceID uint, key string) (map[string]any, string, *models.RuleSet) {
	var rs models.RuleSet

	err := database.DB.
		Where("workspace_id = ? AND simulator_key = ? AND is_active = ?", workspaceID, key, true).
		First(&rs).Error
	if err == nil {
		return map[string]any(rs.Payload), OrigemWorkspace, &rs
	}

	err = database.DB.
		Where("workspace_id IS NULL AND simulator_key = ? AND is_active = ?", key, true).
		First(&rs).Error
	if err == nil {
		return map[string]any(rs.Payload), OrigemGlobal, &rs
	}

	return simulators.DefaultPayload(key), OrigemPadrao, nil
}
