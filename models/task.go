package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TarefaPendente    = "pendente"
	TarefaEmAndamento = "em_andamento"
	TarefaConcluida   = "concluida"
	TarefaAtrasada    = "atrasada"
)

// Task é uma obrigação recorrente do BPO (DAS, folha, DCTF...) de uma
// competência. Competence no formato YYYY-MM.
type Task struct {
	gorm.Model
	WorkspaceID uint       `gorm:"index;not null" json:"workspace_id"`
	ClientID    uint       `gorm:"index" json:"client_id"`
	Title       string     `json:"title"`
	Competence  string     `gorm:"size:7;index" json:"competence"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `gorm:"default:pendente" json:"status"`
	AssigneeID  *uint      `json:"assignee_id"`
}

// Overdue indica se a tarefa passou do vencimento sem conclusão.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != TarefaConcluida && t.DueDate.Before(now)
}
