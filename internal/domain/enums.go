package domain

type Status string

const (
	StatusBacklog            Status = "backlog"
	StatusPlanejado          Status = "planejado"
	StatusEmExecucao         Status = "em-execucao"
	StatusEmEspera           Status = "em-espera"
	StatusEmTeste            Status = "em-teste"
	StatusValidacaoTecnica   Status = "aguardando-validacao-tecnica"
	StatusAguardandoAceite   Status = "aguardando-aceitacao"
	StatusAguardandoIntegr   Status = "aceito-aguardando-integracao"
	StatusHomologacao        Status = "aguardando-homologacao"
	StatusAguardandoPublicar Status = "homologado-aguardando-publicacao"
	StatusFinalizado         Status = "finalizado"
)

// AllStatuses lists the workflow stages in board display order.
var AllStatuses = []Status{
	StatusBacklog,
	StatusPlanejado,
	StatusEmExecucao,
	StatusEmEspera,
	StatusEmTeste,
	StatusValidacaoTecnica,
	StatusAguardandoAceite,
	StatusAguardandoIntegr,
	StatusHomologacao,
	StatusAguardandoPublicar,
	StatusFinalizado,
}

var statusNames = map[Status]string{
	StatusBacklog:            "Backlog",
	StatusPlanejado:          "Planejado",
	StatusEmExecucao:         "Em Execução",
	StatusEmEspera:           "Em Espera",
	StatusEmTeste:            "Em Teste",
	StatusValidacaoTecnica:   "Aguardando Validação Técnica",
	StatusAguardandoAceite:   "Aguardando Aceitação",
	StatusAguardandoIntegr:   "Aceito - Aguardando Integração",
	StatusHomologacao:        "Aguardando Homologação",
	StatusAguardandoPublicar: "Homologado - Aguardando Publicação",
	StatusFinalizado:         "Finalizado",
}

// DisplayName returns the human-readable stage name, or the raw value for
// statuses outside the known set.
func (s Status) DisplayName() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

// IsValid reports whether s is one of the eleven known stages.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

type IssueType string

const (
	IssueStory IssueType = "story"
	IssueBug   IssueType = "bug"
	IssueTask  IssueType = "task"
	IssueEpic  IssueType = "epic"
)

var issueTypeNames = map[IssueType]string{
	IssueStory: "História de Usuário",
	IssueBug:   "Bug",
	IssueTask:  "Task",
	IssueEpic:  "Épico",
}

func (t IssueType) DisplayName() string {
	if name, ok := issueTypeNames[t]; ok {
		return name
	}
	return string(t)
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type SprintStatus string

const (
	SprintPlanning  SprintStatus = "planning"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
	SprintCancelled SprintStatus = "cancelled"
)

type Role string

const (
	RoleDeveloper    Role = "Desenvolvedor"
	RoleScrumMaster  Role = "Scrum Master"
	RoleProductOwner Role = "Product Owner"
	RoleTester       Role = "Tester"
	RoleTechLead     Role = "Tech Lead"
	RoleDesigner     Role = "Designer"
)

type AbsenceType string

const (
	AbsencePartial AbsenceType = "partial"
	AbsenceTotal   AbsenceType = "total"
)

type HistoryAction string

const (
	ActionCreation       HistoryAction = "creation"
	ActionStatusChange   HistoryAction = "status-change"
	ActionUpdate         HistoryAction = "update"
	ActionCommentAdded   HistoryAction = "comment-added"
	ActionCommentEdited  HistoryAction = "comment-edited"
	ActionCommentDeleted HistoryAction = "comment-deleted"
)

type ScenarioStatus string

const (
	ScenarioPending ScenarioStatus = "pending"
	ScenarioPassed  ScenarioStatus = "passed"
	ScenarioFailed  ScenarioStatus = "failed"
)
