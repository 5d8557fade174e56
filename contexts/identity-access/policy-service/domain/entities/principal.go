package entities

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAuthor    Role = "author"
	RoleEvaluator Role = "evaluator"
)

func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleAuthor, RoleEvaluator:
		return true
	default:
		return false
	}
}

// Principal is the authenticated actor performing an operation. It is derived
// from the transport layer on every request and never persisted here.
type Principal struct {
	ID   string
	Role Role
}

type Action string

const (
	ActionAwardCreate Action = "award.create"
	ActionAwardRead   Action = "award.read"
	ActionAwardUpdate Action = "award.update"
	ActionAwardDelete Action = "award.delete"

	ActionProjectCreate Action = "project.create"
	ActionProjectRead   Action = "project.read"
	ActionProjectUpdate Action = "project.update"
	ActionProjectDelete Action = "project.delete"

	ActionEvaluationCreate Action = "evaluation.create"
	ActionEvaluationRead   Action = "evaluation.read"
	ActionEvaluationUpdate Action = "evaluation.update"
	ActionEvaluationDelete Action = "evaluation.delete"

	ActionWinnerRead Action = "winner.read"

	ActionAccountRegister       Action = "account.register"
	ActionAccountRead           Action = "account.read"
	ActionAccountUpdate         Action = "account.update"
	ActionAccountUpdateIdentity Action = "account.update_identity"
	ActionAccountDelete         Action = "account.delete"
)

// Resource describes the target of an action. OwnerID is the id of the
// principal owning the record (author of a project, evaluator of an
// evaluation, the account id itself). State carries the record state the
// policy needs: a project status, or the target role for account actions.
type Resource struct {
	Type    string
	OwnerID string
	State   string
}

type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonAllowed                 = "allowed"
	ReasonUnauthenticated         = "unauthenticated"
	ReasonUnknownRole             = "unknown_role"
	ReasonAdminRequired           = "admin_required"
	ReasonAuthorRoleRequired      = "author_role_required"
	ReasonEvaluatorRoleRequired   = "evaluator_role_required"
	ReasonOwnerRequired           = "owner_required"
	ReasonAdminSignupForbidden    = "admin_signup_forbidden"
	ReasonAdminAccountUndeletable = "admin_account_undeletable"
)
