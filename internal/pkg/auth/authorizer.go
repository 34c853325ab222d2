package auth

// Administrator is the single privileged identity, fixed at ledger
// creation. It is bootstrapped from configuration before the service
// starts accepting calls and is not rotatable afterwards.
type Administrator struct {
	ID int64
}

// Authorizer answers capability questions about callers. Keeping it behind
// an interface lets alternate authorization backends replace the static
// single-administrator check.
type Authorizer interface {
	IsAdministrator(participantID int64) bool
	AdministratorID() int64
}

// StaticAuthorizer authorizes a single fixed administrator id.
type StaticAuthorizer struct {
	adminID int64
}

// NewStaticAuthorizer builds an Authorizer around the bootstrapped
// administrator.
func NewStaticAuthorizer(admin *Administrator) *StaticAuthorizer {
	return &StaticAuthorizer{adminID: admin.ID}
}

func (a *StaticAuthorizer) IsAdministrator(participantID int64) bool {
	return participantID == a.adminID
}

func (a *StaticAuthorizer) AdministratorID() int64 {
	return a.adminID
}
