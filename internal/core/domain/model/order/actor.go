package order

import (
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/pkg/errs"
	"homechef/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via one
// of the actor constructors.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError(
	"actor must be created via SystemActor, AdminActor, CustomerActor, ChefActor, or AgentActor")

// Role distinguishes who is driving a transition: the system itself,
// an administrator, the owning customer, the assigned chef, or the assigned
// delivery agent. Authority rules differ per role.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleSystem is the application itself (checkout flow, payment webhook, jobs).
	RoleSystem

	// RoleAdmin is a marketplace administrator.
	RoleAdmin

	// RoleCustomer is the customer owning the order.
	RoleCustomer

	// RoleChef is a chef; authority requires being the order's assigned chef.
	RoleChef

	// RoleAgent is a delivery agent; authority requires holding the
	// order's delivery.
	RoleAgent
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleSystem:   "system",
		RoleAdmin:    "admin",
		RoleCustomer: "customer",
		RoleChef:     "chef",
		RoleAgent:    "agent",
	}
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Actor identifies who requests a transition. System actors carry no user ID;
// every other role requires one.
type Actor struct {
	role   Role
	userID *kernel.UUID

	guard guard.ConstructorGuard
}

// SystemActor creates an actor for system-initiated transitions.
func SystemActor() Actor {
	return Actor{role: RoleSystem, guard: guard.NewConstructorGuard()}
}

// AdminActor creates an administrator actor.
func AdminActor(userID kernel.UUID) (Actor, error) {
	return newUserActor(RoleAdmin, userID)
}

// CustomerActor creates a customer actor.
func CustomerActor(userID kernel.UUID) (Actor, error) {
	return newUserActor(RoleCustomer, userID)
}

// ChefActor creates a chef actor.
func ChefActor(userID kernel.UUID) (Actor, error) {
	return newUserActor(RoleChef, userID)
}

// AgentActor creates a delivery agent actor.
func AgentActor(userID kernel.UUID) (Actor, error) {
	return newUserActor(RoleAgent, userID)
}

func newUserActor(role Role, userID kernel.UUID) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, userID: &userID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the actor was created through a constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// UserID returns the acting user's identifier, or nil for system actors.
func (a Actor) UserID() *kernel.UUID {
	return a.userID
}

// isUser reports whether the actor is the given user.
func (a Actor) isUser(id kernel.UUID) bool {
	return a.userID != nil && a.userID.IsEqual(id)
}
