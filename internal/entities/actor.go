package entities

type Role string

const (
	RoleFarmer          Role = "farmer"
	RoleBuyer           Role = "buyer"
	RoleDeliveryPartner Role = "deliveryPartner"
	RoleAdmin           Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleDeliveryPartner, RoleAdmin:
		return true
	default:
		return false
	}
}

// Actor: проверенная личность вызывающего, выданная identity-провайдером.
type Actor struct {
	UserID string
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
