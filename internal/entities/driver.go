package entities

type Driver struct {
	ID          string
	Name        string
	Phone       string
	IsAvailable bool
	Status      DriverStatusType
	BranchIDs   []string
}

type DriverStatusType string

const (
	DriverOnline  DriverStatusType = "online"
	DriverOffline DriverStatusType = "offline"
)

func (s DriverStatusType) String() string {
	return string(s)
}

// CanTakeOrder свободен, на линии и работает хотя бы в одном из филиалов заказа.
func (d Driver) CanTakeOrder(orderBranchIDs []string) bool {
	if !d.IsAvailable || d.Status != DriverOnline {
		return false
	}
	for _, own := range d.BranchIDs {
		for _, branchID := range orderBranchIDs {
			if own == branchID {
				return true
			}
		}
	}
	return false
}
