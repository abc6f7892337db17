package driver

type DriverDB struct {
	ID          string
	Name        string
	Phone       string
	IsAvailable bool
	Status      string
	BranchIDs   []string
}
