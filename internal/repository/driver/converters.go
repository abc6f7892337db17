package driver

import "adminpanel/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		IsAvailable: d.IsAvailable,
		Status:      entities.DriverStatusType(d.Status),
		BranchIDs:   d.BranchIDs,
	}
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i, driverDB := range driversDB {
		result[i] = *ToDomain(&driverDB)
	}
	return result
}
