package entities

// BranchFilter явный выбор вместо nullable-строки с магическим значением:
// либо все филиалы, либо конкретный.
type BranchFilter struct {
	branchID string
}

func AllBranches() BranchFilter {
	return BranchFilter{}
}

func SpecificBranch(id string) BranchFilter {
	return BranchFilter{branchID: id}
}

func (f BranchFilter) IsAll() bool {
	return f.branchID == ""
}

func (f BranchFilter) BranchID() (string, bool) {
	return f.branchID, f.branchID != ""
}

func (f BranchFilter) String() string {
	if f.IsAll() {
		return "all"
	}
	return f.branchID
}

// BranchScope итоговая область видимости запроса.
// All: без ограничения по филиалам. Иначе - только BranchIDs;
// пустой список означает "данных нет", запрос не выполняется.
type BranchScope struct {
	All       bool
	BranchIDs []string
}

func (s BranchScope) IsEmpty() bool {
	return !s.All && len(s.BranchIDs) == 0
}

// Scope пересекает фильтр с правами пользователя.
func (p Principal) Scope(filter BranchFilter) BranchScope {
	branchID, specific := filter.BranchID()

	if p.Role.IsPrivileged() {
		if specific {
			return BranchScope{BranchIDs: []string{branchID}}
		}
		return BranchScope{All: true}
	}

	if !specific {
		return BranchScope{BranchIDs: append([]string(nil), p.BranchIDs...)}
	}
	for _, own := range p.BranchIDs {
		if own == branchID {
			return BranchScope{BranchIDs: []string{branchID}}
		}
	}
	return BranchScope{}
}

func (p Principal) CanAccess(branchIDs []string) bool {
	if p.Role.IsPrivileged() {
		return true
	}
	for _, own := range p.BranchIDs {
		for _, id := range branchIDs {
			if own == id {
				return true
			}
		}
	}
	return false
}
