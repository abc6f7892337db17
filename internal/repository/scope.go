package repository

import (
	"adminpanel/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

// BranchScopeCond условие пересечения массива филиалов с областью видимости.
// Для неограниченной области возвращает nil, пустую область вызывающий
// отсекает сам, не делая запрос.
func BranchScopeCond(column string, scope entities.BranchScope) sq.Sqlizer {
	if scope.All {
		return nil
	}
	return sq.Expr(column+" && ?", scope.BranchIDs)
}
