package dto

import (
	"adminpanel/internal/entities"
	api "adminpanel/internal/generated/dto"
	"adminpanel/internal/service/dashboard"

	"github.com/shopspring/decimal"
)

func FromSnapshot(s dashboard.Snapshot) api.Dashboard {
	return api.Dashboard{
		BusinessDayStart:   s.BusinessDayStart,
		OrdersToday:        fromStat(s.OrdersToday),
		AvailableDrivers:   fromStat(s.AvailableDrivers),
		Revenue:            fromStat(s.Revenue),
		AvailableMenuItems: fromStat(s.AvailableMenu),
		RecentOrders:       fromStat(s.RecentOrders),
	}
}

// FromUpdate одно сообщение websocket-потока.
func FromUpdate(u dashboard.Update) api.LiveUpdate {
	update := api.LiveUpdate{
		Aggregate: string(u.Aggregate),
		State:     string(u.State),
		At:        u.At,
	}
	switch {
	case u.State == dashboard.StateError && u.Err != nil:
		msg := u.Err.Error()
		update.Error = &msg
	case u.State == dashboard.StateReady:
		update.Value = statValue(u.Value)
	}
	return update
}

func fromStat[T any](s dashboard.Stat[T]) api.Stat {
	stat := api.Stat{State: string(s.State)}
	switch {
	case s.State == dashboard.StateError && s.Err != nil:
		msg := s.Err.Error()
		stat.Error = &msg
	case s.State == dashboard.StateReady:
		stat.Value = statValue(s.Value)
	}
	return stat
}

// statValue деньги строкой с копейками, заказы в формате API.
func statValue(v any) any {
	switch value := v.(type) {
	case decimal.Decimal:
		return value.StringFixed(2)
	case []entities.Order:
		return FromOrders(value)
	default:
		return value
	}
}
