package app

import (
	orderstatushandler "adminpanel/internal/handlers/kafka-consumer/order_status_changed"
	"adminpanel/internal/handlers/rest/branch_names_get"
	"adminpanel/internal/handlers/rest/connectivity_get"
	"adminpanel/internal/handlers/rest/connectivity_retry_post"
	"adminpanel/internal/handlers/rest/dashboard_get"
	"adminpanel/internal/handlers/rest/dashboard_live_get"
	"adminpanel/internal/handlers/rest/login_post"
	"adminpanel/internal/handlers/rest/order_action_post"
	"adminpanel/internal/handlers/rest/order_assign_post"
	"adminpanel/internal/handlers/rest/order_get"
	"adminpanel/internal/handlers/rest/order_riders_get"
	"adminpanel/internal/handlers/rest/orders_history_get"
	"adminpanel/internal/handlers/rest/session_get"
	"adminpanel/internal/handlers/rest/timings_discard_delete"
	"adminpanel/internal/handlers/rest/timings_draft_get"
	"adminpanel/internal/handlers/rest/timings_get"
	"adminpanel/internal/handlers/rest/timings_patch"
	"adminpanel/internal/handlers/rest/timings_save_post"
	"adminpanel/internal/pkg/middlewares/auth"
	"adminpanel/internal/service/dashboard"

	"adminpanel/pkg/background"
)

type Application struct {
	ServiceSession      ServiceSession
	ServiceTiming       ServiceTiming
	ServiceHistory      ServiceHistory
	ServiceDashboard    ServiceDashboard
	ServiceOrder        ServiceOrder
	ServiceBranchNames  ServiceBranchNames
	ServiceConnectivity ServiceConnectivity
	Tokens              TokenParser
	Notifier            *dashboard.Notifier
	BackgroundWorkers   *background.Worker
}

type ServiceSession interface {
	login_post.Service
	session_get.Service
}

type ServiceTiming interface {
	timings_get.Service
	timings_draft_get.Service
	timings_patch.Service
	timings_save_post.Service
	timings_discard_delete.Service
}

type ServiceHistory interface {
	orders_history_get.Service
}

type ServiceDashboard interface {
	dashboard_get.Service
	dashboard_live_get.Service
	orderstatushandler.Service
}

type ServiceOrder interface {
	order_get.Service
	order_action_post.Service
	order_riders_get.Service
	order_assign_post.Service
}

type ServiceBranchNames interface {
	branch_names_get.Service
}

// ServiceConnectivity кроме ручек нужен main: смена состояния gRPC канала
// дергает Trigger, при остановке вызывается Stop.
type ServiceConnectivity interface {
	connectivity_get.Service
	connectivity_retry_post.Service
	Trigger()
	Stop()
}

type TokenParser interface {
	auth.TokenParser
}
