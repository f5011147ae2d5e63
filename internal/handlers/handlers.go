// Package handlers exposes the business services as a JSON API.
// Handlers stay thin: bind, delegate, respond.
package handlers

import (
	"tabdeel-pulse/internal/activity"
	"tabdeel-pulse/internal/assets"
	"tabdeel-pulse/internal/finance"
	"tabdeel-pulse/internal/jobs"
	"tabdeel-pulse/internal/messaging"
	"tabdeel-pulse/internal/notify"
	"tabdeel-pulse/internal/permissions"
	"tabdeel-pulse/internal/productivity"
	"tabdeel-pulse/internal/store"
	"tabdeel-pulse/internal/users"
)

type Handlers struct {
	Store        store.Store
	Assets       *assets.Manager
	Jobs         *jobs.Service
	Engine       *jobs.Engine
	Finance      *finance.Approvals
	Perms        *permissions.Checker
	Users        *users.Service
	Notify       *notify.Service
	Messaging    *messaging.Service
	Productivity *productivity.Service
	Activity     *activity.Logger
}

func New(st store.Store, log *activity.Logger, perms *permissions.Checker, engine *jobs.Engine) *Handlers {
	return &Handlers{
		Store:        st,
		Assets:       assets.NewManager(st, log),
		Jobs:         jobs.NewService(st, log),
		Engine:       engine,
		Finance:      finance.NewApprovals(st, log),
		Perms:        perms,
		Users:        users.NewService(st, log),
		Notify:       notify.NewService(st),
		Messaging:    messaging.NewService(st),
		Productivity: productivity.NewService(st, log),
		Activity:     log,
	}
}
