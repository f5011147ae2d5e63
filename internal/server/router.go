package server

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"tabdeel-pulse/internal/config"
	"tabdeel-pulse/internal/handlers"
	"tabdeel-pulse/internal/middleware"
	"tabdeel-pulse/internal/permissions"
)

func NewRouter(cfg *config.Config, h *handlers.Handlers) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("pulse_session", store))

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")

	// AUTH
	api.POST("/login", h.Login)
	api.POST("/logout", h.Logout)

	auth := api.Group("/")
	auth.Use(middleware.RequireAuth())

	auth.GET("/me", h.Me)

	// DASHBOARD
	auth.GET("/dashboard",
		middleware.RequirePermission(h.Perms, permissions.PermDashboardView),
		h.Dashboard,
	)
	auth.GET("/activity",
		middleware.RequirePermission(h.Perms, permissions.PermDashboardView),
		h.ListActivity,
	)

	// ASSETS
	auth.GET("/assets",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsView),
		h.ListAssets,
	)
	auth.GET("/assets/:id",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsView),
		h.GetAsset,
	)
	auth.GET("/assets/:id/depreciation",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsView),
		h.GetAssetDepreciation,
	)
	auth.POST("/assets",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsManage),
		h.CreateAsset,
	)
	auth.PUT("/assets/:id",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsManage),
		h.UpdateAsset,
	)
	auth.POST("/assets/:id/movements",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsMove),
		h.RecordAssetMovement,
	)
	auth.POST("/assets/:id/dispose",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsManage),
		h.DisposeAsset,
	)
	auth.POST("/assets/import",
		middleware.RequirePermission(h.Perms, permissions.PermAssetsManage),
		h.ImportAssets,
	)

	// SERVICE JOBS
	auth.GET("/jobs",
		middleware.RequirePermission(h.Perms, permissions.PermJobsView),
		h.ListJobs,
	)
	auth.GET("/jobs/:id",
		middleware.RequirePermission(h.Perms, permissions.PermJobsView),
		h.GetJob,
	)
	auth.POST("/jobs",
		middleware.RequirePermission(h.Perms, permissions.PermJobsCreate),
		h.CreateJob,
	)
	auth.PUT("/jobs/:id",
		middleware.RequirePermission(h.Perms, permissions.PermJobsUpdate),
		h.UpdateJob,
	)
	auth.POST("/jobs/:id/comments",
		middleware.RequirePermission(h.Perms, permissions.PermJobsUpdate),
		h.AddJobComment,
	)
	auth.POST("/jobs/sweep",
		middleware.RequirePermission(h.Perms, permissions.PermRolesManage),
		h.TriggerSweep,
	)

	// FINANCE
	auth.GET("/payments",
		middleware.RequirePermission(h.Perms, permissions.PermFinanceView),
		h.ListPayments,
	)
	auth.PUT("/payments/:id",
		middleware.RequirePermission(h.Perms, permissions.PermFinanceApprove),
		h.UpdatePayment,
	)
	auth.GET("/collections",
		middleware.RequirePermission(h.Perms, permissions.PermFinanceView),
		h.ListCollections,
	)
	auth.GET("/deposits",
		middleware.RequirePermission(h.Perms, permissions.PermFinanceView),
		h.ListDeposits,
	)
	auth.GET("/accounts",
		middleware.RequirePermission(h.Perms, permissions.PermAccountsManage),
		h.ListAccounts,
	)
	auth.PUT("/accounts/:id",
		middleware.RequirePermission(h.Perms, permissions.PermAccountsApprove),
		h.UpdateAccount,
	)

	// MASTER DATA
	auth.GET("/projects",
		middleware.RequirePermission(h.Perms, permissions.PermJobsView),
		h.ListProjects,
	)
	auth.POST("/projects",
		middleware.RequirePermission(h.Perms, permissions.PermProjectsManage),
		h.SaveProject,
	)
	auth.PUT("/projects/:id",
		middleware.RequirePermission(h.Perms, permissions.PermProjectsManage),
		h.SaveProject,
	)

	// USERS AND ROLES
	auth.GET("/users",
		middleware.RequirePermission(h.Perms, permissions.PermUsersView),
		h.ListUsers,
	)
	auth.POST("/users",
		middleware.RequirePermission(h.Perms, permissions.PermUsersCreate),
		h.AddUser,
	)
	auth.PUT("/users/:id",
		middleware.RequirePermission(h.Perms, permissions.PermUsersEdit),
		h.UpdateUser,
	)
	auth.GET("/roles",
		middleware.RequirePermission(h.Perms, permissions.PermRolesView),
		h.ListRoles,
	)
	auth.POST("/roles",
		middleware.RequirePermission(h.Perms, permissions.PermRolesManage),
		h.SaveRole,
	)

	// MESSAGING AND NOTIFICATIONS
	auth.GET("/threads",
		middleware.RequirePermission(h.Perms, permissions.PermMessagesView),
		h.ListThreads,
	)
	auth.POST("/threads",
		middleware.RequirePermission(h.Perms, permissions.PermMessagesCreate),
		h.CreateThread,
	)
	auth.POST("/threads/:id/messages",
		middleware.RequirePermission(h.Perms, permissions.PermMessagesCreate),
		h.PostMessage,
	)
	auth.GET("/notifications", h.ListNotifications)
	auth.POST("/notifications/read", h.MarkNotificationsRead)

	// PRODUCTIVITY
	auth.GET("/tasks",
		middleware.RequirePermission(h.Perms, permissions.PermTasksManage),
		h.ListTasks,
	)
	auth.POST("/tasks",
		middleware.RequirePermission(h.Perms, permissions.PermTasksManage),
		h.AddTask,
	)
	auth.PUT("/tasks/:id",
		middleware.RequirePermission(h.Perms, permissions.PermTasksManage),
		h.UpdateTask,
	)
	auth.GET("/announcements", h.ListAnnouncements)
	auth.POST("/announcements",
		middleware.RequirePermission(h.Perms, permissions.PermAnnouncementsManage),
		h.AddAnnouncement,
	)

	return r
}
