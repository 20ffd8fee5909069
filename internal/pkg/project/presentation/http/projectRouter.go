package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/project/application/service"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/project/persistence/repository/adapter"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/project/presentation/controller"
)

// RegisterRoutes registers project, phase, task and expense endpoints under
// the given router group. Single-project routes carry a static /id prefix so
// no param segment shares a tree position with a static sibling.
func RegisterRoutes(g *gin.RouterGroup, pool *pgxpool.Pool) {
	repo := adapter.NewPgProjectRepository(pool)
	svc := service.NewProjectService(repo)
	ctl := controller.NewProjectController(svc)

	g.POST("", ctl.HandleCreateProject)
	g.GET("", ctl.HandleListProjects)
	g.GET("/id/:projectId", ctl.HandleGetProject)
	g.PATCH("/id/:projectId", ctl.HandleUpdateProject)
	g.DELETE("/id/:projectId", ctl.HandleDeleteProject)
	g.PATCH("/id/:projectId/addParticipants", ctl.HandleAddParticipants)

	g.GET("/id/:projectId/phases", ctl.HandleListPhases)
	g.POST("/phases", ctl.HandleCreatePhase)
	g.GET("/phases/:phaseId", ctl.HandleGetPhase)
	g.PATCH("/phases/:phaseId", ctl.HandleUpdatePhase)
	g.DELETE("/phases/:phaseId", ctl.HandleDeletePhase)

	g.GET("/phases/:phaseId/tasks", ctl.HandleListTasks)
	g.POST("/tasks", ctl.HandleCreateTask)
	g.GET("/tasks/:taskId", ctl.HandleGetTask)
	g.PATCH("/tasks/:taskId", ctl.HandleUpdateTask)
	g.DELETE("/tasks/:taskId", ctl.HandleDeleteTask)
	g.POST("/tasks/:taskId/comments", ctl.HandleCommentTask)

	g.POST("/expenses", ctl.HandleCreateExpense)
	g.GET("/id/:projectId/expenses", ctl.HandleListExpenses)
}
