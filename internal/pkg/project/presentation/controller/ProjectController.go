package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MdialloC19/backend-IPDL/internal/pkg/project/application/service"
	project "github.com/MdialloC19/backend-IPDL/internal/pkg/project/domain"
	"github.com/MdialloC19/backend-IPDL/internal/pkg/user/presentation/middleware"
)

type ProjectController struct {
	svc *service.ProjectService
}

func NewProjectController(svc *service.ProjectService) *ProjectController {
	return &ProjectController{svc: svc}
}

type projectRequest struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
	ManagerID    string    `json:"managerId"`
	Participants []string  `json:"participants"`
}

func (r projectRequest) input() service.ProjectInput {
	return service.ProjectInput{
		Name:         r.Name,
		Description:  r.Description,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		Status:       r.Status,
		ManagerID:    r.ManagerID,
		Participants: r.Participants,
	}
}

func (ctl *ProjectController) HandleCreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ManagerID == "" {
		if principal, ok := middleware.PrincipalFrom(c); ok {
			req.ManagerID = principal.UserID
		}
	}
	p, err := ctl.svc.CreateProject(c.Request.Context(), req.input())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, projectView(p))
}

func (ctl *ProjectController) HandleGetProject(c *gin.Context) {
	p, err := ctl.svc.GetProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectView(p))
}

func (ctl *ProjectController) HandleListProjects(c *gin.Context) {
	list, err := ctl.svc.ListProjects(c.Request.Context())
	if err != nil {
		replyError(c, err)
		return
	}
	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, projectView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *ProjectController) HandleUpdateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := ctl.svc.UpdateProject(c.Request.Context(), c.Param("projectId"), req.input())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectView(p))
}

func (ctl *ProjectController) HandleDeleteProject(c *gin.Context) {
	if err := ctl.svc.DeleteProject(c.Request.Context(), c.Param("projectId")); err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (ctl *ProjectController) HandleAddParticipants(c *gin.Context) {
	var req struct {
		Participants []string `json:"participants" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := ctl.svc.AddParticipants(c.Request.Context(), c.Param("projectId"), req.Participants)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, projectView(p))
}

type phaseRequest struct {
	ProjectID   string    `json:"projectId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

func (ctl *ProjectController) HandleCreatePhase(c *gin.Context) {
	var req phaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ph, err := ctl.svc.CreatePhase(c.Request.Context(), service.PhaseInput{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, phaseView(ph))
}

func (ctl *ProjectController) HandleGetPhase(c *gin.Context) {
	ph, err := ctl.svc.GetPhase(c.Request.Context(), c.Param("phaseId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, phaseView(ph))
}

func (ctl *ProjectController) HandleListPhases(c *gin.Context) {
	list, err := ctl.svc.ListPhases(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		replyError(c, err)
		return
	}
	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, phaseView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *ProjectController) HandleUpdatePhase(c *gin.Context) {
	var req phaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ph, err := ctl.svc.UpdatePhase(c.Request.Context(), c.Param("phaseId"), service.PhaseInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, phaseView(ph))
}

func (ctl *ProjectController) HandleDeletePhase(c *gin.Context) {
	if err := ctl.svc.DeletePhase(c.Request.Context(), c.Param("phaseId")); err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "phase deleted"})
}

type taskRequest struct {
	PhaseID     string    `json:"phaseId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AssigneeID  string    `json:"assigneeId"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     time.Time `json:"dueDate"`
}

func (r taskRequest) input() service.TaskInput {
	return service.TaskInput{
		PhaseID:     r.PhaseID,
		Title:       r.Title,
		Description: r.Description,
		AssigneeID:  r.AssigneeID,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

func (ctl *ProjectController) HandleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := ctl.svc.CreateTask(c.Request.Context(), req.input())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskView(t))
}

func (ctl *ProjectController) HandleGetTask(c *gin.Context) {
	t, err := ctl.svc.GetTask(c.Request.Context(), c.Param("taskId"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskView(t))
}

func (ctl *ProjectController) HandleListTasks(c *gin.Context) {
	list, err := ctl.svc.ListTasks(c.Request.Context(), c.Param("phaseId"))
	if err != nil {
		replyError(c, err)
		return
	}
	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, taskView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *ProjectController) HandleUpdateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := ctl.svc.UpdateTask(c.Request.Context(), c.Param("taskId"), req.input())
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskView(t))
}

func (ctl *ProjectController) HandleDeleteTask(c *gin.Context) {
	if err := ctl.svc.DeleteTask(c.Request.Context(), c.Param("taskId")); err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}

func (ctl *ProjectController) HandleCommentTask(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	t, err := ctl.svc.CommentTask(c.Request.Context(), c.Param("taskId"), principal.UserID, req.Text)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskView(t))
}

type expenseRequest struct {
	ProjectID   string    `json:"projectId"`
	PhaseID     string    `json:"phaseId"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" binding:"required"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
}

func (ctl *ProjectController) HandleCreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdBy := req.UserID
	if principal, ok := middleware.PrincipalFrom(c); ok {
		createdBy = principal.UserID
	}
	e, err := ctl.svc.CreateExpense(c.Request.Context(), service.ExpenseInput{
		ProjectID:   req.ProjectID,
		PhaseID:     req.PhaseID,
		UserID:      req.UserID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		CreatedBy:   createdBy,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expenseView(e))
}

func (ctl *ProjectController) HandleListExpenses(c *gin.Context) {
	list, err := ctl.svc.ListExpenses(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		replyError(c, err)
		return
	}
	views := make([]gin.H, 0, len(list))
	for i := range list {
		views = append(views, expenseView(&list[i]))
	}
	c.JSON(http.StatusOK, views)
}

func replyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, project.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
	case errors.Is(err, project.ErrPhaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "phase not found"})
	case errors.Is(err, project.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
	case errors.Is(err, service.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process request"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func projectView(p *project.Project) gin.H {
	return gin.H{
		"id":           p.ID,
		"name":         p.Name,
		"description":  p.Description,
		"startDate":    p.StartDate,
		"endDate":      p.EndDate,
		"status":       p.Status,
		"managerId":    p.ManagerID,
		"participants": p.Participants,
		"createdAt":    p.CreatedAt,
	}
}

func phaseView(ph *project.Phase) gin.H {
	return gin.H{
		"id":          ph.ID,
		"projectId":   ph.ProjectID,
		"name":        ph.Name,
		"description": ph.Description,
		"startDate":   ph.StartDate,
		"endDate":     ph.EndDate,
		"createdAt":   ph.CreatedAt,
	}
}

func taskView(t *project.Task) gin.H {
	return gin.H{
		"id":          t.ID,
		"phaseId":     t.PhaseID,
		"title":       t.Title,
		"description": t.Description,
		"assigneeId":  t.AssigneeID,
		"status":      t.Status,
		"priority":    t.Priority,
		"dueDate":     t.DueDate,
		"comments":    t.Comments,
		"createdAt":   t.CreatedAt,
	}
}

func expenseView(e *project.Expense) gin.H {
	return gin.H{
		"id":          e.ID,
		"projectId":   e.ProjectID,
		"phaseId":     e.PhaseID,
		"userId":      e.UserID,
		"description": e.Description,
		"amount":      e.Amount,
		"date":        e.Date,
		"category":    e.Category,
		"createdBy":   e.CreatedBy,
		"createdAt":   e.CreatedAt,
	}
}
