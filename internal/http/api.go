package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todo-server/internal/auth"
	"todo-server/internal/domain"
	"todo-server/internal/repository"
	"todo-server/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users  service.UserService
	tasks  service.TaskService
	tokens *auth.TokenManager
	logger *logrus.Logger
}

func NewHandler(users service.UserService, tasks service.TaskService, tokens *auth.TokenManager, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		tasks:  tasks,
		tokens: tokens,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Your backend server is running and ready!")
	})

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		api.POST("/register", h.register)
		api.POST("/login", h.login)

		tasks := api.Group("/tasks")
		tasks.Use(authRequired(h.tokens, h.users))
		{
			tasks.GET("", h.listTasks)
			tasks.POST("", h.createTask)
			tasks.PUT("/:id", h.updateTask)
			tasks.DELETE("/:id", h.deleteTask)
		}
	}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	DOB       string `json:"dob" binding:"required"`
	Gender    string `json:"gender" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Purpose   string `json:"purpose" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createTaskRequest struct {
	Text string `json:"text"`
}

type updateTaskRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

type taskResponse struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Owner     int64  `json:"owner"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	dob, err := parseDate(req.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid date of birth"})
		return
	}

	_, err = h.users.Register(c.Request.Context(), service.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Username:    req.Username,
		Purpose:     req.Purpose,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"message": "Email already in use."})
		case errors.Is(err, repository.ErrDuplicateUsername):
			c.JSON(http.StatusConflict, gin.H{"message": "Username already taken."})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			h.logger.WithError(err).Error("register user")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully!"})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials."})
			return
		}
		h.logger.WithError(err).Error("authenticate user")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.WithError(err).Error("issue token")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
		"message":  "Login successful.",
	})
}

func (h *Handler) listTasks(c *gin.Context) {
	user := userFromContext(c)

	tasks, err := h.tasks.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.WithError(err).Error("list tasks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks."})
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i := range tasks {
		resp[i] = taskToResponse(tasks[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createTask(c *gin.Context) {
	user := userFromContext(c)

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create task."})
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), user.ID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrEmptyTaskText) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.WithError(err).Error("create task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task."})
		return
	}

	c.JSON(http.StatusCreated, taskToResponse(*task))
}

func (h *Handler) updateTask(c *gin.Context) {
	user := userFromContext(c)

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to update task."})
		return
	}

	task, err := h.tasks.Update(c.Request.Context(), user.ID, taskID, service.TaskPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTaskNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
		case errors.Is(err, service.ErrEmptyTaskText):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.WithError(err).Error("update task")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task."})
		}
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func (h *Handler) deleteTask(c *gin.Context) {
	user := userFromContext(c)

	taskID, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := h.tasks.Delete(c.Request.Context(), user.ID, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
			return
		}
		h.logger.WithError(err).Error("delete task")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task."})
		return
	}

	c.JSON(http.StatusOK, taskToResponse(*task))
}

func taskIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		// an unparseable id can never match an existing task
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found."})
		return 0, false
	}
	return id, true
}

func taskToResponse(task domain.Task) taskResponse {
	return taskResponse{
		ID:        task.ID,
		Text:      task.Text,
		Completed: task.Completed,
		Owner:     task.OwnerID,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
