package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/domain"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/rbac"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	svc *service.EmployeeSvc
	log *zap.Logger
}

func NewEmployeeHandler(svc *service.EmployeeSvc, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{svc: svc, log: log}
}

func (h *EmployeeHandler) Routes(r *gin.Engine) {
	g := r.Group("/employees", TrustedIdentity())
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/search", h.Search)
	g.GET("/status/:status", h.ByStatus)
	g.GET("/department/:departmentId", h.ByDepartment)
	g.GET("/code/:employeeId", h.ByCode)
	g.GET("/:id", h.ByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func parseID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(n), true
}

// writeEmployeeError maps service errors onto the HTTP contract: conflicts
// and dangling department references are 400, a missing primary resource
// is 404.
func (h *EmployeeHandler) writeEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmployeeID),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrConflict),
		errors.Is(err, service.ErrDepartmentNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error("employee operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpEmployeeCreate, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var in employeeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidStatus(in.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be ACTIVE, INACTIVE, or ON_LEAVE"})
		return
	}

	e, err := h.svc.Create(c.Request.Context(), in.toInput(), ident.Subject)
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toEmployeeResponse(e))
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpEmployeeUpdate, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in employeeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !domain.ValidStatus(in.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be ACTIVE, INACTIVE, or ON_LEAVE"})
		return
	}

	e, err := h.svc.Update(c.Request.Context(), id, in.toInput(), ident.Subject)
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpEmployeeDelete, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, ident.Subject); err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EmployeeHandler) ByID(c *gin.Context) {
	ident := callerIdentity(c)
	// Roles outside the read set are rejected before the lookup so the
	// answer cannot reveal whether the record exists.
	if !rbac.RoleAllowed(rbac.OpEmployeeRead, ident.Role) {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	e, err := h.svc.ByID(c.Request.Context(), id)
	if err != nil {
		// A self-scoped caller gets the same opaque 403 whether the
		// record is someone else's or absent.
		if errors.Is(err, service.ErrEmployeeNotFound) && ident.Role == rbac.RoleEmployee {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		h.writeEmployeeError(c, err)
		return
	}
	if err := rbac.Decide(rbac.OpEmployeeRead, ident, e.EmployeeID); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *EmployeeHandler) ByCode(c *gin.Context) {
	ident := callerIdentity(c)
	code := c.Param("employeeId")

	// The ownership check needs no lookup here: the business id is the
	// path parameter itself.
	if err := rbac.Decide(rbac.OpEmployeeRead, ident, code); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	e, err := h.svc.ByEmployeeID(c.Request.Context(), code)
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponse(e))
}

func (h *EmployeeHandler) List(c *gin.Context) {
	if err := rbac.Decide(rbac.OpEmployeeList, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	es, err := h.svc.All(c.Request.Context())
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(es))
}

func (h *EmployeeHandler) ByDepartment(c *gin.Context) {
	if err := rbac.Decide(rbac.OpEmployeeList, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	id, ok := parseID(c, "departmentId")
	if !ok {
		return
	}
	es, err := h.svc.ByDepartment(c.Request.Context(), id)
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(es))
}

func (h *EmployeeHandler) ByStatus(c *gin.Context) {
	if err := rbac.Decide(rbac.OpEmployeeList, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	status := c.Param("status")
	if !domain.ValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	}
	es, err := h.svc.ByStatus(c.Request.Context(), domain.EmployeeStatus(status))
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(es))
}

func (h *EmployeeHandler) Search(c *gin.Context) {
	if err := rbac.Decide(rbac.OpEmployeeList, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter is required"})
		return
	}
	es, err := h.svc.SearchByName(c.Request.Context(), name)
	if err != nil {
		h.writeEmployeeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEmployeeResponses(es))
}
