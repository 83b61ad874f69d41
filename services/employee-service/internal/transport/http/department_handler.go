package http

import (
	"errors"
	"net/http"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/rbac"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/employee-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DepartmentHandler struct {
	svc *service.DepartmentSvc
	log *zap.Logger
}

func NewDepartmentHandler(svc *service.DepartmentSvc, log *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{svc: svc, log: log}
}

func (h *DepartmentHandler) Routes(r *gin.Engine) {
	g := r.Group("/departments", TrustedIdentity())
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.ByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *DepartmentHandler) writeDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateDepartment),
		errors.Is(err, service.ErrDepartmentNotEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error("department operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *DepartmentHandler) Create(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpDepartmentCreate, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	var in departmentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.svc.Create(c.Request.Context(), in.toInput(), ident.Subject)
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDepartmentResponse(d, 0))
}

func (h *DepartmentHandler) Update(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpDepartmentUpdate, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in departmentRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := h.svc.Update(c.Request.Context(), id, in.toInput(), ident.Subject)
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	n, err := h.svc.EmployeeCount(c.Request.Context(), d.ID)
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDepartmentResponse(d, n))
}

func (h *DepartmentHandler) Delete(c *gin.Context) {
	ident := callerIdentity(c)
	if err := rbac.Decide(rbac.OpDepartmentDelete, ident, ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, ident.Subject); err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DepartmentHandler) ByID(c *gin.Context) {
	if err := rbac.Decide(rbac.OpDepartmentRead, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	d, err := h.svc.ByID(c.Request.Context(), id)
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	n, err := h.svc.EmployeeCount(c.Request.Context(), d.ID)
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDepartmentResponse(d, n))
}

func (h *DepartmentHandler) List(c *gin.Context) {
	if err := rbac.Decide(rbac.OpDepartmentRead, callerIdentity(c), ""); err != nil {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ds, err := h.svc.All(c.Request.Context())
	if err != nil {
		h.writeDepartmentError(c, err)
		return
	}
	out := make([]departmentResponse, 0, len(ds))
	for i := range ds {
		n, err := h.svc.EmployeeCount(c.Request.Context(), ds[i].ID)
		if err != nil {
			h.writeDepartmentError(c, err)
			return
		}
		out = append(out, toDepartmentResponse(&ds[i], n))
	}
	c.JSON(http.StatusOK, out)
}
