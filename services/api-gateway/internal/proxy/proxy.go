package proxy

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/identity"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/api-gateway/internal/middlewares"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Forwarder rewrites inbound requests for one backend service. It is the
// single place where an untrusted bearer token becomes trusted identity:
// client-supplied identity headers are always stripped, and verified
// claims (when present) are re-attached before forwarding.
type Forwarder struct {
	rp *httputil.ReverseProxy
}

const apiPrefix = "/api"

func New(target string, log *zap.Logger) (*Forwarder, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, err
	}
	rp := httputil.NewSingleHostReverseProxy(u)
	rp.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Error("backend unreachable", zap.String("target", u.Host), zap.Error(err))
		w.WriteHeader(http.StatusBadGateway)
	}
	return &Forwarder{rp: rp}, nil
}

// Router maps path prefixes (as seen under /api) to backend forwarders,
// the gateway's whole route table.
type Router struct {
	routes []route
}

type route struct {
	prefix string
	fwd    *Forwarder
}

func NewRouter() *Router { return &Router{} }

func (r *Router) Route(prefix string, fwd *Forwarder) *Router {
	r.routes = append(r.routes, route{prefix: prefix, fwd: fwd})
	return r
}

// Dispatch picks the forwarder whose prefix matches the request path.
func (r *Router) Dispatch(c *gin.Context) {
	path := strings.TrimPrefix(c.Request.URL.Path, apiPrefix)
	for _, rt := range r.routes {
		if strings.HasPrefix(path, rt.prefix) {
			rt.fwd.Handle(c)
			return
		}
	}
	c.AbortWithStatus(http.StatusNotFound)
}

// Handle strips the /api route prefix, scrubs inbound identity headers and
// injects the verified identity from the validation middleware.
func (f *Forwarder) Handle(c *gin.Context) {
	req := c.Request
	req.URL.Path = strings.TrimPrefix(req.URL.Path, apiPrefix)

	req.Header.Del(identity.HeaderUserID)
	req.Header.Del(identity.HeaderUserRole)
	if sub, ok := c.Get(middlewares.CtxSubject); ok {
		req.Header.Set(identity.HeaderUserID, sub.(string))
	}
	if role, ok := c.Get(middlewares.CtxRole); ok {
		req.Header.Set(identity.HeaderUserRole, role.(string))
	}

	f.rp.ServeHTTP(c.Writer, req)
}
