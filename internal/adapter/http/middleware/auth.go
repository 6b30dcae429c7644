package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"movequote/internal/domain/entities"
	"movequote/internal/usecase/interfaces"
	"movequote/pkg"
)

const (
	// TenantSlugHeader selects which tenant the request operates on.
	TenantSlugHeader = "X-Tenant-Slug"

	contextTenantKey = "auth.tenant"
	contextUserKey   = "auth.user"
)

var (
	errTenantNotFound = pkg.NewDomainErrorSimple("TENANT_NOT_FOUND", "Tenant not found", http.StatusNotFound)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	errForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
)

// Tenant resolves the X-Tenant-Slug header and stores the tenant on the
// context. Inactive and unknown tenants are indistinguishable to callers.
func Tenant(tenants interfaces.ITenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.GetHeader(TenantSlugHeader))
		if slug == "" {
			abortWith(c, errTenantNotFound)
			return
		}

		tenant, err := tenants.GetBySlug(c.Request.Context(), slug)
		if err != nil {
			abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			return
		}
		if tenant.ID == "" || !tenant.IsActive {
			abortWith(c, errTenantNotFound)
			return
		}

		c.Set(contextTenantKey, tenant)
		c.Next()
	}
}

// Auth resolves the bearer token to a user of the request's tenant. A session
// belonging to another tenant's user is rejected the same way as no session.
func Auth(sessions interfaces.ISessionResolver, users interfaces.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWith(c, errUnauthorized)
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, interfaces.ErrNoSession) {
				abortWith(c, errUnauthorized)
				return
			}
			abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			return
		}

		tenant := TenantFrom(c)
		user, err := users.GetByID(c.Request.Context(), tenant.ID, userID)
		if err != nil {
			abortWith(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			return
		}
		if user.ID == "" || !user.IsActive {
			abortWith(c, errUnauthorized)
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allow
// list.
func RequireRoles(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := UserFrom(c)
		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abortWith(c, errForbidden)
	}
}

// TenantFrom returns the tenant stored by the Tenant middleware.
func TenantFrom(c *gin.Context) entities.Tenant {
	if v, ok := c.Get(contextTenantKey); ok {
		if tenant, ok := v.(entities.Tenant); ok {
			return tenant
		}
	}
	return entities.Tenant{}
}

// UserFrom returns the user stored by the Auth middleware.
func UserFrom(c *gin.Context) entities.User {
	if v, ok := c.Get(contextUserKey); ok {
		if user, ok := v.(entities.User); ok {
			return user
		}
	}
	return entities.User{}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
