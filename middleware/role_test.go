package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateRouter(roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", func(c *gin.Context) {
		// Simulates an upstream auth middleware via headers, test-only.
		if id := c.GetHeader("X-Test-User"); id != "" {
			c.Set(ContextUserIDKey, id)
			c.Set(ContextRoleKey, models.NormalizeRole(c.GetHeader("X-Test-Role")))
		}
	}, RequireRoles(roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGate(t *testing.T, r *gin.Engine, userID, role string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if userID != "" {
		req.Header.Set("X-Test-User", userID)
		req.Header.Set("X-Test-Role", role)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRequireRolesAllowsMatchingRole(t *testing.T) {
	r := gateRouter(models.RoleBarber, models.RoleSuperAdmin)
	w, body := doGate(t, r, "b1", "Barber")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["ok"])
}

func TestRequireRolesAnonymousGetsLoginRedirect(t *testing.T) {
	r := gateRouter(models.RoleCustomer)
	w, body := doGate(t, r, "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, body["redirectTo"], utils.PathLogin+"?callbackUrl=")
}

func TestRequireRolesWrongRoleRedirectsToOwnHome(t *testing.T) {
	r := gateRouter(models.RoleSuperAdmin)
	w, body := doGate(t, r, "c1", "Customer")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, utils.PathCustomerHome, body["redirectTo"])
}

func TestRequireRolesNormalizesNumericRole(t *testing.T) {
	r := gateRouter(models.RoleSuperAdmin)
	w, _ := doGate(t, r, "a1", "2")
	assert.Equal(t, http.StatusOK, w.Code)
}
