package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "barberbook/database/repository/user"
	"barberbook/models"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const authCacheTTL = time.Hour

// ContextUserIDKey and ContextRoleKey are the gin context keys populated by
// JWTAuthMiddleware for downstream handlers.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}

// JWTAuthMiddleware validates the bearer token against the cached token hash,
// falling back to the user record when the cache misses, and stores the
// caller's ID and role in the gin context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthorized(c, "Invalid or expired token")
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					unauthorized(c, "Token has been revoked")
					return
				}
				_ = authCache.Expire(ctx, cacheKey, authCacheTTL).Err()
				setCaller(c, users, userID)
				return
			}
			if err != redis.Nil {
				zap.L().Warn("Auth cache lookup failed, falling back to DB",
					zap.String("userId", userID), zap.Error(err))
			}
		}

		// Cache miss: compare against the hash stored on the user record.
		proj := bson.M{"id": 1, "role": 1, "token_hash": 1, "is_active": 1}
		usr, err := users.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			unauthorized(c, "Authentication error")
			return
		}
		if usr.TokenHash == "" || usr.TokenHash != computedHash {
			unauthorized(c, "Token has been revoked")
			return
		}
		if !usr.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}

		if authCache != nil {
			_ = authCache.Set(ctx, cacheKey, computedHash, authCacheTTL).Err()
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextRoleKey, models.NormalizeRole(usr.Role))
		c.Next()
	}
}

// setCaller loads the caller's role after a cache hit. The cache only proves
// token validity, the role still comes from the user record.
func setCaller(c *gin.Context, users userRepo.UserRepository, userID string) {
	proj := bson.M{"id": 1, "role": 1, "is_active": 1}
	usr, err := users.GetByIDWithProjection(userID, proj)
	if err != nil || usr == nil {
		unauthorized(c, "Authentication error")
		return
	}
	if !usr.IsActive {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		return
	}
	c.Set(ContextUserIDKey, userID)
	c.Set(ContextRoleKey, models.NormalizeRole(usr.Role))
	c.Next()
}
