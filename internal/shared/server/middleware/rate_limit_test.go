package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiterAllowConsumesBurst(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 3}

	for i := 0; i < 3; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4", rule); !allowed {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}
	allowed, retryAfter := limiter.Allow("1.2.3.4", rule)
	if allowed {
		t.Fatal("fourth request should be rejected")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry hint, got %v", retryAfter)
	}
}

func TestRateLimiterRefillsOverTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("k", rule); !allowed {
		t.Fatal("first request should pass")
	}
	if allowed, _ := limiter.Allow("k", rule); allowed {
		t.Fatal("second immediate request should be rejected")
	}

	now = now.Add(1100 * time.Millisecond)
	if allowed, _ := limiter.Allow("k", rule); !allowed {
		t.Fatal("request after refill window should pass")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("a", rule); !allowed {
		t.Fatal("first key should pass")
	}
	if allowed, _ := limiter.Allow("b", rule); !allowed {
		t.Fatal("second key should have its own bucket")
	}
}

func TestRateLimiterDisabledRule(t *testing.T) {
	limiter := NewRateLimiter(nil)

	for i := 0; i < 10; i++ {
		if allowed, _ := limiter.Allow("k", RateLimitRule{}); !allowed {
			t.Fatal("zero-valued rule should not limit")
		}
	}
}

func TestRateLimitMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return now })

	router := gin.New()
	router.POST("/submit", RateLimit(limiter, RateLimitRule{Rate: 1, Burst: 1}), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/submit", nil))
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", second.Code)
	}
	if second.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}
