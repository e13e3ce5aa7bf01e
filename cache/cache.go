package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

var PendingUserCache = cache.New(5*time.Minute, 10*time.Minute)
var OtpCache = cache.New(5*time.Minute, 10*time.Minute)
var UserAuthCache = cache.New(1*time.Hour, 10*time.Minute)
var TradeSetupCache = cache.New(5*time.Minute, 10*time.Minute)
var RateLimiterCache = cache.New(10*time.Minute, 15*time.Minute)
