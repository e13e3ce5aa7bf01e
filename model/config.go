package model

// EnvConfig holds sensitive environment settings
// @Description Private configuration (never exposed in public endpoints)
type EnvConfig struct {
	Port          string `json:"port"`
	Environment   string `json:"environment"`
	MongoUser     string `json:"mongoUser"`
	MongoPassword string `json:"mongoPassword"`
	JwtSecret     string `json:"jwtSecret"`
	RedisURL      string `json:"redisUrl"`
	BrevoEmail    string `json:"brevoEmail"`
	BrevoApiKey   string `json:"brevoApiKey"`
	FrontendUrl   string `json:"frontendUrl"`
	RateLimiter   bool   `json:"rateLimiter"`
	LiveRates     bool   `json:"liveRates"`
}

// AppSettings are the runtime-tunable knobs held by config.ConfigManager
type AppSettings struct {
	FrontendUrl     string `json:"frontendUrl" bson:"frontendUrl"`
	BrevoEmail      string `json:"brevoEmail" bson:"brevoEmail"`
	BrevoApiKey     string `json:"brevoApiKey" bson:"brevoApiKey"`
	RateLimiter     bool   `json:"rateLimiter" bson:"rateLimiter"`
	DefaultLeverage int    `json:"defaultLeverage" bson:"defaultLeverage"`
}
