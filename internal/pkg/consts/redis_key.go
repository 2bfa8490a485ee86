package consts

const (
	RateLimitGeneralKey = "ratelimit:general:"
	RateLimitAIKey      = "ratelimit:ai:"
)
