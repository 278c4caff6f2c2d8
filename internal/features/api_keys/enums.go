package api_keys

type ApiKeyPlan string

const (
	ApiKeyPlanFree       ApiKeyPlan = "FREE"
	ApiKeyPlanPro        ApiKeyPlan = "PRO"
	ApiKeyPlanEnterprise ApiKeyPlan = "ENTERPRISE"
)

func (p ApiKeyPlan) IsValid() bool {
	switch p {
	case ApiKeyPlanFree, ApiKeyPlanPro, ApiKeyPlanEnterprise:
		return true
	}

	return false
}

func (p ApiKeyPlan) DefaultRateLimitPerMinute() int {
	switch p {
	case ApiKeyPlanPro:
		return 300
	case ApiKeyPlanEnterprise:
		return 1000
	default:
		return 30
	}
}

func (p ApiKeyPlan) DefaultRateLimitPerDay() int {
	switch p {
	case ApiKeyPlanPro:
		return 50000
	case ApiKeyPlanEnterprise:
		return 1000000
	default:
		return 1000
	}
}
