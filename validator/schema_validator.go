package validator

import (
	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/Oudwins/zog"
)

var UserIdShape = zog.Shape{
	"UserID": zog.Int64().Required().GT(0),
}

var BaseShape = zog.Shape{
	"Email": zog.String().Email().Required(),
}

var PasswordShape = zog.Shape{
	"Password": zog.String().Min(8).Required(),
}

var ConfirmShape = zog.Shape{
	"ConfirmPassword": zog.String().Required(),
}

// TradeParamsSchema enforces the engine's documented preconditions at
// the API edge.
var TradeParamsSchema = zog.Struct(zog.Shape{
	"Symbol":          zog.String().Min(5).Required(),
	"AccountBalance":  zog.Float64().Required().GT(0),
	"RiskPercentage":  zog.Float64().Required().GT(0).LTE(100),
	"StopLossPips":    zog.Float64().Required().GT(0),
	"TakeProfitPips":  zog.Float64().Required().GT(0),
	"Leverage":        zog.Float64().Required().GT(0),
})

var SignupSchema = zog.Struct(zog.Shape{}).
	Extend(BaseShape).
	Extend(PasswordShape).
	Extend(ConfirmShape).
	TestFunc(PasswordMatchTest)

func PasswordMatchTest(dataPtr any, ctx zog.Ctx) bool {
	matcher, ok := dataPtr.(model.PasswordMatcher)
	if !ok {
		return true
	}

	if matcher.GetPassword() != matcher.GetConfirm() {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "confirmPassword",
			Message: "Passwords do not match",
		})
		return false
	}
	return true
}
