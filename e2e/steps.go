package e2e

import (
	"github.com/cucumber/godog"

	"opendid/e2e/steps/common"
	"opendid/e2e/steps/registry"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	registry.RegisterSteps(ctx, tc)
}
