package common

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	ActAs(name string) error
	Do(ctx context.Context, method, path string, body any) error
	Status() int
	Body() string
	ResponseField(path string) (any, error)
}

func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &commonSteps{tc: tc}

	ctx.Step(`^the registry is ready$`, steps.registryReady)
	ctx.Step(`^I am "([^"]*)"$`, tc.ActAs)
	ctx.Step(`^I am anonymous$`, steps.anonymous)
	ctx.Step(`^I GET "([^"]*)"$`, steps.get)
	ctx.Step(`^I DELETE "([^"]*)"$`, steps.delete)
	ctx.Step(`^the response status should be (\d+)$`, steps.statusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, steps.fieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be (true|false)$`, steps.fieldShouldBeBool)
}

type commonSteps struct {
	tc TestContext
}

func (s *commonSteps) registryReady(ctx context.Context) error {
	if err := s.tc.Do(ctx, http.MethodGet, "/readyz", nil); err != nil {
		return err
	}
	return s.statusShouldBe(http.StatusOK)
}

func (s *commonSteps) anonymous() error {
	return s.tc.ActAs("")
}

func (s *commonSteps) get(ctx context.Context, path string) error {
	return s.tc.Do(ctx, http.MethodGet, path, nil)
}

func (s *commonSteps) delete(ctx context.Context, path string) error {
	return s.tc.Do(ctx, http.MethodDelete, path, nil)
}

func (s *commonSteps) statusShouldBe(expected int) error {
	if s.tc.Status() != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.tc.Status(), s.tc.Body())
	}
	return nil
}

func (s *commonSteps) fieldShouldBe(field, expected string) error {
	v, err := s.tc.ResponseField(field)
	if err != nil {
		return err
	}
	var got string
	switch t := v.(type) {
	case string:
		got = t
	case float64:
		got = strconv.FormatFloat(t, 'f', -1, 64)
	default:
		got = fmt.Sprint(t)
	}
	if got != expected {
		return fmt.Errorf("field %q: expected %q, got %q", field, expected, got)
	}
	return nil
}

func (s *commonSteps) fieldShouldBeBool(field, expected string) error {
	v, err := s.tc.ResponseField(field)
	if err != nil {
		return err
	}
	if fmt.Sprint(v) != expected {
		return fmt.Errorf("field %q: expected %s, got %v", field, expected, v)
	}
	return nil
}
