package registry

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	ActAs(name string) error
	Address(name string) (string, error)
	Expand(s string) string
	Do(ctx context.Context, method, path string, body any) error
	Status() int
	Body() string
}

func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &registrySteps{tc: tc}

	ctx.Step(`^"([^"]*)" holds the "([^"]*)" role$`, steps.holdsRole)
	ctx.Step(`^I grant the "([^"]*)" role to "([^"]*)"$`, steps.grantRole)
	ctx.Step(`^I check whether "([^"]*)" holds the "([^"]*)" role$`, steps.checkRole)
	ctx.Step(`^I register the DID document "([^"]*)" at version "([^"]*)"$`, steps.registerDid)
	ctx.Step(`^I update the DID document "([^"]*)" to version "([^"]*)"$`, steps.updateDid)
	ctx.Step(`^I set the status of "([^"]*)" to "([^"]*)" at version "([^"]*)"$`, steps.setStatus)
	ctx.Step(`^I revoke "([^"]*)" as "([^"]*)" at "([^"]*)"$`, steps.revoke)
	ctx.Step(`^I fetch the DID document "([^"]*)"$`, steps.fetchDid)
	ctx.Step(`^I fetch the status of "([^"]*)"$`, steps.fetchStatus)
	ctx.Step(`^I register VC meta "([^"]*)" for issuer "([^"]*)"$`, steps.registerVcMeta)
	ctx.Step(`^I register the ZKP schema "([^"]*)"$`, steps.registerZKPSchema)
}

type registrySteps struct {
	tc TestContext
}

func didPath(id string) string {
	return "/v1/dids/" + url.PathEscape(id)
}

func didDocument(id, version string) map[string]any {
	return map[string]any{
		"@context":   []string{"https://www.w3.org/ns/did/v1"},
		"id":         id,
		"controller": id,
		"versionId":  version,
		"verificationMethod": []map[string]any{{
			"id":                 "assert",
			"type":               "Secp256k1VerificationKey2018",
			"controller":         id,
			"authType":           1,
			"publicKeyMultibase": "zgTazoqFvne8S2mdZd6ZBbje",
		}},
	}
}

// holdsRole grants as the deployer and restores the previous actor.
func (s *registrySteps) holdsRole(ctx context.Context, actor, role string) error {
	if err := s.tc.ActAs("admin"); err != nil {
		return err
	}
	if err := s.grantRole(ctx, role, actor); err != nil {
		return err
	}
	if s.tc.Status() != http.StatusCreated {
		return fmt.Errorf("grant %s to %s: status %d: %s", role, actor, s.tc.Status(), s.tc.Body())
	}
	return s.tc.ActAs("")
}

func (s *registrySteps) grantRole(ctx context.Context, role, actor string) error {
	addr, err := s.tc.Address(actor)
	if err != nil {
		return err
	}
	return s.tc.Do(ctx, http.MethodPost, "/v1/roles", map[string]string{"target": addr, "role": role})
}

func (s *registrySteps) checkRole(ctx context.Context, actor, role string) error {
	addr, err := s.tc.Address(actor)
	if err != nil {
		return err
	}
	return s.tc.Do(ctx, http.MethodGet, "/v1/roles/"+addr+"/"+url.PathEscape(role), nil)
}

func (s *registrySteps) registerDid(ctx context.Context, id, version string) error {
	id = s.tc.Expand(id)
	return s.tc.Do(ctx, http.MethodPost, "/v1/dids", didDocument(id, version))
}

func (s *registrySteps) updateDid(ctx context.Context, id, version string) error {
	id = s.tc.Expand(id)
	return s.tc.Do(ctx, http.MethodPut, didPath(id), map[string]any{
		"document":  didDocument(id, version),
		"versionId": version,
	})
}

func (s *registrySteps) setStatus(ctx context.Context, id, status, version string) error {
	return s.tc.Do(ctx, http.MethodPost, didPath(id)+"/status", map[string]string{
		"status":    status,
		"versionId": version,
	})
}

func (s *registrySteps) revoke(ctx context.Context, id, status, at string) error {
	return s.tc.Do(ctx, http.MethodPost, didPath(id)+"/revocation", map[string]string{
		"status":         status,
		"terminatedTime": at,
	})
}

func (s *registrySteps) fetchDid(ctx context.Context, id string) error {
	return s.tc.Do(ctx, http.MethodGet, didPath(id), nil)
}

func (s *registrySteps) fetchStatus(ctx context.Context, id string) error {
	return s.tc.Do(ctx, http.MethodGet, didPath(id)+"/status", nil)
}

func (s *registrySteps) registerVcMeta(ctx context.Context, id, issuerDID string) error {
	id = s.tc.Expand(id)
	return s.tc.Do(ctx, http.MethodPost, "/v1/vc-meta", map[string]any{
		"id":     id,
		"issuer": map[string]string{"did": issuerDID},
		"status": "ACTIVE",
	})
}

func (s *registrySteps) registerZKPSchema(ctx context.Context, id string) error {
	id = s.tc.Expand(id)
	return s.tc.Do(ctx, http.MethodPost, "/v1/zkp/schemas", map[string]any{
		"id":        id,
		"name":      id,
		"attrNames": []string{"name", "birthdate"},
	})
}
