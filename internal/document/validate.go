package document

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"opendid/internal/multibase"
	dErrors "opendid/pkg/domain-errors"
)

// Decoder decodes multibase key material.
type Decoder interface {
	Decode(s string) ([]byte, multibase.Base, error)
}

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "controller", "versionId", "verificationMethod"],
  "properties": {
    "@context": {"type": "array", "items": {"type": "string"}},
    "id": {"type": "string", "minLength": 1},
    "controller": {"type": "string", "minLength": 1},
    "versionId": {"type": "string", "minLength": 1},
    "verificationMethod": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type", "controller", "publicKeyMultibase"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "type": {"type": "string", "minLength": 1},
          "controller": {"type": "string", "minLength": 1},
          "authType": {"type": "integer", "minimum": 0},
          "publicKeyMultibase": {"type": "string", "minLength": 2}
        }
      }
    },
    "assertionMethod": {"type": "array", "items": {"type": "string"}},
    "authentication": {"type": "array", "items": {"type": "string"}},
    "keyAgreement": {"type": "array", "items": {"type": "string"}},
    "capabilityInvocation": {"type": "array", "items": {"type": "string"}},
    "capabilityDelegation": {"type": "array", "items": {"type": "string"}},
    "service": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id": {"type": "string"},
          "type": {"type": "string"},
          "serviceEndpoint": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

var compiledSchema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	if err != nil {
		panic(fmt.Sprintf("document schema: %v", err))
	}
	return s
}()

// schemaView returns doc with nil slices that serialize without omitempty
// replaced by empty ones, so a Go caller's nil matches a JSON [].
func schemaView(doc Document) Document {
	if doc.VerificationMethod == nil {
		doc.VerificationMethod = []VerificationMethod{}
	}
	if len(doc.Service) > 0 {
		services := make([]ServiceEndpoint, len(doc.Service))
		copy(services, doc.Service)
		for i := range services {
			if services[i].ServiceEndpoint == nil {
				services[i].ServiceEndpoint = []string{}
			}
		}
		doc.Service = services
	}
	return doc
}

// Validate checks the document shape and that every verification method's
// key decodes.
//
// Errors: CodeInvalidInput describing the first problems found.
func Validate(doc Document, decoder Decoder) error {
	result, err := compiledSchema.Validate(gojsonschema.NewGoLoader(schemaView(doc)))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "malformed document")
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return dErrors.New(dErrors.CodeInvalidInput, "malformed document: "+strings.Join(msgs, "; "))
	}

	if decoder == nil {
		return nil
	}
	for _, vm := range doc.VerificationMethod {
		if _, _, err := decoder.Decode(vm.PublicKeyMultibase); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInvalidInput,
				"verification method "+vm.ID+" has undecodable publicKeyMultibase")
		}
	}
	return nil
}
