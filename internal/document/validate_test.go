package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"opendid/internal/multibase"
	dErrors "opendid/pkg/domain-errors"
)

func sampleDocument() Document {
	return Document{
		Context:    []string{"https://www.w3.org/ns/did/v1"},
		ID:         "did:omn:tas",
		Controller: "did:omn:tas",
		VersionID:  "1",
		VerificationMethod: []VerificationMethod{{
			ID:                 "assert",
			Type:               "Secp256r1VerificationKey2018",
			Controller:         "did:omn:tas",
			AuthType:           1,
			PublicKeyMultibase: "zgTazoqFvne8S2mdZd6ZBbje",
		}},
		AssertionMethod: []string{"assert"},
	}
}

func TestValidate(t *testing.T) {
	codec := multibase.New()

	t.Run("well formed", func(t *testing.T) {
		assert.NoError(t, Validate(sampleDocument(), codec))
	})

	t.Run("missing id", func(t *testing.T) {
		doc := sampleDocument()
		doc.ID = ""
		err := Validate(doc, codec)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("nil verification methods match an empty list", func(t *testing.T) {
		doc := sampleDocument()
		doc.VerificationMethod = nil
		assert.NoError(t, Validate(doc, codec))
		doc.VerificationMethod = []VerificationMethod{}
		assert.NoError(t, Validate(doc, codec))
	})

	t.Run("nil service endpoint list", func(t *testing.T) {
		doc := sampleDocument()
		doc.Service = []ServiceEndpoint{{ID: "did:omn:1#svc", Type: "LinkedDomains"}}
		assert.NoError(t, Validate(doc, codec))
		assert.Nil(t, doc.Service[0].ServiceEndpoint, "caller's document is not modified")
	})

	t.Run("undecodable key", func(t *testing.T) {
		doc := sampleDocument()
		doc.VerificationMethod[0].PublicKeyMultibase = "z0OIl"
		err := Validate(doc, codec)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		assert.Contains(t, dErrors.MessageOf(err), "assert")
	})

	t.Run("nil decoder skips key check", func(t *testing.T) {
		doc := sampleDocument()
		doc.VerificationMethod[0].PublicKeyMultibase = "z0OIl"
		assert.NoError(t, Validate(doc, nil))
	})
}
