package zkp_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opendid/internal/events"
	"opendid/internal/zkp"
	"opendid/internal/zkp/mocks"
	"opendid/internal/zkp/store"
	dErrors "opendid/pkg/domain-errors"
)

func sampleSchema() zkp.Schema {
	return zkp.Schema{
		ID:        "Ff8h9Bg:2:mdl:1.0",
		Name:      "mdl",
		Version:   "1.0",
		AttrNames: []string{"zkp_per.name", "zkp_per.birth"},
		Tag:       "default",
	}
}

func sampleDefinition() zkp.Definition {
	return zkp.Definition{
		ID:       "Ff8h9Bg:3:CL:Ff8h9Bg:2:mdl:1.0:default",
		SchemaID: "Ff8h9Bg:2:mdl:1.0",
		Type:     "CL",
		Tag:      "default",
		Value:    `{"primary":{}}`,
	}
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	log     *events.InMemoryLog
	service *zkp.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.log = events.NewInMemoryLog()
	s.service = zkp.New(store.NewInMemory(), zkp.WithEmitter(events.NewPublisher(s.log)))
}

func (s *ServiceSuite) TestSetupEmitsOnce() {
	s.Require().NoError(s.service.Setup(s.ctx))
	s.True(dErrors.HasCode(s.service.Setup(s.ctx), dErrors.CodePrecondition))

	recent, err := s.log.ListRecent(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal(events.ZKPStorageSetup, recent[0].Name)
}

func (s *ServiceSuite) TestSchemaLifecycle() {
	l, err := s.service.GetSchema(s.ctx, sampleSchema().ID)
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeMissing, l.Outcome)
	s.Empty(l.Record.ID)

	s.Require().NoError(s.service.RegisterSchema(s.ctx, sampleSchema()))
	l, err = s.service.GetSchema(s.ctx, sampleSchema().ID)
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeFound, l.Outcome)
	s.Equal(sampleSchema(), l.Record)

	s.Require().NoError(s.service.RemoveSchema(s.ctx, sampleSchema().ID))
	l, err = s.service.GetSchema(s.ctx, sampleSchema().ID)
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeRemoved, l.Outcome)
	s.Empty(l.Record.ID)

	s.Require().NoError(s.service.RegisterSchema(s.ctx, sampleSchema()))
	l, err = s.service.GetSchema(s.ctx, sampleSchema().ID)
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeFound, l.Outcome, "re-registration revives a removed id")
}

func (s *ServiceSuite) TestRemoveAbsentIsNoop() {
	s.Require().NoError(s.service.RemoveSchema(s.ctx, "never"))
	s.Require().NoError(s.service.RemoveCredentialDefinition(s.ctx, "never"))

	l, err := s.service.GetCredentialDefinition(s.ctx, "never")
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeMissing, l.Outcome)
}

func (s *ServiceSuite) TestDefinitionDoesNotRequireSchema() {
	s.Require().NoError(s.service.RegisterCredentialDefinition(s.ctx, sampleDefinition()))

	l, err := s.service.GetCredentialDefinition(s.ctx, sampleDefinition().ID)
	s.Require().NoError(err)
	s.Equal(sampleDefinition(), l.Record)

	s.Require().NoError(s.service.RemoveCredentialDefinition(s.ctx, sampleDefinition().ID))
	l, err = s.service.GetCredentialDefinition(s.ctx, sampleDefinition().ID)
	s.Require().NoError(err)
	s.Equal(zkp.OutcomeRemoved, l.Outcome)
	s.Empty(l.Record.ID)
}

func (s *ServiceSuite) TestValidation() {
	s.True(dErrors.HasCode(s.service.RegisterSchema(s.ctx, zkp.Schema{Name: "x"}), dErrors.CodeInvalidInput))
	s.True(dErrors.HasCode(s.service.RegisterCredentialDefinition(s.ctx, zkp.Definition{}), dErrors.CodeInvalidInput))
}

func TestLookupJSON(t *testing.T) {
	body, err := json.Marshal(zkp.Removed[zkp.Schema]())
	require.NoError(t, err)
	assert.JSONEq(t, `{"record":{"id":"","name":"","version":"","attrNames":null,"tag":""},"outcome":"removed"}`, string(body))

	var back zkp.Lookup[zkp.Schema]
	require.NoError(t, json.Unmarshal(body, &back))
	assert.Equal(t, zkp.OutcomeRemoved, back.Outcome)
}

func TestServiceRepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	svc := zkp.New(repo)
	ctx := context.Background()

	repo.EXPECT().FindSchema(gomock.Any(), "x").Return(zkp.Lookup[zkp.Schema]{}, errors.New("conn refused"))
	l, err := svc.GetSchema(ctx, "x")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Equal(t, zkp.OutcomeMissing, l.Outcome)

	repo.EXPECT().RemoveDefinition(gomock.Any(), "x").Return(errors.New("conn refused"))
	assert.True(t, dErrors.HasCode(svc.RemoveCredentialDefinition(ctx, "x"), dErrors.CodeInternal))
}
