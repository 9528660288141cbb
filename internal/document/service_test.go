package document_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"opendid/internal/document"
	"opendid/internal/document/mocks"
	"opendid/internal/document/store"
	"opendid/internal/events"
	"opendid/pkg/domain"
	dErrors "opendid/pkg/domain-errors"
	"opendid/pkg/platform/sentinel"
	"opendid/pkg/requestcontext"
)

var submitter = domain.MustParseAddress("0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb")

func newDocument(id, version string) document.Document {
	return document.Document{
		Context:    []string{"https://www.w3.org/ns/did/v1"},
		ID:         id,
		Controller: id,
		VersionID:  version,
		VerificationMethod: []document.VerificationMethod{{
			ID:                 "pin",
			Type:               "Secp256r1VerificationKey2018",
			Controller:         id,
			AuthType:           2,
			PublicKeyMultibase: "mSGVsbG8sIE11bHRpYmFzZSE=",
		}},
	}
}

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	log     *events.InMemoryLog
	service *document.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = requestcontext.WithCaller(context.Background(), submitter)
	s.ctx = requestcontext.WithTime(s.ctx, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	s.log = events.NewInMemoryLog()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = document.New(store.NewInMemory(),
		document.WithLogger(logger),
		document.WithEmitter(events.NewPublisher(s.log, events.WithLogger(logger))),
	)
}

func (s *ServiceSuite) names() []events.Name {
	recent, err := s.log.ListRecent(s.ctx, 0)
	s.Require().NoError(err)
	out := make([]events.Name, 0, len(recent))
	for _, e := range recent {
		out = append(out, e.Name)
	}
	return out
}

func (s *ServiceSuite) TestSetupOnce() {
	ok, err := s.service.HasInitialized(s.ctx)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.service.Setup(s.ctx))
	err = s.service.Setup(s.ctx)
	s.True(dErrors.HasCode(err, dErrors.CodePrecondition))

	ok, err = s.service.HasInitialized(s.ctx)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]events.Name{events.DocumentStorageSetup}, s.names())
}

func (s *ServiceSuite) TestRegisterAndGet() {
	doc := newDocument("did:omn:issuer", "1")
	doc.Deactivated = true
	s.Require().NoError(s.service.Register(s.ctx, doc, submitter))

	rec, err := s.service.Get(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal(document.StatusActive, rec.Status)
	s.False(rec.Document.Deactivated)
	s.Equal(doc.VerificationMethod, rec.Document.VerificationMethod)

	status, err := s.service.GetStatus(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal(document.StatusRecord{ID: doc.ID, Status: document.StatusActive, Version: "1"}, status)

	recent, err := s.log.ListRecent(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(events.DocumentRegistered, recent[0].Name)
	s.Equal(submitter, recent[0].Actor)
}

func (s *ServiceSuite) TestRegisterRejectsDuplicates() {
	doc := newDocument("did:omn:issuer", "1")
	s.Require().NoError(s.service.Register(s.ctx, doc, submitter))

	err := s.service.Register(s.ctx, newDocument("did:omn:issuer", "2"), submitter)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal("Document already exists", dErrors.MessageOf(err))

	rec, err := s.service.Get(s.ctx, doc.ID)
	s.Require().NoError(err)
	s.Equal("1", rec.Document.VersionID)
}

func (s *ServiceSuite) TestUnknownDocument() {
	_, err := s.service.Get(s.ctx, "did:omn:missing")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal("Document does not exist", dErrors.MessageOf(err))

	_, err = s.service.GetStatus(s.ctx, "did:omn:missing")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.service.Update(s.ctx, newDocument("did:omn:missing", "2"), "did:omn:missing", "2")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.service.UpdateStatus(s.ctx, document.StatusRecord{Status: document.StatusRevoked}, "did:omn:missing")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	err = s.service.Remove(s.ctx, "did:omn:missing")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestUpdate() {
	s.Require().NoError(s.service.Register(s.ctx, newDocument("did:omn:tas", "1"), submitter))

	s.Run("mismatched version is rejected", func() {
		err := s.service.Update(s.ctx, newDocument("did:omn:tas", "2"), "did:omn:tas", "3")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("mismatched id is rejected", func() {
		err := s.service.Update(s.ctx, newDocument("did:omn:tas", "2"), "did:omn:other", "2")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("replaces document and version", func() {
		s.Require().NoError(s.service.Update(s.ctx, newDocument("did:omn:tas", "2"), "did:omn:tas", "2"))
		rec, err := s.service.Get(s.ctx, "did:omn:tas")
		s.Require().NoError(err)
		s.Equal("2", rec.Document.VersionID)

		status, err := s.service.GetStatus(s.ctx, "did:omn:tas")
		s.Require().NoError(err)
		s.Equal("2", status.Version)
	})

	s.Run("terminated documents are frozen", func() {
		s.Require().NoError(s.service.UpdateStatus(s.ctx, document.StatusRecord{Status: document.StatusTerminated}, "did:omn:tas"))
		err := s.service.Update(s.ctx, newDocument("did:omn:tas", "3"), "did:omn:tas", "3")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))
	})
}

func (s *ServiceSuite) TestStatusLifecycle() {
	id := "did:omn:holder"
	s.Require().NoError(s.service.Register(s.ctx, newDocument(id, "1"), submitter))

	s.Require().NoError(s.service.UpdateStatus(s.ctx, document.StatusRecord{Status: document.StatusDeactivated}, id))
	rec, err := s.service.Get(s.ctx, id)
	s.Require().NoError(err)
	s.True(rec.Document.Deactivated)

	err = s.service.UpdateStatus(s.ctx, document.StatusRecord{Status: document.StatusActive}, id)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))

	s.Require().NoError(s.service.UpdateStatus(s.ctx, document.StatusRecord{
		Status:         document.StatusTerminated,
		TerminatedTime: "2026-03-01T00:00:00Z",
	}, id))
	status, err := s.service.GetStatus(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(document.StatusTerminated, status.Status)
	s.Equal("2026-03-01T00:00:00Z", status.TerminatedTime)

	err = s.service.UpdateStatus(s.ctx, document.StatusRecord{Status: document.StatusTerminated}, id)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidTransition))

	err = s.service.UpdateStatus(s.ctx, document.StatusRecord{ID: "did:omn:other", Status: document.StatusTerminated}, id)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestRemove() {
	s.Require().NoError(s.service.Register(s.ctx, newDocument("did:omn:gone", "1"), submitter))
	s.Require().NoError(s.service.Remove(s.ctx, "did:omn:gone"))

	_, err := s.service.GetStatus(s.ctx, "did:omn:gone")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Equal([]events.Name{events.DocumentRegistered, events.DocumentRemoved}, s.names())
}

func TestServiceRepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().ID().Return("ns-1").AnyTimes()
	svc := document.New(repo)
	ctx := context.Background()

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
	err := svc.Register(ctx, newDocument("did:omn:x", "1"), submitter)
	if !dErrors.HasCode(err, dErrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}

	repo.EXPECT().Modify(gomock.Any(), "did:omn:x", gomock.Any()).Return(nil, sentinel.ErrNotFound)
	err = svc.UpdateStatus(ctx, document.StatusRecord{Status: document.StatusRevoked}, "did:omn:x")
	if !dErrors.HasCode(err, dErrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	repo.EXPECT().MarkSetup(gomock.Any()).Return(false, errors.New("disk full"))
	err = svc.Setup(ctx)
	if !dErrors.HasCode(err, dErrors.CodeInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
