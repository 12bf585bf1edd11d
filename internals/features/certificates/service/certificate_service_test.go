package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"dengueapp_backend/internals/features/certificates/model"
	"dengueapp_backend/internals/features/certificates/repository"
	attemptModel "dengueapp_backend/internals/features/quiz/attempts/model"
	userService "dengueapp_backend/internals/features/users/user/service"
	"dengueapp_backend/internals/helpers/apperr"
	"dengueapp_backend/internals/platform/pdfgen"
)

// =============================
// fakes em memória
// =============================

type fakeCertStore struct {
	certs map[uuid.UUID]*model.CertificateModel
}

func newFakeCertStore() *fakeCertStore {
	return &fakeCertStore{certs: make(map[uuid.UUID]*model.CertificateModel)}
}

func (f *fakeCertStore) WithinTx(ctx context.Context, fn func(tx repository.CertificateStore) error) error {
	return fn(f)
}

func (f *fakeCertStore) Create(ctx context.Context, cert *model.CertificateModel) error {
	for _, c := range f.certs {
		if c.CertificateUserID == cert.CertificateUserID && c.IsActive() {
			return repository.ErrActiveCertificateExists
		}
	}
	cert.CertificateID = uuid.New()
	cp := *cert
	f.certs[cert.CertificateID] = &cp
	return nil
}

func (f *fakeCertStore) ByID(ctx context.Context, id uuid.UUID) (*model.CertificateModel, error) {
	c, ok := f.certs[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCertStore) ByCode(ctx context.Context, code string) (*model.CertificateModel, error) {
	for _, c := range f.certs {
		if c.CertificateVerificationCode == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCertStore) ActiveByUser(ctx context.Context, userID uuid.UUID) (*model.CertificateModel, error) {
	for _, c := range f.certs {
		if c.CertificateUserID == userID && c.IsActive() {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCertStore) Update(ctx context.Context, cert *model.CertificateModel) error {
	cp := *cert
	f.certs[cert.CertificateID] = &cp
	return nil
}

func (f *fakeCertStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.CertificateModel, error) {
	var out []model.CertificateModel
	for _, c := range f.certs {
		if c.CertificateUserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeAttemptStore struct {
	attempts map[uuid.UUID]*attemptModel.QuizAttemptModel
}

func (f *fakeAttemptStore) Create(ctx context.Context, a *attemptModel.QuizAttemptModel) error {
	f.attempts[a.QuizAttemptID] = a
	return nil
}

func (f *fakeAttemptStore) ByID(ctx context.Context, id uuid.UUID) (*attemptModel.QuizAttemptModel, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttemptStore) Update(ctx context.Context, a *attemptModel.QuizAttemptModel) error {
	f.attempts[a.QuizAttemptID] = a
	return nil
}

func (f *fakeAttemptStore) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]attemptModel.QuizAttemptModel, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttemptStore) CreateAnswer(ctx context.Context, ans *attemptModel.QuizUserAnswerModel) error {
	return nil
}

func (f *fakeAttemptStore) AnswersByAttempt(ctx context.Context, attemptID uuid.UUID) ([]attemptModel.QuizUserAnswerModel, error) {
	return nil, nil
}

type fakeProfiles struct {
	profiles map[uuid.UUID]userService.Profile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, userID uuid.UUID) (userService.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return userService.Profile{}, apperr.NotFound("Usuário não encontrado")
	}
	return p, nil
}

type fakeBlob struct {
	blobs   map[string][]byte
	deleted []string
	seq     int
}

func newFakeBlob() *fakeBlob { return &fakeBlob{blobs: make(map[string][]byte)} }

func (f *fakeBlob) Put(ctx context.Context, data []byte, filename string) (string, error) {
	f.seq++
	key := fmt.Sprintf("certificados/%d/%s", f.seq, filename)
	f.blobs[key] = data
	return key, nil
}

func (f *fakeBlob) Get(ctx context.Context, blobID string) ([]byte, error) {
	data, ok := f.blobs[blobID]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (f *fakeBlob) Delete(ctx context.Context, blobID string) error {
	delete(f.blobs, blobID)
	f.deleted = append(f.deleted, blobID)
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(data pdfgen.CertificateData) ([]byte, error) {
	return []byte("%PDF " + data.VerificationCode), nil
}

type fakeEvents struct{ published []string }

func (f *fakeEvents) Publish(eventType string, payload interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}

// =============================
// cenário base
// =============================

type certFixture struct {
	svc      *CertificateService
	certs    *fakeCertStore
	attempts *fakeAttemptStore
	blob     *fakeBlob
	events   *fakeEvents
	userID   uuid.UUID
}

func newCertFixture(t *testing.T) *certFixture {
	t.Helper()
	userID := uuid.New()
	certs := newFakeCertStore()
	attempts := &fakeAttemptStore{attempts: make(map[uuid.UUID]*attemptModel.QuizAttemptModel)}
	blob := newFakeBlob()
	events := &fakeEvents{}

	svc := NewCertificateService(
		certs,
		attempts,
		&fakeProfiles{profiles: map[uuid.UUID]userService.Profile{
			userID: {Name: "Maria Silva", Email: "maria@example.com"},
		}},
		blob,
		fakeRenderer{},
		events,
		80.0,
		"salt-de-teste",
	)
	return &certFixture{svc: svc, certs: certs, attempts: attempts, blob: blob, events: events, userID: userID}
}

func (fx *certFixture) addCompletedAttempt(score float64) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	fx.attempts.attempts[id] = &attemptModel.QuizAttemptModel{
		QuizAttemptID:             id,
		QuizAttemptUserID:         fx.userID,
		QuizAttemptStatus:         attemptModel.AttemptStatusCompleted,
		QuizAttemptScore:          score,
		QuizAttemptTotalQuestions: 10,
		QuizAttemptCorrectAnswers: int(score / 10),
		QuizAttemptCompletedAt:    &now,
	}
	return id
}

// =============================
// Generate
// =============================

func TestGenerateBelowPassingScore(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(70.0)

	_, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if !apperr.IsInvalidState(err) {
		t.Fatalf("err = %v, want InvalidState", err)
	}
}

func TestGenerateInProgressAttempt(t *testing.T) {
	fx := newCertFixture(t)
	id := uuid.New()
	fx.attempts.attempts[id] = &attemptModel.QuizAttemptModel{
		QuizAttemptID:     id,
		QuizAttemptUserID: fx.userID,
		QuizAttemptStatus: attemptModel.AttemptStatusInProgress,
	}

	_, err := fx.svc.Generate(context.Background(), fx.userID, id)
	if !apperr.IsInvalidState(err) {
		t.Fatalf("err = %v, want InvalidState", err)
	}
}

func TestGenerateOtherUsersAttempt(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	_, err := fx.svc.Generate(context.Background(), uuid.New(), attemptID)
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestGenerateHappyPath(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	cert, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if cert.Status != model.CertificateStatusActive {
		t.Errorf("Status = %s, want active", cert.Status)
	}
	if cert.Score != 90.0 {
		t.Errorf("Score = %v, want 90.0", cert.Score)
	}
	if cert.UserName != "Maria Silva" {
		t.Errorf("UserName = %q", cert.UserName)
	}
	if _, ok := fx.blob.blobs[cert.PdfURL]; !ok {
		t.Error("PDF blob was not stored")
	}
	if len(fx.events.published) != 1 || fx.events.published[0] != "certificate.issued" {
		t.Errorf("published events = %v", fx.events.published)
	}
}

// brokenBlob simula o storage fora do ar.
type brokenBlob struct{}

func (brokenBlob) Put(ctx context.Context, data []byte, filename string) (string, error) {
	return "", errors.New("oss: connection refused")
}
func (brokenBlob) Get(ctx context.Context, blobID string) ([]byte, error) { return nil, nil }
func (brokenBlob) Delete(ctx context.Context, blobID string) error        { return nil }

func TestGenerateBlobUploadFailure(t *testing.T) {
	fx := newCertFixture(t)
	fx.svc.Blob = brokenBlob{}
	attemptID := fx.addCompletedAttempt(90.0)

	_, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if apperr.KindOf(err) != apperr.KindDependency {
		t.Fatalf("err = %v, want Dependency", err)
	}
	if len(fx.certs.certs) != 0 {
		t.Errorf("store has %d certificates, want 0", len(fx.certs.certs))
	}
	if len(fx.events.published) != 0 {
		t.Errorf("published %d events, want 0", len(fx.events.published))
	}
}

func TestGenerateIdempotentForSameAttempt(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	first, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if first.CertificateID != second.CertificateID {
		t.Errorf("second Generate issued a new certificate: %s vs %s", first.CertificateID, second.CertificateID)
	}
	if len(fx.certs.certs) != 1 {
		t.Errorf("store has %d certificates, want 1", len(fx.certs.certs))
	}
	if len(fx.events.published) != 1 {
		t.Errorf("published %d events, want 1", len(fx.events.published))
	}
}

func TestGenerateSupersedesLowerScore(t *testing.T) {
	fx := newCertFixture(t)
	oldAttempt := fx.addCompletedAttempt(80.0)
	newAttempt := fx.addCompletedAttempt(95.0)

	oldCert, err := fx.svc.Generate(context.Background(), fx.userID, oldAttempt)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	oldBlobID := oldCert.PdfURL

	newCert, err := fx.svc.Generate(context.Background(), fx.userID, newAttempt)
	if err != nil {
		t.Fatalf("superseding Generate: %v", err)
	}
	if newCert.Score != 95.0 {
		t.Errorf("new Score = %v, want 95.0", newCert.Score)
	}

	stored, _ := fx.certs.ByID(context.Background(), uuid.MustParse(oldCert.CertificateID))
	if stored.IsActive() {
		t.Error("superseded certificate is still active")
	}
	if stored.CertificateRevokeReason == "" {
		t.Error("superseded certificate has no revoke reason")
	}

	found := false
	for _, d := range fx.blob.deleted {
		if d == oldBlobID {
			found = true
		}
	}
	if !found {
		t.Error("superseded PDF blob was not deleted")
	}
}

func TestGenerateRejectedWhenScoreNotHigher(t *testing.T) {
	fx := newCertFixture(t)
	bestAttempt := fx.addCompletedAttempt(95.0)
	worseAttempt := fx.addCompletedAttempt(80.0)
	equalAttempt := fx.addCompletedAttempt(95.0)

	if _, err := fx.svc.Generate(context.Background(), fx.userID, bestAttempt); err != nil {
		t.Fatalf("first Generate: %v", err)
	}

	if _, err := fx.svc.Generate(context.Background(), fx.userID, worseAttempt); !apperr.IsConflict(err) {
		t.Fatalf("lower-score Generate err = %v, want Conflict", err)
	}
	if _, err := fx.svc.Generate(context.Background(), fx.userID, equalAttempt); !apperr.IsConflict(err) {
		t.Fatalf("equal-score Generate err = %v, want Conflict", err)
	}
	if len(fx.certs.certs) != 1 {
		t.Errorf("store has %d certificates, want 1", len(fx.certs.certs))
	}
}

// =============================
// Verify
// =============================

func TestVerifyUnknownCode(t *testing.T) {
	fx := newCertFixture(t)

	resp, err := fx.svc.Verify(context.Background(), "CERT-DEADBEEF0000-000000")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if resp.IsValid {
		t.Error("unknown code reported as valid")
	}
}

func TestVerifyActiveAndRevoked(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	cert, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	resp, err := fx.svc.Verify(context.Background(), cert.VerificationCode)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !resp.IsValid {
		t.Fatalf("active certificate reported invalid: %s", resp.Message)
	}
	if resp.UserName != "Maria Silva" {
		t.Errorf("UserName = %q", resp.UserName)
	}

	if _, err := fx.svc.Revoke(context.Background(), uuid.MustParse(cert.CertificateID), "fraude"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	resp, err = fx.svc.Verify(context.Background(), cert.VerificationCode)
	if err != nil {
		t.Fatalf("Verify after revoke: %v", err)
	}
	if resp.IsValid {
		t.Error("revoked certificate reported as valid")
	}
	if resp.Status != model.CertificateStatusRevoked {
		t.Errorf("Status = %s, want revoked", resp.Status)
	}
}

// =============================
// Revoke / Download
// =============================

func TestRevokeTwice(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	cert, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	certID := uuid.MustParse(cert.CertificateID)

	if _, err := fx.svc.Revoke(context.Background(), certID, "denúncia"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := fx.svc.Revoke(context.Background(), certID, "de novo"); !apperr.IsInvalidState(err) {
		t.Fatalf("second Revoke err = %v, want InvalidState", err)
	}

	// revogação administrativa NÃO apaga o PDF
	if _, ok := fx.blob.blobs[cert.PdfURL]; !ok {
		t.Error("admin revoke deleted the PDF blob")
	}
}

func TestDownload(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	cert, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	certID := uuid.MustParse(cert.CertificateID)

	data, filename, err := fx.svc.Download(context.Background(), fx.userID, certID)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty PDF payload")
	}
	if filename == "" {
		t.Error("empty filename")
	}

	// outro usuário não enxerga o certificado
	if _, _, err := fx.svc.Download(context.Background(), uuid.New(), certID); !apperr.IsNotFound(err) {
		t.Fatalf("foreign Download err = %v, want NotFound", err)
	}

	// revogado não baixa
	if _, err := fx.svc.Revoke(context.Background(), certID, "fraude"); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, _, err := fx.svc.Download(context.Background(), fx.userID, certID); !apperr.IsInvalidState(err) {
		t.Fatalf("revoked Download err = %v, want InvalidState", err)
	}
}

func TestDownloadMissingBlob(t *testing.T) {
	fx := newCertFixture(t)
	attemptID := fx.addCompletedAttempt(90.0)

	cert, err := fx.svc.Generate(context.Background(), fx.userID, attemptID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	delete(fx.blob.blobs, cert.PdfURL)

	_, _, err = fx.svc.Download(context.Background(), fx.userID, uuid.MustParse(cert.CertificateID))
	if !apperr.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}
