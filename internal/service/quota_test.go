package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/mock"
	"github.com/MKhiriev/galaxy-admin/models"
)

type quotaFixture struct {
	quotas   *mock.MockQuotaAPI
	users    *mock.MockUserAPI
	instance *mock.MockInstanceAPI
	notifier *mock.MockNotifier
}

func newQuotaFixture(ctrl *gomock.Controller) *quotaFixture {
	f := &quotaFixture{
		quotas:   mock.NewMockQuotaAPI(ctrl),
		users:    mock.NewMockUserAPI(ctrl),
		instance: mock.NewMockInstanceAPI(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}
	f.instance.EXPECT().GetVersion(gomock.Any()).Return(models.Version{VersionMajor: "24.1"}, nil)
	f.instance.EXPECT().Whoami(gomock.Any()).Return(models.Whoami{Username: "admin"}, nil)
	f.users.EXPECT().GetUsers(gomock.Any(), "").Return([]models.User{
		{ID: "u-alice", Username: "alice", Email: "alice@x.org"},
		{ID: "u-bob", Username: "bob", Email: "bob@x.org"},
		{ID: "u-erin", Username: "erin", Email: "erin@x.org"},
		{ID: "u-frank", Username: "frank", Email: "frank@x.org"},
	}, nil)
	return f
}

func userQuota(id, email, description string) models.Quota {
	return models.Quota{
		ID:            id,
		Name:          id,
		Description:   description,
		DisplayAmount: "10.0 GB",
		Users:         []models.QuotaUser{{User: models.User{Email: email}}},
	}
}

// expectQuotas registers the listing used by most tests: a default quota, a
// quota shared by two users, and single-user quotas in different states.
func (f *quotaFixture) expectQuotas() {
	active := []models.Quota{
		{ID: "q-default", Default: []models.QuotaDefault{{Type: "registered"}}},
		{ID: "q-group", Users: []models.QuotaUser{{User: models.User{Email: "a@x.org"}}, {User: models.User{Email: "b@x.org"}}}},
		userQuota("q-alice", "alice@x.org", "01.03.2026"),
		userQuota("q-bob", "bob@x.org", "01.04.2026"),
		userQuota("q-carol", "carol@x.org", "soon"),
		userQuota("q-dave", "dave@x.org", "01.12.2026"),
	}
	deleted := []models.Quota{userQuota("q-erin", "erin@x.org", "01.01.2025")}

	f.quotas.EXPECT().GetQuotas(gomock.Any(), false).Return(active, nil)
	f.quotas.EXPECT().GetQuotas(gomock.Any(), true).Return(deleted, nil)
	for _, q := range active {
		f.quotas.EXPECT().ShowQuota(gomock.Any(), q.ID, false).Return(q, nil)
	}
	for _, q := range deleted {
		f.quotas.EXPECT().ShowQuota(gomock.Any(), q.ID, true).Return(q, nil)
	}
}

func (f *quotaFixture) service(apply bool) QuotaService {
	svc := NewQuotaService(f.quotas, f.users, f.instance, f.notifier, nil, QuotaOptions{Apply: apply}, logger.Nop())
	svc.(*quotaService).now = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func writeRequests(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quota.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleRequests = QuotaRequestHeader + `
erin@x.org	20G	01.01.2027
frank@x.org 5G  01.06.2026
nobody@x.org	1G	01.01.2027
`

func TestQuotaSync_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQuotaFixture(ctrl)
	f.expectQuotas()
	path := writeRequests(t, sampleRequests)

	f.quotas.EXPECT().DeleteQuota(gomock.Any(), "q-alice").Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), "alice@x.org", subjectQuotaExpiration,
		"Your additional Galaxy quota of 10.0 GB expired.").Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), "bob@x.org", subjectQuotaExpiration,
		"Your additional Galaxy quota of 10.0 GB will expire in 16 days (on 01.04.2026).").Return(nil)

	gomock.InOrder(
		f.quotas.EXPECT().UndeleteQuota(gomock.Any(), "q-erin").Return(nil),
		f.quotas.EXPECT().UpdateQuota(gomock.Any(), "q-erin", models.QuotaPayload{
			Name: "erin", Description: "01.01.2027", Amount: "20G", Operation: "+", InUsers: []string{"u-erin"},
		}).Return(nil),
	)
	f.notifier.EXPECT().Notify(gomock.Any(), "erin@x.org", subjectQuotaGranted, gomock.Any()).Return(nil)
	f.quotas.EXPECT().CreateQuota(gomock.Any(), models.QuotaPayload{
		Name: "frank", Description: "01.06.2026", Amount: "5G", Operation: "+", InUsers: []string{"u-frank"},
	}).Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), "frank@x.org", subjectQuotaGranted,
		"Your additional Galaxy quota of 5G with expiration date 01.06.2026 has been added.").Return(nil)

	report, err := f.service(true).Sync(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, models.QuotaReport{
		Expired:   []string{"alice@x.org"},
		Reminders: []string{"bob@x.org"},
		Created:   []string{"frank@x.org"},
		Updated:   []string{"erin@x.org"},
	}, report)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, QuotaRequestHeader, string(content))
}

func TestQuotaSync_DryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQuotaFixture(ctrl)
	f.expectQuotas()
	path := writeRequests(t, sampleRequests)

	report, err := f.service(false).Sync(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice@x.org"}, report.Expired)
	assert.Equal(t, []string{"erin@x.org"}, report.Updated)
	assert.Equal(t, []string{"frank@x.org"}, report.Created)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRequests, string(content))
}

func TestQuotaSync_NotificationFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQuotaFixture(ctrl)
	f.expectQuotas()
	f.quotas.EXPECT().DeleteQuota(gomock.Any(), "q-alice").Return(nil)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused")).Times(2)

	report, err := f.service(true).Sync(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@x.org"}, report.Expired)
}

func TestQuotaSync_MissingRequestFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQuotaFixture(ctrl)
	f.quotas.EXPECT().GetQuotas(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	report, err := f.service(true).Sync(context.Background(), filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, report.Created)
}

func TestQuotaSync_MalformedRequest(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too few fields", content: "alice@x.org 10G\n"},
		{name: "too many fields", content: "alice@x.org 10G 01.01.2027 extra\n"},
		{name: "bad date", content: "alice@x.org 10G 2027-01-01\n"},
		{name: "bad email", content: "alice 10G 01.01.2027\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newQuotaFixture(ctrl)
			f.quotas.EXPECT().GetQuotas(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

			_, err := f.service(true).Sync(context.Background(), writeRequests(t, tt.content))
			assert.ErrorIs(t, err, ErrMalformedRequest)
		})
	}
}

func TestQuotaSync_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newQuotaFixture(ctrl)
	f.quotas.EXPECT().GetQuotas(gomock.Any(), false).Return(nil, errors.New("boom"))

	_, err := f.service(true).Sync(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list quotas")
}

func TestReadQuotaRequests(t *testing.T) {
	path := writeRequests(t, "# comment\n\n   \nalice@x.org\t10G\t31.12.2026\n")

	requests, err := readQuotaRequests(path)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "alice@x.org", requests[0].Email)
	assert.Equal(t, "10G", requests[0].Amount)
	assert.Equal(t, "31.12.2026", requests[0].RawExpires)
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.Local), requests[0].Expires)
}
