package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/MKhiriev/galaxy-admin/internal/adapter"
	"github.com/MKhiriev/galaxy-admin/internal/logger"
	"github.com/MKhiriev/galaxy-admin/internal/store"
	"github.com/MKhiriev/galaxy-admin/internal/validators"
	"github.com/MKhiriev/galaxy-admin/models"
)

// QuotaRequestHeader is written to the request file once it was applied.
const QuotaRequestHeader = "#email\tamount\texpiration dd.mm.yyy\n"

// DefaultReminderWindow is how long before expiry users are reminded.
const DefaultReminderWindow = 30 * 24 * time.Hour

const (
	subjectQuotaExpiration = "UFZ Galaxy: quota expiration"
	subjectQuotaGranted    = "UFZ Galaxy: quota granted"
)

var requestValidator = validators.NewQuotaRequestValidator()

// QuotaOptions controls [QuotaService].
type QuotaOptions struct {
	Apply          bool
	ReminderWindow time.Duration
}

type quotaService struct {
	quotas   adapter.QuotaAPI
	users    adapter.UserAPI
	instance adapter.InstanceAPI
	notifier Notifier
	recorder store.Recorder
	opts     QuotaOptions
	now      func() time.Time
	logger   *logger.Logger
}

// NewQuotaService constructs a [QuotaService].
func NewQuotaService(quotas adapter.QuotaAPI, users adapter.UserAPI, instance adapter.InstanceAPI,
	notifier Notifier, recorder store.Recorder, opts QuotaOptions, log *logger.Logger) QuotaService {
	if opts.ReminderWindow <= 0 {
		opts.ReminderWindow = DefaultReminderWindow
	}
	return &quotaService{
		quotas:   quotas,
		users:    users,
		instance: instance,
		notifier: notifier,
		recorder: recorder,
		opts:     opts,
		now:      time.Now,
		logger:   log,
	}
}

// Sync implements [QuotaService].
func (s *quotaService) Sync(ctx context.Context, requestFile string) (models.QuotaReport, error) {
	var report models.QuotaReport

	version, err := s.instance.GetVersion(ctx)
	if err != nil {
		return report, fmt.Errorf("get version: %w", err)
	}
	whoami, err := s.instance.Whoami(ctx)
	if err != nil {
		return report, fmt.Errorf("whoami: %w", err)
	}
	s.logger.Debug().Msgf("Connected as %s (%s)", whoami.Username, version)

	users, err := s.users.GetUsers(ctx, "")
	if err != nil {
		return report, fmt.Errorf("list users: %w", err)
	}
	byEmail := make(map[string]models.User, len(users))
	for _, u := range users {
		byEmail[u.Email] = u
	}

	audit := beginAudit(ctx, s.recorder, "quota sync", !s.opts.Apply, s.logger)
	defer audit.finish(ctx)

	byUser, err := s.expire(ctx, audit, &report)
	if err != nil {
		return report, err
	}

	requests, err := readQuotaRequests(requestFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug().Msgf("no such file: %s", requestFile)
		return report, nil
	case err != nil:
		return report, err
	}

	for _, req := range requests {
		user, ok := byEmail[req.Email]
		if !ok {
			s.logger.Error().Msgf("No such user: %s", req.Email)
			continue
		}
		if err = s.grant(ctx, audit, user, req, byUser, &report); err != nil {
			return report, err
		}
	}

	if s.opts.Apply {
		if err = os.WriteFile(requestFile, []byte(QuotaRequestHeader), 0o644); err != nil {
			return report, fmt.Errorf("reset quota request file: %w", err)
		}
	}
	return report, nil
}

// expire walks the single-user quotas, deletes expired ones and reminds
// users of upcoming expiry. It returns the quotas indexed by user email.
func (s *quotaService) expire(ctx context.Context, audit *auditTrail, report *models.QuotaReport) (map[string]models.Quota, error) {
	byUser := make(map[string]models.Quota)

	for _, deleted := range []bool{false, true} {
		quotas, err := s.quotas.GetQuotas(ctx, deleted)
		if err != nil {
			return nil, fmt.Errorf("list quotas: %w", err)
		}

		for _, q := range quotas {
			quota, err := s.quotas.ShowQuota(ctx, q.ID, deleted)
			if err != nil {
				return nil, fmt.Errorf("show quota %s: %w", q.ID, err)
			}
			if quota.IsDefault() {
				continue
			}
			email, ok := quota.SingleUserEmail()
			if !ok {
				continue
			}
			quota.Deleted = deleted
			byUser[email] = quota
			if deleted {
				continue
			}

			s.logger.Debug().Msgf("Checking expiration of %s %s", quota.Name, quota.Description)
			expires, err := time.ParseInLocation(models.QuotaDateLayout, quota.Description, time.Local)
			if err != nil {
				s.logger.Error().Msgf("quota %s: description is not expiration date %s", quota.Name, quota.Description)
				continue
			}

			now := s.now()
			switch {
			case now.After(expires):
				s.logger.Error().Msgf("Quota %s (%s) expired", quota.Name, quota.DisplayAmount)
				report.Expired = append(report.Expired, email)
				audit.record(ctx, models.Action{
					Kind:     models.ActionQuotaDelete,
					TargetID: quota.ID,
					Name:     email,
					Detail:   quota.DisplayAmount,
					Applied:  s.opts.Apply,
				})
				if !s.opts.Apply {
					continue
				}
				if err = s.quotas.DeleteQuota(ctx, quota.ID); err != nil {
					return nil, fmt.Errorf("delete quota %s: %w", quota.Name, err)
				}
				quota.Deleted = true
				byUser[email] = quota
				s.notify(ctx, email, subjectQuotaExpiration,
					fmt.Sprintf("Your additional Galaxy quota of %s expired.", quota.DisplayAmount))

			case now.After(expires.Add(-s.opts.ReminderWindow)):
				days := int(expires.Sub(now).Hours() / 24)
				report.Reminders = append(report.Reminders, email)
				if !s.opts.Apply {
					s.logger.Info().Msgf("Would remind %s of quota expiry in %d days", email, days)
					continue
				}
				s.notify(ctx, email, subjectQuotaExpiration,
					fmt.Sprintf("Your additional Galaxy quota of %s will expire in %d days (on %s).",
						quota.DisplayAmount, days, quota.Description))
			}
		}
	}

	return byUser, nil
}

// grant creates the quota of user or updates the existing one, undeleting
// it first when necessary.
func (s *quotaService) grant(ctx context.Context, audit *auditTrail, user models.User, req models.QuotaRequest,
	byUser map[string]models.Quota, report *models.QuotaReport) error {
	payload := models.QuotaPayload{
		Name:        user.Username,
		Description: req.RawExpires,
		Amount:      req.Amount,
		Operation:   models.QuotaOperationAdd,
		InUsers:     []string{user.ID},
	}

	existing, update := byUser[user.Email]
	action := models.Action{
		Kind:    models.ActionQuotaGrant,
		Name:    user.Email,
		Detail:  req.Amount + " until " + req.RawExpires,
		Applied: s.opts.Apply,
	}

	if update {
		s.logger.Info().Msgf("Updating quota %s", user.Username)
		report.Updated = append(report.Updated, user.Email)
		action.TargetID = existing.ID
		audit.record(ctx, action)
		if !s.opts.Apply {
			return nil
		}

		if existing.Deleted {
			if err := s.quotas.UndeleteQuota(ctx, existing.ID); err != nil {
				return fmt.Errorf("undelete quota %s: %w", existing.Name, err)
			}
		}
		if err := s.quotas.UpdateQuota(ctx, existing.ID, payload); err != nil {
			return fmt.Errorf("update quota %s: %w", existing.Name, err)
		}
		s.notify(ctx, user.Email, subjectQuotaGranted,
			fmt.Sprintf("Your additional Galaxy quota of %s with expiration date %s has been updated.", req.Amount, req.RawExpires))
		return nil
	}

	s.logger.Info().Msgf("Creating quota %s", user.Username)
	report.Created = append(report.Created, user.Email)
	audit.record(ctx, action)
	if !s.opts.Apply {
		return nil
	}

	if err := s.quotas.CreateQuota(ctx, payload); err != nil {
		return fmt.Errorf("create quota %s: %w", user.Username, err)
	}
	s.notify(ctx, user.Email, subjectQuotaGranted,
		fmt.Sprintf("Your additional Galaxy quota of %s with expiration date %s has been added.", req.Amount, req.RawExpires))
	return nil
}

func (s *quotaService) notify(ctx context.Context, to, subject, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, to, subject, body); err != nil {
		s.logger.Error().Err(err).Msgf("Notification email could not be sent to %s", to)
	}
}

// readQuotaRequests parses the request file. Lines starting with '#' and
// blank lines are ignored; every other line holds exactly email, amount and
// expiry date separated by whitespace.
func readQuotaRequests(path string) ([]models.QuotaRequest, error) {
	if path == "" {
		return nil, fs.ErrNotExist
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var requests []models.QuotaRequest
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		req, err := parseQuotaRequest(fields)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, n, err)
		}
		requests = append(requests, req)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("read quota request file: %w", err)
	}
	return requests, nil
}

func parseQuotaRequest(fields []string) (models.QuotaRequest, error) {
	if len(fields) != 3 {
		return models.QuotaRequest{}, fmt.Errorf("%w: %q", ErrMalformedRequest, strings.Join(fields, " "))
	}

	expires, err := time.ParseInLocation(models.QuotaDateLayout, fields[2], time.Local)
	if err != nil {
		return models.QuotaRequest{}, fmt.Errorf("%w: bad expiration date %q", ErrMalformedRequest, fields[2])
	}

	req := models.QuotaRequest{Email: fields[0], Amount: fields[1], Expires: expires, RawExpires: fields[2]}
	if err = requestValidator.Validate(context.Background(), req); err != nil {
		return models.QuotaRequest{}, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
	}
	return req, nil
}
