package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/galaxy-admin/internal/notify"
	"github.com/MKhiriev/galaxy-admin/internal/service"
	"github.com/MKhiriev/galaxy-admin/internal/store"
)

func (a *App) quotaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quota",
		Short: "Single-user quota maintenance",
	}
	cmd.AddCommand(a.quotaSyncCommand())
	return cmd
}

func (a *App) quotaSyncCommand() *cobra.Command {
	var (
		file string
		opts service.QuotaOptions
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Expire due quotas and grant requested ones",
		Long: `Deletes single-user quotas whose expiry date has passed, reminds users of
quotas expiring soon, and grants the requests listed in --file. Each request
line holds an email, an amount such as "500G" and an expiry date (DD.MM.YYYY).

Notifications are mailed only with --apply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.galaxy()
			if err != nil {
				return err
			}

			var notifier service.Notifier
			if opts.Apply {
				smtp, err := a.cfg.SMTPView()
				if err != nil {
					return err
				}
				notifier = notify.NewSMTPNotifier(smtp, a.log)
			}

			return a.withRecorder(cmd.Context(), func(rec store.Recorder) error {
				report, err := service.NewQuotaService(g, g, g, notifier, rec, opts, a.log).Sync(cmd.Context(), file)
				if err != nil {
					return err
				}

				for _, group := range []struct {
					title  string
					emails []string
				}{
					{"expired", report.Expired},
					{"reminded", report.Reminders},
					{"created", report.Created},
					{"updated", report.Updated},
				} {
					for _, email := range group.emails {
						a.printf("%s %s\n", group.title, email)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "File with quota requests; emptied after they were applied")
	cmd.Flags().BoolVar(&opts.Apply, "apply", false, "Perform the changes and send notifications")
	cmd.Flags().DurationVar(&opts.ReminderWindow, "remind-within", service.DefaultReminderWindow,
		"Remind users of quotas expiring within this period")
	return cmd
}
