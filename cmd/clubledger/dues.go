package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjoh/clubledger/internal/adapter/googleclient"
	"github.com/sjoh/clubledger/internal/adapter/noticefile"
	pgrepo "github.com/sjoh/clubledger/internal/adapter/repository/postgres"
	"github.com/sjoh/clubledger/internal/adapter/sheets"
	slackadapter "github.com/sjoh/clubledger/internal/adapter/slack"
	"github.com/sjoh/clubledger/internal/domain"
	"github.com/sjoh/clubledger/internal/infrastructure/googleauth"
	pginfra "github.com/sjoh/clubledger/internal/infrastructure/postgres"
	"github.com/sjoh/clubledger/internal/usecase"
)

func newDuesCmd() *cobra.Command {
	var (
		excludeTracks  []string
		excludePersons []string
		sendDM         bool
		asOfArg        string
	)

	cmd := &cobra.Command{
		Use:   "dues",
		Short: "Check member dues and generate arrears notices",
		Long: "Compares every member against the payment document, computes arrears\n" +
			"from the billing rules, and writes one notice file per member in\n" +
			"arrears. With --send-dm the notices are also delivered over Slack.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDues(cmd.Context(), excludeTracks, excludePersons, sendDM, asOfArg)
		},
	}

	cmd.Flags().StringArrayVarP(&excludeTracks, "exclude-track", "e", nil,
		"track to exclude, repeatable, comma-separated values allowed")
	cmd.Flags().StringArrayVarP(&excludePersons, "exclude-person", "p", nil,
		"person to exclude as name_track, repeatable, comma-separated values allowed")
	cmd.Flags().BoolVar(&sendDM, "send-dm", false, "deliver notices as Slack direct messages")
	cmd.Flags().StringVar(&asOfArg, "as-of", "",
		"cutoff date as YYYY-MM-DD, defaults to the last day of the previous month")
	return cmd
}

// splitCSV flattens repeatable flag values that may carry comma lists.
func splitCSV(args []string) []string {
	var out []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// resolveAsOf picks the cutoff date: an explicit date, or the last day of
// the month before now. Dues for the running month are never chased.
func resolveAsOf(arg string, now time.Time) (time.Time, error) {
	if arg != "" {
		t, err := time.Parse("2006-01-02", arg)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --as-of date %q: %w", arg, err)
		}
		return t, nil
	}
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfMonth.AddDate(0, 0, -1), nil
}

func runDues(ctx context.Context, excludeTracks, excludePersons []string, sendDM bool, asOfArg string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if a.cfg.FeeSheetURL == "" {
		return fmt.Errorf("FEE_SHEET_URL is not set")
	}
	if sendDM {
		switch {
		case a.cfg.SlackBotToken == "":
			return fmt.Errorf("--send-dm requires SLACK_BOT_TOKEN")
		case a.cfg.SlackSenderID == "":
			return fmt.Errorf("--send-dm requires SLACK_SENDER_ID")
		case a.cfg.SenderName == "":
			return fmt.Errorf("--send-dm requires SENDER_NAME")
		case a.cfg.SenderPhone == "":
			return fmt.Errorf("--send-dm requires SENDER_PHONE")
		}
	}

	asOf, err := resolveAsOf(asOfArg, time.Now())
	if err != nil {
		return err
	}

	templateBody, err := os.ReadFile(a.cfg.NoticeTemplateFile)
	if err != nil {
		return fmt.Errorf("read notice template: %w", err)
	}

	svcs, err := googleauth.New(ctx, a.cfg.GoogleCredentialFile)
	if err != nil {
		return err
	}
	retrier := googleclient.NewRetrier(a.log)

	connectCtx, cancel := context.WithTimeout(ctx, a.cfg.DatabaseTimeout)
	pool, err := pginfra.NewPool(connectCtx, a.cfg.DatabaseURL, a.cfg.DatabaseMaxConns, a.cfg.DatabaseMinConns)
	cancel()
	if err != nil {
		return fmt.Errorf("connect member database: %w", err)
	}
	defer pool.Close()

	timeline := domain.DefaultTimeline()
	payments := sheets.NewPaymentSource(svcs.Sheets, retrier, timeline, a.cfg.FeeSheetURL,
		domain.YearMonthOf(asOf), a.log)
	archive := noticefile.NewArchive(a.cfg.NoticeOutputDir, domain.YearMonthOf(time.Now()), a.log)

	var sender usecase.NoticeSender
	if sendDM {
		sender = slackadapter.NewSender(a.cfg.SlackBotToken, a.log)
	}

	template := domain.NoticeTemplate{
		Body:        string(templateBody),
		SenderName:  a.cfg.SenderName,
		SenderPhone: a.cfg.SenderPhone,
		FeeSheetURL: a.cfg.FeeSheetURL,
	}
	archiveMention := "{멘션}"
	if a.cfg.SenderName != "" {
		archiveMention = "@" + a.cfg.SenderName
	}

	uc := usecase.NewDuesUseCase(
		pgrepo.NewMemberRepository(pool),
		payments,
		timeline,
		template,
		archive,
		sender,
		pgrepo.NewULIDGenerator(),
		a.log,
	)

	report, err := uc.Run(ctx, usecase.DuesInput{
		AsOf:            asOf,
		ExcludedTracks:  splitCSV(excludeTracks),
		ExcludedMembers: splitCSV(excludePersons),
		ArchiveMention:  archiveMention,
		DeliverMention:  "<@" + a.cfg.SlackSenderID + ">",
		Deliver:         sendDM,
	})
	if err != nil {
		a.pushMetrics("clubledger_dues")
		return err
	}

	a.metrics.MembersChecked.Add(float64(report.Checked))
	a.metrics.MembersExempt.Add(float64(report.Exempt))
	a.metrics.NoticesSent.Add(float64(report.Sent))
	a.metrics.NoticesFailed.Add(float64(report.Failed))
	a.metrics.TotalOwedWon.Set(report.TotalOwed.InexactFloat64())
	a.pushMetrics("clubledger_dues")

	a.log.Info().
		Str("run_id", report.RunID).
		Int("checked", report.Checked).
		Int("in_arrears", len(report.Outcomes)).
		Str("total_owed", report.TotalOwed.String()).
		Int("sent", report.Sent).
		Int("failed", report.Failed).
		Msg("dues check complete")

	if report.Failed > 0 {
		return fmt.Errorf("%d notice deliveries failed", report.Failed)
	}
	return nil
}
