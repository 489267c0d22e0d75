package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sjoh/clubledger/internal/domain"
)

// DuesUseCase runs one dues check: for every listed member, compute
// arrears against the billing-rule timeline, render the notice for the
// member's case, archive it, and optionally deliver it. Delivery
// failures are collected per member and never stop the batch.
type DuesUseCase struct {
	directory MemberDirectory
	payments  PaymentSource
	timeline  *domain.BillingRuleTimeline
	renderer  *domain.NoticeRenderer
	template  domain.NoticeTemplate
	archive   NoticeArchive
	sender    NoticeSender
	idGen     IDGenerator
	logger    zerolog.Logger
}

// NewDuesUseCase creates a new DuesUseCase. archive and sender may be nil
// when file output or delivery is not configured.
func NewDuesUseCase(
	directory MemberDirectory,
	payments PaymentSource,
	timeline *domain.BillingRuleTimeline,
	template domain.NoticeTemplate,
	archive NoticeArchive,
	sender NoticeSender,
	idGen IDGenerator,
	logger zerolog.Logger,
) *DuesUseCase {
	return &DuesUseCase{
		directory: directory,
		payments:  payments,
		timeline:  timeline,
		renderer:  &domain.NoticeRenderer{Timeline: timeline},
		template:  template,
		archive:   archive,
		sender:    sender,
		idGen:     idGen,
		logger:    logger,
	}
}

// DuesInput is one dues run.
type DuesInput struct {
	AsOf            time.Time
	ExcludedTracks  []string
	ExcludedMembers []string
	ArchiveMention  string
	DeliverMention  string
	Deliver         bool
}

// MemberOutcome is the per-member line of the run report.
type MemberOutcome struct {
	Member        domain.Member
	Result        *domain.ArrearsResult
	Notice        string
	ArchivedTo    string
	Delivered     bool
	DeliveryError string
}

// DuesReport enumerates what the run did, produced even when optional
// delivery partially failed.
type DuesReport struct {
	RunID     string
	AsOf      time.Time
	Checked   int
	Exempt    int
	Settled   int
	Outcomes  []MemberOutcome
	TotalOwed decimal.Decimal
	Sent      int
	Failed    int
}

// Run executes one dues check over a snapshot of payment records.
func (uc *DuesUseCase) Run(ctx context.Context, in DuesInput) (*DuesReport, error) {
	report := &DuesReport{
		RunID:     uc.idGen.Generate(),
		AsOf:      in.AsOf,
		TotalOwed: decimal.Zero,
	}
	log := uc.logger.With().Str("run_id", report.RunID).Logger()

	members, err := uc.directory.ListMembers(ctx, in.ExcludedTracks, in.ExcludedMembers)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	log.Info().Int("members", len(members)).Time("as_of", in.AsOf).Msg("dues check started")

	asOf := domain.YearMonthOf(in.AsOf)
	for _, member := range members {
		report.Checked++

		statement, err := uc.payments.StatementFor(ctx, member)
		if err != nil {
			return nil, fmt.Errorf("payments for %s (%s): %w", member.Name, member.Track, err)
		}
		if statement.Exempt {
			report.Exempt++
			continue
		}

		result, err := uc.timeline.Arrears(member.ID, member.EnrollmentStart, statement.Paid, asOf)
		if err != nil {
			return nil, fmt.Errorf("arrears for %s (%s): %w", member.Name, member.Track, err)
		}
		if result.Kind == domain.CaseNone {
			report.Settled++
			continue
		}

		detail, err := uc.renderer.Render(result, domain.NoticeContext{MemberName: member.Name, AsOf: in.AsOf})
		if err != nil {
			return nil, err
		}

		outcome := MemberOutcome{Member: member, Result: result, Notice: detail}
		report.TotalOwed = report.TotalOwed.Add(result.TotalOwed)

		if uc.archive != nil {
			path, err := uc.archive.Save(ctx, member, uc.template.Fill(in.ArchiveMention, detail))
			if err != nil {
				return nil, fmt.Errorf("archive notice for %s: %w", member.Name, err)
			}
			outcome.ArchivedTo = path
		}

		if in.Deliver && uc.sender != nil {
			msg := uc.template.Fill(in.DeliverMention, detail)
			if err := uc.sender.Deliver(ctx, member, msg); err != nil {
				outcome.DeliveryError = err.Error()
				report.Failed++
				log.Error().Err(err).
					Str("member", member.Name).
					Str("track", member.Track).
					Msg("notice delivery failed")
			} else {
				outcome.Delivered = true
				report.Sent++
				log.Info().
					Str("member", member.Name).
					Str("track", member.Track).
					Msg("notice delivered")
			}
		}

		report.Outcomes = append(report.Outcomes, outcome)
	}

	log.Info().
		Int("checked", report.Checked).
		Int("exempt", report.Exempt).
		Int("in_arrears", len(report.Outcomes)).
		Str("total_owed", report.TotalOwed.String()).
		Msg("dues check finished")

	return report, nil
}
