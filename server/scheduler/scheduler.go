// Package scheduler runs the periodic household jobs: reopening recurring
// chores, flagging overdue bills, and awarding the weekly MVP.
package scheduler

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hublie/hublie/server/service/points"
	"github.com/hublie/hublie/store"
)

// Scheduler owns the cron instance and the job implementations. Jobs are
// idempotent: every run recomputes its work set from the database, so a
// missed tick is caught up on the next one.
type Scheduler struct {
	store  *store.Store
	points *points.Service
	cron   *cron.Cron
}

func New(st *store.Store, pointsService *points.Service) *Scheduler {
	return &Scheduler{
		store:  st,
		points: pointsService,
		cron:   cron.New(),
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs := []struct {
		spec string
		name string
		run  func(context.Context)
	}{
		{"*/15 * * * *", "reopen recurring chores", s.ReopenRecurringChores},
		{"0 * * * *", "flag overdue bills", s.FlagOverdueBills},
		// Weeks start on Sunday; award the MVP for the week that just ended.
		{"5 0 * * 0", "award weekly mvp", s.AwardWeeklyMVP},
	}
	for _, job := range jobs {
		job := job
		if _, err := s.cron.AddFunc(job.spec, func() {
			job.run(ctx)
		}); err != nil {
			return err
		}
		slog.Info("scheduled job", "name", job.name, "spec", job.spec)
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// ReopenRecurringChores flips done recurring chores back to open once their
// cron expression fires again after the last completion.
func (s *Scheduler) ReopenRecurringChores(ctx context.Context) {
	done := store.ChoreStatusDone
	recurring := true
	normal := store.Normal
	chores, err := s.store.ListChores(ctx, &store.FindChore{
		Status:    &done,
		Recurring: &recurring,
		RowStatus: &normal,
	})
	if err != nil {
		slog.Error("failed to list recurring chores", "error", err)
		return
	}

	now := time.Now()
	for _, chore := range chores {
		if chore.Recurrence == nil {
			continue
		}
		schedule, err := cron.ParseStandard(*chore.Recurrence)
		if err != nil {
			slog.Warn("invalid chore recurrence", "chore", chore.UID, "recurrence", *chore.Recurrence)
			continue
		}
		if schedule.Next(time.Unix(chore.UpdatedTs, 0)).After(now) {
			continue
		}
		open := store.ChoreStatusOpen
		if _, err := s.store.UpdateChore(ctx, &store.UpdateChore{ID: chore.ID, Status: &open}); err != nil {
			slog.Error("failed to reopen chore", "chore", chore.UID, "error", err)
			continue
		}
		slog.Info("reopened recurring chore", "chore", chore.UID)
	}
}

// FlagOverdueBills writes one activity per bill that passed its due date
// unpaid since the previous run.
func (s *Scheduler) FlagOverdueBills(ctx context.Context) {
	unpaid := false
	now := time.Now().Unix()
	normal := store.Normal
	bills, err := s.store.ListBills(ctx, &store.FindBill{
		Paid:      &unpaid,
		DueBefore: &now,
		RowStatus: &normal,
	})
	if err != nil {
		slog.Error("failed to list overdue bills", "error", err)
		return
	}

	for _, bill := range bills {
		if s.alreadyFlagged(ctx, bill) {
			continue
		}
		payload, _ := json.Marshal(map[string]any{
			"billUid": bill.UID,
			"name":    bill.Name,
			"dueTs":   bill.DueTs,
		})
		if _, err := s.store.CreateActivity(ctx, &store.Activity{
			HouseholdID: bill.HouseholdID,
			Type:        store.ActivityBillOverdue,
			Payload:     string(payload),
		}); err != nil {
			slog.Error("failed to record overdue bill", "bill", bill.UID, "error", err)
		}
	}
}

func (s *Scheduler) alreadyFlagged(ctx context.Context, bill *store.Bill) bool {
	overdue := store.ActivityBillOverdue
	activities, err := s.store.ListActivities(ctx, &store.FindActivity{
		HouseholdID: &bill.HouseholdID,
		Type:        &overdue,
	})
	if err != nil {
		slog.Error("failed to list activities", "error", err)
		return true
	}
	for _, activity := range activities {
		var payload struct {
			BillUID string `json:"billUid"`
			DueTs   int64  `json:"dueTs"`
		}
		if err := json.Unmarshal([]byte(activity.Payload), &payload); err != nil {
			continue
		}
		if payload.BillUID == bill.UID && payload.DueTs == bill.DueTs {
			return true
		}
	}
	return false
}

// AwardWeeklyMVP tallies last week's nominations per household and records
// the winner on the activity feed.
func (s *Scheduler) AwardWeeklyMVP(ctx context.Context) {
	normal := store.Normal
	households, err := s.store.ListHouseholds(ctx, &store.FindHousehold{RowStatus: &normal})
	if err != nil {
		slog.Error("failed to list households", "error", err)
		return
	}

	lastWeek := points.WeekKey(time.Now().AddDate(0, 0, -7))
	for _, household := range households {
		winner, err := s.points.WeeklyMVP(ctx, household.ID, lastWeek)
		if err != nil {
			slog.Error("failed to tally mvp", "household", household.UID, "error", err)
			continue
		}
		if winner == nil {
			continue
		}
		payload, _ := json.Marshal(map[string]any{
			"weekKey":   lastWeek,
			"nomineeId": winner.NomineeID,
			"votes":     winner.Votes,
		})
		if _, err := s.store.CreateActivity(ctx, &store.Activity{
			HouseholdID: household.ID,
			Type:        store.ActivityMVPAwarded,
			Payload:     string(payload),
		}); err != nil {
			slog.Error("failed to record mvp award", "household", household.UID, "error", err)
			continue
		}
		slog.Info("awarded weekly mvp", "household", household.UID, "week", lastWeek, "nominee", winner.NomineeID)
	}
}
