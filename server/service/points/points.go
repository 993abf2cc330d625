// Package points tracks chore reward points and the weekly MVP race.
//
// Weeks start on Sunday. All tallies are computed on read from the
// chore_completion and mvp_nomination tables instead of keeping running
// counters, so a deleted chore or withdrawn nomination never leaves a
// stale score behind.
package points

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/hublie/hublie/store"
)

// Standing is one member's row on the weekly leaderboard.
type Standing struct {
	MemberID    int32 `json:"memberId"`
	Points      int32 `json:"points"`
	Completions int32 `json:"completions"`
}

// MVPTally is the vote count for one nominee.
type MVPTally struct {
	NomineeID int32 `json:"nomineeId"`
	Votes     int32 `json:"votes"`
}

// Service computes leaderboards and MVP results.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

// StartOfWeek returns midnight of the Sunday at or before t.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekKey returns the identifier of the Sunday-start week containing t,
// e.g. "2026-W35". The week number counts Sundays since the start of the
// week's year.
func WeekKey(t time.Time) string {
	weekStart := StartOfWeek(t)
	week := (weekStart.YearDay()-1)/7 + 1
	return fmt.Sprintf("%d-W%02d", weekStart.Year(), week)
}

// Leaderboard tallies completion points for the week containing at,
// sorted by points descending, member id ascending for ties.
func (s *Service) Leaderboard(ctx context.Context, householdID int32, at time.Time) ([]*Standing, error) {
	weekStart := StartOfWeek(at)
	weekEnd := weekStart.AddDate(0, 0, 7)
	afterTs := weekStart.Unix()
	beforeTs := weekEnd.Unix()
	completions, err := s.store.ListChoreCompletions(ctx, &store.FindChoreCompletion{
		HouseholdID:       &householdID,
		CompletedTsAfter:  &afterTs,
		CompletedTsBefore: &beforeTs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chore completions")
	}

	byMember := map[int32]*Standing{}
	for _, completion := range completions {
		standing, ok := byMember[completion.MemberID]
		if !ok {
			standing = &Standing{MemberID: completion.MemberID}
			byMember[completion.MemberID] = standing
		}
		standing.Points += completion.Points
		standing.Completions++
	}

	standings := make([]*Standing, 0, len(byMember))
	for _, standing := range byMember {
		standings = append(standings, standing)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Points != standings[j].Points {
			return standings[i].Points > standings[j].Points
		}
		return standings[i].MemberID < standings[j].MemberID
	})
	return standings, nil
}

// TallyMVP counts nominations for the given week. Ties are broken by the
// lower nominee id so the result is stable.
func (s *Service) TallyMVP(ctx context.Context, householdID int32, weekKey string) ([]*MVPTally, error) {
	nominations, err := s.store.ListMVPNominations(ctx, &store.FindMVPNomination{
		HouseholdID: &householdID,
		WeekKey:     &weekKey,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mvp nominations")
	}

	votes := map[int32]int32{}
	for _, nomination := range nominations {
		votes[nomination.NomineeID]++
	}
	tallies := make([]*MVPTally, 0, len(votes))
	for nomineeID, count := range votes {
		tallies = append(tallies, &MVPTally{NomineeID: nomineeID, Votes: count})
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Votes != tallies[j].Votes {
			return tallies[i].Votes > tallies[j].Votes
		}
		return tallies[i].NomineeID < tallies[j].NomineeID
	})
	return tallies, nil
}

// WeeklyMVP returns the winning nominee for the week, or nil when the
// week has no nominations.
func (s *Service) WeeklyMVP(ctx context.Context, householdID int32, weekKey string) (*MVPTally, error) {
	tallies, err := s.TallyMVP(ctx, householdID, weekKey)
	if err != nil {
		return nil, err
	}
	if len(tallies) == 0 {
		return nil, nil
	}
	return tallies[0], nil
}
