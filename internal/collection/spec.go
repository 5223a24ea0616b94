package collection

import (
	"time"

	"github.com/davidmontoya/vesper/internal/domain"
	"github.com/davidmontoya/vesper/internal/match"
	"github.com/davidmontoya/vesper/internal/temporal"
)

// MatchRule decides membership of one record in one collection. Rules must
// be pure: evaluating a rule twice on the same record yields the same
// result, which is what makes re-building collections on every refresh or
// clock tick safe.
type MatchRule func(r domain.Record, now time.Time) bool

// SortRule orders two records within a collection. A nil rule keeps the
// input order.
type SortRule func(a, b domain.Record) bool

// Spec describes one named collection: a filter, an optional sort, and a
// result cap. Cap must be positive; a non-positive cap is a programmer
// error.
type Spec struct {
	Label  string
	Match  MatchRule
	SortBy SortRule
	Cap    int
}

// Collection is the built output of a Spec: a labeled, ranked, capped slice
// of records. Collections are only emitted non-empty.
type Collection struct {
	Label string
	Items []domain.Record
}

// GenreRule matches records whose genre fields contain any of the terms,
// with no time restriction.
func GenreRule(terms match.Terms) MatchRule {
	return func(r domain.Record, _ time.Time) bool {
		return terms.Record(r)
	}
}

// TonightRule matches records carrying a parsable timestamp on today's
// calendar day. Records without a usable timestamp never match.
func TonightRule(terms match.Terms) MatchRule {
	return func(r domain.Record, now time.Time) bool {
		ts, ok := temporal.ParseTimestamp(r.StartsAt)
		return ok && temporal.IsTonight(ts, now) && terms.Record(r)
	}
}

// WeekendRule matches records carrying a parsable timestamp inside the
// upcoming-or-current weekend window.
func WeekendRule(terms match.Terms) MatchRule {
	return func(r domain.Record, now time.Time) bool {
		ts, ok := temporal.ParseTimestamp(r.StartsAt)
		return ok && temporal.IsThisWeekend(ts, now) && terms.Record(r)
	}
}

// NoDateRule matches records whose timestamp is missing or unparsable, so
// they stay visible in a fallback row instead of vanishing from every
// temporal collection.
func NoDateRule(terms match.Terms) MatchRule {
	return func(r domain.Record, _ time.Time) bool {
		_, ok := temporal.ParseTimestamp(r.StartsAt)
		return !ok && terms.Record(r)
	}
}

// PopularityDesc orders records by popularity score, highest first.
// Missing scores rank as 0, never as exclusion. The strict comparison
// leaves ties in input order under a stable sort.
func PopularityDesc(a, b domain.Record) bool {
	return a.Popularity() > b.Popularity()
}

// RatingDesc orders records by rating, highest first, missing as 0.
func RatingDesc(a, b domain.Record) bool {
	return a.RatingValue() > b.RatingValue()
}
