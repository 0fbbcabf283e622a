// Package rules generates public holidays from rule sets in github.com/rickar/cal/v2.
package rules

import (
	"context"
	"fmt"
	"sort"
	"strings"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/custodia-labs/netdays/internal/adapters/driven/datevalue"
	"github.com/custodia-labs/netdays/internal/core/domain"
	"github.com/custodia-labs/netdays/internal/core/ports/driven"
	"github.com/custodia-labs/netdays/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.HolidaySource = (*Source)(nil)

var log = logger.Component("rules")

// regions maps a region code to its holiday rules.
var regions = map[string][]*cal.Holiday{
	"us": {
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	},
}

// Regions returns the supported region codes.
func Regions() []string {
	codes := make([]string, 0, len(regions))
	for code := range regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Options selects the rule set and years to generate.
type Options struct {
	Region   string
	FromYear int
	ToYear   int

	// Actual uses the calendar date of each holiday instead of the
	// weekday it is observed on.
	Actual bool
}

// Source is a driven.HolidaySource that computes holidays from rules.
type Source struct {
	opts Options
}

// NewSource creates a rules source.
func NewSource(opts Options) *Source {
	opts.Region = strings.ToLower(strings.TrimSpace(opts.Region))
	if opts.ToYear == 0 {
		opts.ToYear = opts.FromYear
	}
	return &Source{opts: opts}
}

// Describe returns "rules:<region>:<from>-<to>".
func (s *Source) Describe() string {
	if s.opts.FromYear == s.opts.ToYear {
		return fmt.Sprintf("rules:%s:%d", s.opts.Region, s.opts.FromYear)
	}
	return fmt.Sprintf("rules:%s:%d-%d", s.opts.Region, s.opts.FromYear, s.opts.ToYear)
}

// Fetch generates the holidays of every year in range.
func (s *Source) Fetch(ctx context.Context) ([]domain.Holiday, error) {
	rules, ok := regions[s.opts.Region]
	if !ok {
		return nil, fmt.Errorf("region %q (supported: %s): %w",
			s.opts.Region, strings.Join(Regions(), ", "), domain.ErrInvalidInput)
	}
	if s.opts.FromYear < 1900 || s.opts.ToYear > 9999 || s.opts.FromYear > s.opts.ToYear {
		return nil, fmt.Errorf("year range %d-%d: %w", s.opts.FromYear, s.opts.ToYear, domain.ErrInvalidInput)
	}

	var holidays []domain.Holiday
	for year := s.opts.FromYear; year <= s.opts.ToYear; year++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, rule := range rules {
			actual, observed := rule.Calc(year)
			day := observed
			if s.opts.Actual {
				day = actual
			}
			if day.IsZero() {
				continue
			}
			d, err := datevalue.SerialFromTime(day)
			if err != nil {
				log.Warn("%s %d: %v", rule.Name, year, err)
				continue
			}
			holidays = append(holidays, domain.Holiday{Date: d, Name: rule.Name})
		}
	}
	log.Debug("%s: generated %d holiday(s)", s.Describe(), len(holidays))
	return holidays, nil
}
