package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/api"
	"github.com/AbdullahAliSapry/Customer-Dashboard-sub002/routes"
	"github.com/jmgilman/go/errors"
)

// clockLayout is the HH:MM notation used for opening times.
const clockLayout = "15:04"

var weekdays = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// HoursService manages store operating hours.
type HoursService struct {
	api *api.Client
}

// Get returns the weekly schedule of a store.
func (s *HoursService) Get(ctx context.Context, storeID string, opts ...api.CallOption) api.Result[Week] {
	res := api.List[DayHours](ctx, s.api, routes.OperatingHours(storeID), opts...)
	if days, ok := res.Value(); ok {
		return api.Ok(Week(days))
	}
	return api.Fail[Week](res.Err())
}

// Save replaces the schedule of a store and returns the stored schedule.
// The week is sent as is; call Validate first to catch input errors
// without a round trip.
func (s *HoursService) Save(ctx context.Context, storeID string, week Week, opts ...api.CallOption) api.Result[Week] {
	return api.Patch[Week](ctx, s.api, routes.OperatingHours(storeID), week, opts...)
}

// Validate checks a schedule before it is saved.
//
// Every entry must name a weekday at most once. Open entries need HH:MM
// opening and closing times with the opening time first. The returned
// error carries CodeInvalidInput and a "fields" context entry mapping
// entry paths such as "hours[2].openTime" to messages.
func (s *HoursService) Validate(week Week) error {
	return ValidateWeek(week)
}

// ValidateWeek is Validate without a service.
func ValidateWeek(week Week) error {
	fields := map[string][]string{}
	add := func(key, msg string) {
		fields[key] = append(fields[key], msg)
	}

	seen := map[string]int{}
	for i, day := range week {
		prefix := fmt.Sprintf("hours[%d]", i)
		name := strings.ToLower(strings.TrimSpace(day.Day))

		switch {
		case !weekdays[name]:
			add(prefix+".day", fmt.Sprintf("%q is not a weekday", day.Day))
		case seen[name] > 0:
			add(prefix+".day", fmt.Sprintf("%s is listed more than once", name))
		}
		seen[name]++

		if day.Closed {
			continue
		}

		open, openErr := parseClock(day.Open)
		if openErr != nil {
			add(prefix+".openTime", "opening time must use HH:MM")
		}
		closing, closeErr := parseClock(day.Close)
		if closeErr != nil {
			add(prefix+".closeTime", "closing time must use HH:MM")
		}
		if openErr == nil && closeErr == nil && !open.Before(closing) {
			add(prefix+".closeTime", "closing time must be after opening time")
		}
	}

	if len(fields) == 0 {
		return nil
	}

	err := errors.New(errors.CodeInvalidInput, "invalid operating hours")
	return errors.WithContext(err, "fields", fields)
}

// parseClock parses a zero-padded HH:MM time.
func parseClock(value string) (time.Time, error) {
	if len(value) != len(clockLayout) {
		return time.Time{}, errors.Newf(errors.CodeInvalidInput, "invalid time %q", value)
	}
	return time.Parse(clockLayout, value)
}
