package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/features/assets"
	"github.com/dalemusser/hotelhub/internal/app/features/auditreports"
	"github.com/dalemusser/hotelhub/internal/app/features/crud"
	"github.com/dalemusser/hotelhub/internal/app/features/customers"
	"github.com/dalemusser/hotelhub/internal/app/features/feedback"
	"github.com/dalemusser/hotelhub/internal/app/features/folios"
	"github.com/dalemusser/hotelhub/internal/app/features/guests"
	"github.com/dalemusser/hotelhub/internal/app/features/housekeepingrequests"
	"github.com/dalemusser/hotelhub/internal/app/features/housekeepingschedules"
	"github.com/dalemusser/hotelhub/internal/app/features/loyaltylevels"
	"github.com/dalemusser/hotelhub/internal/app/features/salaries"
	"github.com/dalemusser/hotelhub/internal/app/features/schedules"
	"github.com/dalemusser/hotelhub/internal/app/features/servicerequests"
	"github.com/dalemusser/hotelhub/internal/app/features/services"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
)

// collection is what hotelctl needs to know about one backend collection.
// enum is empty when the collection has no status endpoint.
type collection struct {
	mode backend.StatusMode
	enum string
}

func describe[T, In any](d crud.Definition[T, In]) (string, collection) {
	return d.Key, collection{mode: d.Resource.StatusMode(), enum: d.StatusEnum}
}

// collections is read off the dashboard's definitions, so the CLI sends
// status changes exactly the way the status badges do. The definitions
// are only inspected; the nil client is never called.
var collections = func() map[string]collection {
	var c *backend.Client
	out := map[string]collection{}
	add := func(key string, col collection) { out[key] = col }
	add(describe(guests.Definition(c)))
	add(describe(customers.Definition(c)))
	add(describe(folios.Definition(c)))
	add(describe(feedback.Definition(c)))
	add(describe(loyaltylevels.Definition(c)))
	add(describe(housekeepingrequests.Definition(c)))
	add(describe(housekeepingschedules.Definition(c)))
	add(describe(services.Definition(c)))
	add(describe(servicerequests.Definition(c)))
	add(describe(schedules.Definition(c)))
	add(describe(salaries.Definition(c)))
	add(describe(assets.Definition(c)))
	add(describe(auditreports.Definition(c)))
	return out
}()

func resourceNames() []string {
	names := make([]string, 0, len(collections))
	for n := range collections {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type record = map[string]any

func resourceFor(c *backend.Client, name string) (*backend.Resource[record], error) {
	col, ok := collections[name]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q (see: hotelctl resources)", name)
	}
	return backend.NewResource[record](c, name, col.mode), nil
}

// statusValue checks v against the collection's status set and returns the
// canonical spelling the backend expects.
func statusValue(name, v string) (string, error) {
	col, ok := collections[name]
	if !ok {
		return "", fmt.Errorf("unknown resource %q (see: hotelctl resources)", name)
	}
	if col.enum == "" {
		return "", fmt.Errorf("%s have no status", name)
	}
	e := status.MustLookup(col.enum)
	canon, ok := e.Canonical(v)
	if !ok {
		return "", fmt.Errorf("invalid status %q for %s (want one of %s)", v, name, strings.Join(e.Values(), ", "))
	}
	return canon, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
