package cli

import (
	"github.com/alexanderramin/shiftclock/internal/domain"
	"github.com/alexanderramin/shiftclock/internal/repository"
	"github.com/spf13/pflag"
)

// sessionFilterOpts holds the shared session listing flags.
type sessionFilterOpts struct {
	worker  string
	project string
	date    string
	from    string
	to      string
	state   string
}

func registerSessionFilterFlags(fs *pflag.FlagSet, o *sessionFilterOpts) {
	fs.StringVar(&o.worker, "worker", "", "Filter by worker ID")
	fs.StringVar(&o.project, "project", "", "Filter by project ID")
	fs.StringVar(&o.date, "date", "", "Exact calendar date (YYYY-MM-DD)")
	fs.StringVar(&o.from, "from", "", "Inclusive window start (YYYY-MM-DD)")
	fs.StringVar(&o.to, "to", "", "Inclusive window end (YYYY-MM-DD)")
	fs.StringVar(&o.state, "state", "", "Filter by state (active|paused|completed)")
}

func (o *sessionFilterOpts) toFilter() repository.SessionFilter {
	return repository.SessionFilter{
		WorkerID:  o.worker,
		ProjectID: o.project,
		OwnerDate: o.date,
		DateFrom:  o.from,
		DateTo:    o.to,
		State:     domain.SessionState(o.state),
	}
}

// scheduleFilterOpts holds the shared schedule listing flags.
type scheduleFilterOpts struct {
	worker string
	date   string
	state  string
}

func registerScheduleFilterFlags(fs *pflag.FlagSet, o *scheduleFilterOpts) {
	fs.StringVar(&o.worker, "worker", "", "Filter by worker ID")
	fs.StringVar(&o.date, "date", "", "Filter by shift date (YYYY-MM-DD)")
	fs.StringVar(&o.state, "state", "", "Filter by state (scheduled|completed|missed)")
}

func (o *scheduleFilterOpts) toFilter() repository.ScheduleFilter {
	return repository.ScheduleFilter{
		WorkerID:  o.worker,
		ShiftDate: o.date,
		State:     domain.ScheduleState(o.state),
	}
}
