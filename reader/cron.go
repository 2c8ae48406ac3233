package reader

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"

	"github.com/kbukum/pipekit/errors"
	"github.com/kbukum/pipekit/flow"
	"github.com/kbukum/pipekit/logger"
)

// cron expressions allow an optional leading seconds field
var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Cron forwards the timestamp string whenever the schedule defined by
// the cron expression is reached. Runs until the session is stopped.
type Cron struct {
	flow.Base

	Expr string

	schedule cron.Schedule
}

func NewCron() *Cron { return &Cron{} }

func (r *Cron) Name() string { return "cron" }

func (r *Cron) Description() string {
	return "Dummy reader that forwards a timestamp string whenever the cron schedule is reached. " +
		"For more information on cron, see: https://en.wikipedia.org/wiki/Cron"
}

func (r *Cron) Bind(fs *pflag.FlagSet) {
	fs.StringVarP(&r.Expr, "cron_expr", "e", "", "the cron expression to use: [sec] min hour day month day_of_week")
}

func (r *Cron) Init(sess *flow.Session) error {
	r.Attach(r.Name(), sess)
	if r.Expr == "" {
		return errors.Configuration("no cron expression provided")
	}
	schedule, err := cronParser.Parse(r.Expr)
	if err != nil {
		return errors.Configuration("invalid cron expression: %s", r.Expr).WithCause(err)
	}
	r.schedule = schedule
	return nil
}

func (r *Cron) Read(emit func(flow.Payload) error) error {
	for !r.Session.Stopped() {
		next := r.schedule.Next(time.Now())
		r.Log.Info("next execution", logger.Fields("timestamp", next.Format(time.RFC3339)))
		for time.Now().Before(next) && !r.Session.Stopped() {
			time.Sleep(100 * time.Millisecond)
		}
		if r.Session.Stopped() {
			return nil
		}
		if err := emit(flow.Item(next.Format(time.RFC3339))); err != nil {
			return err
		}
	}
	return nil
}

func (r *Cron) Finished() bool { return false }
