package scan

import (
	"context"
	"time"

	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/internal/zap"
	"github.com/buemura/zapcli/pkg/types"
)

// Stage names one step of the quick-scan sequence.
type Stage string

const (
	StageStart      Stage = "start"
	StageConfigure  Stage = "configure-scanners"
	StageExclude    Stage = "apply-exclusions"
	StageOpenTarget Stage = "open-target"
	StageSpider     Stage = "spider"
	StageAjaxSpider Stage = "ajax-spider"
	StageActiveScan Stage = "active-scan"
	StageCollect    Stage = "collect-alerts"
	StageShutdown   Stage = "shutdown"
)

// Outcome is the result of one quick-scan run. It lives only for the
// duration of the invocation.
type Outcome struct {
	// Completed lists the stages that finished, in execution order.
	Completed []Stage
	// Alerts holds the collected alerts at or above the requested
	// severity, in daemon order.
	Alerts []types.Alert
	// SoftFail records whether the per-run soft-fail flag was active.
	SoftFail bool
}

func (o *Outcome) complete(s Stage) {
	o.Completed = append(o.Completed, s)
}

// CompletedStage reports whether the named stage finished.
func (o *Outcome) CompletedStage(s Stage) bool {
	for _, c := range o.Completed {
		if c == s {
			return true
		}
	}
	return false
}

// Orchestrator sequences the remote calls of a quick scan. One remote
// call is in flight at a time; every stage blocks until the daemon
// reports it finished.
type Orchestrator struct {
	client zap.Client

	// StartTimeout bounds the readiness wait after a self-contained
	// daemon start.
	StartTimeout time.Duration
	// PollInterval is the readiness probe interval.
	PollInterval time.Duration
}

// NewOrchestrator builds an orchestrator with default timing.
func NewOrchestrator(client zap.Client) *Orchestrator {
	return &Orchestrator{
		client:       client,
		StartTimeout: 60 * time.Second,
		PollInterval: DefaultPollInterval,
	}
}

// QuickScan runs the composite scan sequence against the target URL:
// optional daemon start, scanner-set configuration, exclusions, target
// registration, optional crawls, the active scan, and alert collection.
// Option validation happens before any remote call. The first failure
// aborts the remaining crawl/scan stages. When self-contained, shutdown
// is attempted on every exit path; a shutdown failure surfaces only if
// the run was otherwise clean.
func (o *Orchestrator) QuickScan(ctx context.Context, target string, opts Options) (outcome *Outcome, err error) {
	scannerIDs, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	outcome = &Outcome{SoftFail: opts.SoftFail}

	if opts.SelfContained {
		defer func() {
			console.Info("Shutting down ZAP daemon")
			if shutErr := o.client.Shutdown(ctx); shutErr != nil {
				if err == nil {
					err = shutErr
				} else {
					console.Warn("daemon shutdown failed: %v", shutErr)
				}
			} else {
				outcome.complete(StageShutdown)
			}
		}()

		console.Info("Starting ZAP daemon")
		if err := o.client.Start(ctx, opts.StartOptions); err != nil {
			return outcome, err
		}
		if err := WaitForReady(ctx, o.client, o.StartTimeout, o.PollInterval); err != nil {
			return outcome, err
		}
		outcome.complete(StageStart)
	}

	console.Info("Running a quick scan for %s", target)

	if len(scannerIDs) > 0 {
		if err := o.client.SetEnabledScanners(ctx, scannerIDs); err != nil {
			return outcome, err
		}
		outcome.complete(StageConfigure)
	}

	if opts.Exclude != "" {
		if err := o.client.ExcludeFromAll(ctx, opts.Exclude); err != nil {
			return outcome, err
		}
		outcome.complete(StageExclude)
	}

	if err := o.client.OpenURL(ctx, target); err != nil {
		return outcome, err
	}
	outcome.complete(StageOpenTarget)

	if opts.Spider {
		console.Info("Running spider...")
		if err := o.client.Spider(ctx, target, opts.ContextName, opts.UserName); err != nil {
			return outcome, err
		}
		outcome.complete(StageSpider)
	}

	if opts.AjaxSpider {
		console.Info("Running AJAX Spider...")
		if err := o.client.AjaxSpider(ctx, target); err != nil {
			return outcome, err
		}
		outcome.complete(StageAjaxSpider)
	}

	console.Info("Running an active scan...")
	if err := o.client.ActiveScan(ctx, target, opts.Recursive, opts.ContextName, opts.UserName); err != nil {
		return outcome, err
	}
	outcome.complete(StageActiveScan)

	alerts, err := o.client.Alerts(ctx)
	if err != nil {
		return outcome, err
	}
	outcome.Alerts = types.FilterBySeverity(alerts, opts.AlertLevel)
	outcome.complete(StageCollect)

	return outcome, nil
}
