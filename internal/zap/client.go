// Package zap talks to a running OWASP ZAP daemon over its JSON API and
// manages the local daemon process when the CLI runs self-contained.
package zap

import (
	"context"

	"github.com/buemura/zapcli/pkg/types"
)

// ReportFormat selects the daemon-side report renderer.
type ReportFormat string

const (
	ReportXML      ReportFormat = "xml"
	ReportHTML     ReportFormat = "html"
	ReportMarkdown ReportFormat = "md"
)

// Client is the surface of the ZAP daemon consumed by the CLI. Every
// method issues blocking remote calls; crawl and scan methods return
// only once the daemon reports the operation finished.
type Client interface {
	// IsRunning probes the daemon for liveness.
	IsRunning(ctx context.Context) bool

	// Start launches the local daemon process with optional extra
	// command-line options. It does not wait for the daemon to become
	// live; use scan.WaitForReady for that.
	Start(ctx context.Context, options string) error
	Shutdown(ctx context.Context) error

	OpenURL(ctx context.Context, url string) error
	Spider(ctx context.Context, url, contextName, userName string) error
	AjaxSpider(ctx context.Context, url string) error
	ActiveScan(ctx context.Context, url string, recursive bool, contextName, userName string) error

	// SetEnabledScanners disables every scanner and then enables
	// exactly the given IDs.
	SetEnabledScanners(ctx context.Context, ids []string) error
	EnableScanners(ctx context.Context, ids []string) error
	DisableScanners(ctx context.Context, ids []string) error
	SetEnabledPolicies(ctx context.Context, ids []string) error

	// ExcludeFromAll applies the pattern to the proxy, spider, and
	// active-scan subsystems as one logical operation.
	ExcludeFromAll(ctx context.Context, pattern string) error

	// Alerts returns every alert the daemon holds, in daemon order.
	Alerts(ctx context.Context) ([]types.Alert, error)

	// Report renders a report on the daemon and writes it to path, or
	// to stdout when path is empty.
	Report(ctx context.Context, format ReportFormat, path string) error

	NewContext(ctx context.Context, name string) error
	IncludeInContext(ctx context.Context, name, pattern string) error
	ExcludeFromContext(ctx context.Context, name, pattern string) error

	NewSession(ctx context.Context) error
	SaveSession(ctx context.Context, path string) error
	LoadSession(ctx context.Context, path string) error

	// Script management. LoadScript requires the script file to exist
	// locally and the engine to be one the daemon reports.
	ListScripts(ctx context.Context) ([]types.Script, error)
	ListScriptEngines(ctx context.Context) ([]string, error)
	LoadScript(ctx context.Context, name, scriptType, engine, filePath, description string) error
	EnableScript(ctx context.Context, name string) error
	DisableScript(ctx context.Context, name string) error
	RemoveScript(ctx context.Context, name string) error
}
