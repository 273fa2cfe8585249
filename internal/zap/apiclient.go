package zap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/buemura/zapcli/internal/config"
	"github.com/buemura/zapcli/internal/console"
	"github.com/buemura/zapcli/pkg/types"
)

// statusPollInterval is how often crawl and scan status views are polled.
const statusPollInterval = 2 * time.Second

// APIClient implements Client against the ZAP 2.x JSON API.
type APIClient struct {
	baseURL string
	apiKey  string
	zapPath string
	logPath string
	port    int

	httpc        *http.Client
	pollInterval time.Duration
}

// NewAPIClient builds a client from the loaded configuration.
func NewAPIClient(cfg *config.Config) *APIClient {
	return &APIClient{
		baseURL:      cfg.BaseURL(),
		apiKey:       cfg.APIKey,
		zapPath:      cfg.ZapPath,
		logPath:      cfg.LogPath,
		port:         cfg.Port,
		httpc:        &http.Client{Timeout: 30 * time.Second},
		pollInterval: statusPollInterval,
	}
}

// SetPollInterval overrides the status poll interval, used by tests.
func (c *APIClient) SetPollInterval(d time.Duration) { c.pollInterval = d }

// callAPI issues a GET against /JSON/<component>/<kind>/<name>/ and
// decodes the response body into out when out is non-nil.
func (c *APIClient) callAPI(ctx context.Context, component, kind, name string, params url.Values, out interface{}) error {
	op := component + "/" + kind + "/" + name

	if params == nil {
		params = url.Values{}
	}
	if c.apiKey != "" {
		params.Set("apikey", c.apiKey)
	}

	endpoint := fmt.Sprintf("%s/JSON/%s/%s/%s/", c.baseURL, component, kind, name)
	if enc := params.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &RemoteError{Op: op, Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)}
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return &RemoteError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
		}
	}

	return nil
}

// action issues an API action and verifies the daemon acknowledged it.
func (c *APIClient) action(ctx context.Context, component, name string, params url.Values) error {
	var result struct {
		Result string `json:"Result"`
	}
	if err := c.callAPI(ctx, component, "action", name, params, &result); err != nil {
		return err
	}
	if result.Result != "" && result.Result != "OK" {
		return &RemoteError{Op: component + "/action/" + name, Err: fmt.Errorf("daemon returned %q", result.Result)}
	}
	return nil
}

// IsRunning probes the core version view.
func (c *APIClient) IsRunning(ctx context.Context) bool {
	var version struct {
		Version string `json:"version"`
	}
	if err := c.callAPI(ctx, "core", "view", "version", nil, &version); err != nil {
		return false
	}
	return version.Version != ""
}

// Shutdown asks the daemon to exit.
func (c *APIClient) Shutdown(ctx context.Context) error {
	return c.action(ctx, "core", "shutdown", nil)
}

// OpenURL registers a target URL in the daemon's site tree.
func (c *APIClient) OpenURL(ctx context.Context, target string) error {
	params := url.Values{"url": {target}}
	return c.action(ctx, "core", "accessUrl", params)
}

// Spider runs the spider against the URL and blocks until it reports
// 100% progress. When contextName and userName are both given the crawl
// runs as that user.
func (c *APIClient) Spider(ctx context.Context, target, contextName, userName string) error {
	var started struct {
		Scan string `json:"scan"`
	}

	if contextName != "" && userName != "" {
		contextID, userID, err := c.resolveUser(ctx, contextName, userName)
		if err != nil {
			return err
		}
		params := url.Values{"url": {target}, "contextId": {contextID}, "userId": {userID}}
		if err := c.callAPI(ctx, "spider", "action", "scanAsUser", params, &started); err != nil {
			return err
		}
	} else {
		params := url.Values{"url": {target}}
		if contextName != "" {
			params.Set("contextName", contextName)
		}
		if err := c.callAPI(ctx, "spider", "action", "scan", params, &started); err != nil {
			return err
		}
	}

	return c.waitForPercent(ctx, "spider", started.Scan)
}

// AjaxSpider runs the AJAX spider and blocks until the daemon reports it
// stopped.
func (c *APIClient) AjaxSpider(ctx context.Context, target string) error {
	params := url.Values{"url": {target}}
	if err := c.action(ctx, "ajaxSpider", "scan", params); err != nil {
		return err
	}

	for {
		var status struct {
			Status string `json:"status"`
		}
		if err := c.callAPI(ctx, "ajaxSpider", "view", "status", nil, &status); err != nil {
			return err
		}
		if status.Status == "stopped" {
			return nil
		}
		if err := sleepCtx(ctx, c.pollInterval); err != nil {
			return &RemoteError{Op: "ajaxSpider/view/status", Err: err}
		}
	}
}

// ActiveScan runs the active scanner against the URL and blocks until it
// reports 100% progress.
func (c *APIClient) ActiveScan(ctx context.Context, target string, recursive bool, contextName, userName string) error {
	var started struct {
		Scan string `json:"scan"`
	}

	recurse := "false"
	if recursive {
		recurse = "true"
	}

	if contextName != "" && userName != "" {
		contextID, userID, err := c.resolveUser(ctx, contextName, userName)
		if err != nil {
			return err
		}
		params := url.Values{"url": {target}, "recurse": {recurse}, "contextId": {contextID}, "userId": {userID}}
		if err := c.callAPI(ctx, "ascan", "action", "scanAsUser", params, &started); err != nil {
			return err
		}
	} else {
		params := url.Values{"url": {target}, "recurse": {recurse}}
		if err := c.callAPI(ctx, "ascan", "action", "scan", params, &started); err != nil {
			return err
		}
	}

	return c.waitForPercent(ctx, "ascan", started.Scan)
}

// SetEnabledScanners disables all scanners and enables exactly the given IDs.
func (c *APIClient) SetEnabledScanners(ctx context.Context, ids []string) error {
	if err := c.action(ctx, "ascan", "disableAllScanners", nil); err != nil {
		return err
	}
	return c.EnableScanners(ctx, ids)
}

// EnableScanners enables the scanners with the given IDs.
func (c *APIClient) EnableScanners(ctx context.Context, ids []string) error {
	params := url.Values{"ids": {joinIDs(ids)}}
	return c.action(ctx, "ascan", "enableScanners", params)
}

// DisableScanners disables the scanners with the given IDs.
func (c *APIClient) DisableScanners(ctx context.Context, ids []string) error {
	params := url.Values{"ids": {joinIDs(ids)}}
	return c.action(ctx, "ascan", "disableScanners", params)
}

// SetEnabledPolicies sets the enabled active-scan policies.
func (c *APIClient) SetEnabledPolicies(ctx context.Context, ids []string) error {
	params := url.Values{"ids": {joinIDs(ids)}}
	return c.action(ctx, "ascan", "setEnabledPolicies", params)
}

// ExcludeFromAll applies the pattern to the proxy, spider, and active
// scanner. The daemon has no single endpoint for this, so it fans out to
// three calls.
func (c *APIClient) ExcludeFromAll(ctx context.Context, pattern string) error {
	params := url.Values{"regex": {pattern}}
	if err := c.action(ctx, "core", "excludeFromProxy", params); err != nil {
		return err
	}
	if err := c.action(ctx, "spider", "excludeFromScan", params); err != nil {
		return err
	}
	return c.action(ctx, "ascan", "excludeFromScan", params)
}

// Alerts returns every alert the daemon holds, preserving daemon order.
func (c *APIClient) Alerts(ctx context.Context) ([]types.Alert, error) {
	var result struct {
		Alerts []types.Alert `json:"alerts"`
	}
	if err := c.callAPI(ctx, "core", "view", "alerts", nil, &result); err != nil {
		return nil, err
	}
	return result.Alerts, nil
}

// reportEndpoints maps report formats to the daemon's OTHER endpoints.
var reportEndpoints = map[ReportFormat]string{
	ReportXML:      "xmlreport",
	ReportHTML:     "htmlreport",
	ReportMarkdown: "mdreport",
}

// Report renders a report on the daemon and writes it to path, or to
// stdout when path is empty.
func (c *APIClient) Report(ctx context.Context, format ReportFormat, path string) error {
	endpointName, ok := reportEndpoints[format]
	if !ok {
		return &ReportError{Format: string(format), Err: fmt.Errorf("unknown report format")}
	}

	endpoint := fmt.Sprintf("%s/OTHER/core/other/%s/", c.baseURL, endpointName)
	if c.apiKey != "" {
		endpoint += "?" + url.Values{"apikey": {c.apiKey}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &ReportError{Format: string(format), Err: err}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return &ReportError{Format: string(format), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ReportError{Format: string(format), Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if path == "" {
		_, err = io.Copy(os.Stdout, resp.Body)
		if err != nil {
			return &ReportError{Format: string(format), Err: err}
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return &ReportError{Format: string(format), Err: err}
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return &ReportError{Format: string(format), Err: err}
	}
	return nil
}

// NewContext creates a named context on the daemon.
func (c *APIClient) NewContext(ctx context.Context, name string) error {
	params := url.Values{"contextName": {name}}
	return c.action(ctx, "context", "newContext", params)
}

// IncludeInContext adds an include pattern to a context.
func (c *APIClient) IncludeInContext(ctx context.Context, name, pattern string) error {
	params := url.Values{"contextName": {name}, "regex": {pattern}}
	return c.action(ctx, "context", "includeInContext", params)
}

// ExcludeFromContext adds an exclude pattern to a context.
func (c *APIClient) ExcludeFromContext(ctx context.Context, name, pattern string) error {
	params := url.Values{"contextName": {name}, "regex": {pattern}}
	return c.action(ctx, "context", "excludeFromContext", params)
}

// NewSession starts a fresh daemon session.
func (c *APIClient) NewSession(ctx context.Context) error {
	return c.action(ctx, "core", "newSession", nil)
}

// SaveSession persists the current session under the given name.
func (c *APIClient) SaveSession(ctx context.Context, path string) error {
	params := url.Values{"name": {path}, "overwrite": {"true"}}
	return c.action(ctx, "core", "saveSession", params)
}

// LoadSession loads a session file. The file must exist locally so a
// typo fails before the remote call.
func (c *APIClient) LoadSession(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("session file %q does not exist", path)
	}
	params := url.Values{"name": {path}}
	return c.action(ctx, "core", "loadSession", params)
}

// resolveUser maps a context name and user name to the numeric IDs the
// scanAsUser endpoints require.
func (c *APIClient) resolveUser(ctx context.Context, contextName, userName string) (contextID, userID string, err error) {
	var ctxView struct {
		Context struct {
			ID string `json:"id"`
		} `json:"context"`
	}
	params := url.Values{"contextName": {contextName}}
	if err := c.callAPI(ctx, "context", "view", "context", params, &ctxView); err != nil {
		return "", "", err
	}
	if ctxView.Context.ID == "" {
		return "", "", &RemoteError{Op: "context/view/context", Err: fmt.Errorf("context %q not found", contextName)}
	}

	var usersView struct {
		UsersList []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"usersList"`
	}
	params = url.Values{"contextId": {ctxView.Context.ID}}
	if err := c.callAPI(ctx, "users", "view", "usersList", params, &usersView); err != nil {
		return "", "", err
	}
	for _, u := range usersView.UsersList {
		if u.Name == userName {
			return ctxView.Context.ID, u.ID, nil
		}
	}
	return "", "", &RemoteError{Op: "users/view/usersList", Err: fmt.Errorf("user %q not found in context %q", userName, contextName)}
}

// waitForPercent polls a component's status view until it reports 100.
func (c *APIClient) waitForPercent(ctx context.Context, component, scanID string) error {
	op := component + "/view/status"
	for {
		var status struct {
			Status string `json:"status"`
		}
		params := url.Values{}
		if scanID != "" {
			params.Set("scanId", scanID)
		}
		if err := c.callAPI(ctx, component, "view", "status", params, &status); err != nil {
			return err
		}

		console.Debug("%s progress: %s%%", component, status.Status)
		if status.Status == "100" {
			return nil
		}
		if err := sleepCtx(ctx, c.pollInterval); err != nil {
			return &RemoteError{Op: op, Err: err}
		}
	}
}

func joinIDs(ids []string) string {
	return strings.Join(ids, ",")
}

// sleepCtx sleeps for d unless the context is canceled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
