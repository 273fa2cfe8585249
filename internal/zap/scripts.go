package zap

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/buemura/zapcli/pkg/types"
)

// ListScripts returns every script loaded in the daemon.
func (c *APIClient) ListScripts(ctx context.Context) ([]types.Script, error) {
	var result struct {
		ListScripts []types.Script `json:"listScripts"`
	}
	if err := c.callAPI(ctx, "script", "view", "listScripts", nil, &result); err != nil {
		return nil, err
	}
	return result.ListScripts, nil
}

// ListScriptEngines returns the script engines the daemon can run.
func (c *APIClient) ListScriptEngines(ctx context.Context) ([]string, error) {
	var result struct {
		ListEngines []string `json:"listEngines"`
	}
	if err := c.callAPI(ctx, "script", "view", "listEngines", nil, &result); err != nil {
		return nil, err
	}
	return result.ListEngines, nil
}

// LoadScript loads a script file into the daemon. The file must exist
// locally so a typo fails before the remote call, and the engine must
// be one the daemon reports, matched by full name or by the short name
// after the colon.
func (c *APIClient) LoadScript(ctx context.Context, name, scriptType, engine, filePath, description string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("script file %q does not exist", filePath)
	}

	engines, err := c.ListScriptEngines(ctx)
	if err != nil {
		return err
	}
	if !validScriptEngine(engines, engine) {
		return fmt.Errorf("unknown script engine %q", engine)
	}

	params := url.Values{
		"scriptName":   {name},
		"scriptType":   {scriptType},
		"scriptEngine": {engine},
		"fileName":     {filePath},
	}
	if description != "" {
		params.Set("scriptDescription", description)
	}
	return c.action(ctx, "script", "load", params)
}

// EnableScript enables a loaded script by name.
func (c *APIClient) EnableScript(ctx context.Context, name string) error {
	return c.action(ctx, "script", "enable", url.Values{"scriptName": {name}})
}

// DisableScript disables a loaded script by name.
func (c *APIClient) DisableScript(ctx context.Context, name string) error {
	return c.action(ctx, "script", "disable", url.Values{"scriptName": {name}})
}

// RemoveScript removes a loaded script by name.
func (c *APIClient) RemoveScript(ctx context.Context, name string) error {
	return c.action(ctx, "script", "remove", url.Values{"scriptName": {name}})
}

// validScriptEngine reports whether engine matches one of the daemon's
// engines, either fully ("Oracle Nashorn : ECMAScript") or by the short
// name after the separator ("ECMAScript").
func validScriptEngine(engines []string, engine string) bool {
	for _, e := range engines {
		if e == engine {
			return true
		}
		if _, short, ok := strings.Cut(e, " : "); ok && short == engine {
			return true
		}
	}
	return false
}
