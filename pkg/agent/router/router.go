package router

import (
	"context"
	"fmt"
	"sync"

	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/plugin"
)

// ExtractFunc pulls the plugin argument out of the raw user message.
type ExtractFunc func(message string) string

type entry struct {
	plugin  plugin.Plugin
	extract ExtractFunc
}

// Router owns the classification fallback chain and runs the selected
// plugins concurrently. Results come back in classification order.
type Router struct {
	oracle   Classifier
	fallback Classifier
	entries  []entry
	byName   map[string]entry
	logger   logger.ILogger
}

func New(oracle Classifier, fallback Classifier, log logger.ILogger) *Router {
	return &Router{
		oracle:   oracle,
		fallback: fallback,
		byName:   make(map[string]entry),
		logger:   log,
	}
}

func (r *Router) Register(p plugin.Plugin, extract ExtractFunc) {
	e := entry{plugin: p, extract: extract}
	r.entries = append(r.entries, e)
	r.byName[p.Name()] = e
}

// Plugins returns the registered plugins in registration order.
func (r *Router) Plugins() []plugin.Plugin {
	plugins := make([]plugin.Plugin, len(r.entries))
	for i, e := range r.entries {
		plugins[i] = e.plugin
	}
	return plugins
}

// Route classifies the message and executes every selected plugin. The
// oracle is consulted first; if it fails the pattern fallback decides.
// A plugin failure never fails the route, it surfaces as an error Result.
func (r *Router) Route(ctx context.Context, message string) []plugin.Result {
	plugins := r.Plugins()

	names, err := r.oracle.Classify(ctx, message, plugins)
	if err != nil {
		r.logger.Warn("router", "Oracle classifier failed, using pattern fallback", map[string]interface{}{
			"error": err.Error(),
		})
		names, _ = r.fallback.Classify(ctx, message, plugins)
	}

	if len(names) == 0 {
		return nil
	}

	results := make([]plugin.Result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		e, ok := r.byName[name]
		if !ok {
			results[i] = plugin.ErrorResult(name, fmt.Errorf("unknown plugin: %s", name))
			continue
		}
		wg.Add(1)
		go func(i int, e entry) {
			defer wg.Done()
			results[i] = r.execute(ctx, e, message)
		}(i, e)
	}
	wg.Wait()

	return results
}

// execute shields the caller from a panicking plugin.
func (r *Router) execute(ctx context.Context, e entry, message string) (result plugin.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("router", "Plugin panicked", map[string]interface{}{
				"plugin": e.plugin.Name(),
				"panic":  fmt.Sprintf("%v", rec),
			})
			result = plugin.ErrorResult(e.plugin.Name(), fmt.Errorf("plugin panic: %v", rec))
		}
	}()

	argument := message
	if e.extract != nil {
		argument = e.extract(message)
	}
	return e.plugin.Execute(ctx, argument)
}
