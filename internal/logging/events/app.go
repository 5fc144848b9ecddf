package events

import "github.com/atomicstack/tmm/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(outcome, target string) {
	logging.Trace("app.exit", map[string]interface{}{"outcome": outcome, "target": target})
}

func (AppTracer) Handoff(args []string) {
	logging.Trace("app.handoff", map[string]interface{}{"args": args})
}
