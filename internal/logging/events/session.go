package events

import "github.com/atomicstack/tmm/internal/logging"

type SessionTracer struct{}

type sessionReason string

const (
	SessionReasonEscape sessionReason = "escape"
	SessionReasonEmpty  sessionReason = "empty"
	SessionReasonDenied sessionReason = "denied"
)

var Session = SessionTracer{}

func (SessionTracer) NewPrompt(existing int) {
	logging.Trace("session.new.prompt", map[string]interface{}{"existing": existing})
}

func (SessionTracer) Attach(target string, detachOthers bool) {
	logging.Trace("session.attach", map[string]interface{}{"target": target, "detach_others": detachOthers})
}

func (SessionTracer) Switch(target string) {
	logging.Trace("session.switch", map[string]interface{}{"target": target})
}

func (SessionTracer) RenamePrompt(target string) {
	logging.Trace("session.rename.prompt", map[string]interface{}{"target": target})
}

func (SessionTracer) KillPrompt(target string) {
	logging.Trace("session.kill.prompt", map[string]interface{}{"target": target})
}

func (SessionTracer) Kill(target string) {
	logging.Trace("session.kill", map[string]interface{}{"target": target})
}

func (SessionTracer) CancelKill(target string, reason sessionReason) {
	logging.Trace("session.kill.cancel", map[string]interface{}{"target": target, "reason": string(reason)})
}

func (SessionTracer) Create(name string) {
	logging.Trace("session.new.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Rename(target, name string) {
	logging.Trace("session.rename", map[string]interface{}{"target": target, "name": name})
}

func (SessionTracer) CancelRename(target string, reason sessionReason) {
	logging.Trace("session.rename.cancel", map[string]interface{}{"target": target, "reason": string(reason)})
}

func (SessionTracer) CancelNew(reason sessionReason) {
	logging.Trace("session.new.cancel", map[string]interface{}{"reason": string(reason)})
}

func (SessionTracer) SubmitNew(name string) {
	logging.Trace("session.new.submit", map[string]interface{}{"name": name})
}

func (SessionTracer) Discovered(requested, result, name string, candidates []string) {
	logging.Trace("session.discover", map[string]interface{}{
		"requested":  requested,
		"result":     result,
		"name":       name,
		"candidates": candidates,
	})
}

func (SessionTracer) NestedWarning() {
	logging.Trace("session.nested.warning", nil)
}
