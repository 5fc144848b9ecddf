package events

import "github.com/atomicstack/tmm/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type StoreTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Store  = StoreTracer{}
)

func (UITracer) Mode(from, to string) {
	logging.Trace("ui.mode", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) Cursor(selected int) {
	logging.Trace("ui.cursor", map[string]interface{}{"selected": selected})
}

func (UITracer) Refresh(count, selected int) {
	logging.Trace("ui.refresh", map[string]interface{}{"count": count, "selected": selected})
}

func (FilterTracer) Start() {
	logging.Trace("filter.start", nil)
}

func (FilterTracer) Update(filter string, matches int) {
	logging.Trace("filter.update", map[string]interface{}{"filter": filter, "matches": matches})
}

func (FilterTracer) Commit(filter string, row int) {
	logging.Trace("filter.commit", map[string]interface{}{"filter": filter, "row": row})
}

func (FilterTracer) Cleared(filter string) {
	logging.Trace("filter.clear", map[string]interface{}{"filter": filter})
}

func (StoreTracer) Query(lines int, err error) {
	payload := map[string]interface{}{"lines": lines}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("store.query", payload)
}

func (StoreTracer) Fallback(reason string) {
	logging.Trace("store.query.fallback", map[string]interface{}{"reason": reason})
}

func (StoreTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("store.error", map[string]interface{}{"error": err.Error()})
}

func (StoreTracer) Reconnect(reason error) {
	payload := map[string]interface{}{}
	if reason != nil {
		payload["reason"] = reason.Error()
	}
	logging.Trace("store.reconnect", payload)
}
