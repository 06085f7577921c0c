package collision

import (
	"slices"

	"github.com/oliverbestmann/jetlag"
)

// EndContactFunc is called after two actors stopped touching.
type EndContactFunc func(a, b *jetlag.Actor)

type endContactHandler struct {
	a, b     *jetlag.Actor
	callback EndContactFunc
}

// matches the unordered pair
func (h endContactHandler) matches(a, b *jetlag.Actor) bool {
	return (h.a == a && h.b == b) || (h.a == b && h.b == a)
}

type endContactRegistry struct {
	handlers []endContactHandler
}

func (r *endContactRegistry) add(a, b *jetlag.Actor, callback EndContactFunc) {
	r.handlers = append(r.handlers, endContactHandler{a: a, b: b, callback: callback})
}

// take removes and returns the oldest handler registered for the pair.
func (r *endContactRegistry) take(a, b *jetlag.Actor) (endContactHandler, bool) {
	for idx, handler := range r.handlers {
		if handler.matches(a, b) {
			r.handlers = slices.Delete(r.handlers, idx, idx+1)
			return handler, true
		}
	}

	return endContactHandler{}, false
}

func (r *endContactRegistry) cancel(a, b *jetlag.Actor) int {
	count := len(r.handlers)

	r.handlers = slices.DeleteFunc(r.handlers, func(handler endContactHandler) bool {
		return handler.matches(a, b)
	})

	return count - len(r.handlers)
}
