// Package desensitize redacts sensitive values from log lines.
package desensitize

import (
	"slices"
	"sync"
)

// Hook applies an ordered set of rules. Rules run in the order they were
// added; adding a rule under an existing name replaces it in place. The rule
// slice is copied on write so Desensitize can run without holding the lock.
type Hook struct {
	mu    sync.RWMutex
	rules []Rule
}

// NewHook creates an empty hook.
func NewHook() *Hook {
	return &Hook{}
}

// AddRule adds or replaces a rule.
func (h *Hook) AddRule(rule Rule) {
	if rule == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	rules := slices.Clone(h.rules)
	if i := h.index(rule.Name()); i >= 0 {
		rules[i] = rule
	} else {
		rules = append(rules, rule)
	}
	h.rules = rules
}

// AddContentRule adds a pattern rule.
func (h *Hook) AddContentRule(name, pattern, replacement string) error {
	rule, err := NewContentRule(name, pattern, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddFieldRule adds a JSON field rule.
func (h *Hook) AddFieldRule(name, fieldName, replacement string) error {
	rule, err := NewFieldRule(name, fieldName, replacement)
	if err != nil {
		return err
	}
	h.AddRule(rule)
	return nil
}

// AddBuiltin adds several rules in order.
func (h *Hook) AddBuiltin(rules ...Rule) {
	for _, rule := range rules {
		h.AddRule(rule)
	}
}

// RemoveRule removes the named rule.
func (h *Hook) RemoveRule(name string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index(name)
	if i < 0 {
		return false
	}
	h.rules = slices.Concat(h.rules[:i], h.rules[i+1:])
	return true
}

// GetRule looks up a rule by name.
func (h *Hook) GetRule(name string) (Rule, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i := h.index(name); i >= 0 {
		return h.rules[i], true
	}
	return nil, false
}

// GetRules lists rule names in application order.
func (h *Hook) GetRules() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	names := make([]string, len(h.rules))
	for i, r := range h.rules {
		names[i] = r.Name()
	}
	return names
}

// RuleCount returns the number of rules.
func (h *Hook) RuleCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rules)
}

// Desensitize applies every enabled rule to s.
func (h *Hook) Desensitize(s string) string {
	if s == "" {
		return s
	}

	h.mu.RLock()
	rules := h.rules
	h.mu.RUnlock()

	for _, rule := range rules {
		if rule.Enabled() {
			s = rule.Process(s)
		}
	}
	return s
}

func (h *Hook) index(name string) int {
	return slices.IndexFunc(h.rules, func(r Rule) bool { return r.Name() == name })
}
