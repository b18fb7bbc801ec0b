package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/hay-kot/drawer/internal/core/config"
	"github.com/hay-kot/drawer/pkg/overlay"
)

// ActionType identifies the kind of action a keybinding triggers.
type ActionType int

const (
	ActionTypeNone ActionType = iota
	ActionTypeToggle
	ActionTypeDismiss
	ActionTypeQuit
)

// Action represents a resolved keybinding action.
type Action struct {
	Type ActionType
	Key  string
	Help string
	Edge overlay.Edge // For toggle actions, the slot to toggle
}

// KeybindingHandler resolves keybindings to actions.
type KeybindingHandler struct {
	keybindings map[string]config.Keybinding
}

// NewKeybindingHandler creates a new handler with the given config.
func NewKeybindingHandler(keybindings map[string]config.Keybinding) *KeybindingHandler {
	return &KeybindingHandler{keybindings: keybindings}
}

// Resolve attempts to resolve a key press to an action.
func (h *KeybindingHandler) Resolve(key string) (Action, bool) {
	kb, exists := h.keybindings[key]
	if !exists {
		return Action{}, false
	}

	action := Action{
		Key:  key,
		Help: kb.Help,
	}
	if action.Help == "" {
		action.Help = kb.Action
	}

	if edge, ok := config.ToggleEdge(kb.Action); ok {
		action.Type = ActionTypeToggle
		action.Edge = edge
		return action, true
	}

	switch kb.Action {
	case config.ActionDismiss:
		action.Type = ActionTypeDismiss
	case config.ActionQuit:
		action.Type = ActionTypeQuit
	default:
		return Action{}, false
	}
	return action, true
}

// KeyForEdge returns the key that toggles edge, or "" if none does.
func (h *KeybindingHandler) KeyForEdge(edge overlay.Edge) string {
	for _, k := range slices.Sorted(maps.Keys(h.keybindings)) {
		if e, ok := config.ToggleEdge(h.keybindings[k].Action); ok && e == edge {
			return k
		}
	}
	return ""
}

// HelpEntries returns all configured keybindings for display, sorted by key.
func (h *KeybindingHandler) HelpEntries() []string {
	keys := slices.Sorted(maps.Keys(h.keybindings))

	entries := make([]string, 0, len(h.keybindings))
	for _, key := range keys {
		entries = append(entries, fmt.Sprintf("[%s] %s", key, helpText(h.keybindings[key])))
	}
	return entries
}

// HelpString returns a formatted help string for all keybindings.
func (h *KeybindingHandler) HelpString() string {
	return strings.Join(h.HelpEntries(), "  ")
}

// KeyBindings returns key.Binding objects for the bubbles help view.
func (h *KeybindingHandler) KeyBindings() []key.Binding {
	keys := slices.Sorted(maps.Keys(h.keybindings))
	bindings := make([]key.Binding, 0, len(keys))

	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, helpText(h.keybindings[k])),
		))
	}

	return bindings
}

func helpText(kb config.Keybinding) string {
	if kb.Help != "" {
		return kb.Help
	}
	return kb.Action
}
