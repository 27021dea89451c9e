package markup

import (
	"encoding/json"
	"strings"
)

// EscapeTarget describes one panel to the page script.
type EscapeTarget struct {
	PanelID          string `json:"panel"`
	FloatButtonClass string `json:"button"`
	CloseClass       string `json:"close"`
	Open             bool   `json:"open"`
	// ZBase is the z-index of the panel when it is the lowest open panel;
	// each panel above it in the stack gets one more.
	ZBase int `json:"zbase"`
}

// escapeScript is the browser side of the panel controller. The stack, the
// known panels and the listener flag live on window so that several rendered
// fragments on one page share them. Escape clicks the close control of the
// last opened panel only; the close handler is the one place ids leave the
// stack. Open panels are restacked after every change so the last opened one
// is drawn on top. Class names and ids go through CSS.escape before they are
// used in a selector.
const escapeScript = `(function (targets) {
  var stack = window.gfcOpenPanelStack = window.gfcOpenPanelStack || [];
  var known = window.gfcPanelTargets = window.gfcPanelTargets || {};
  function restack() {
    stack.forEach(function (id, i) {
      var panel = document.getElementById(id);
      var t = known[id];
      if (panel && t) panel.style.setProperty("z-index", String(t.zbase + i), "important");
    });
  }
  function open(id) {
    var panel = document.getElementById(id);
    if (!panel) return;
    panel.hidden = false;
    if (stack.indexOf(id) < 0) stack.push(id);
    restack();
  }
  function close(id) {
    var panel = document.getElementById(id);
    if (panel) {
      panel.hidden = true;
      panel.style.removeProperty("z-index");
    }
    var i = stack.indexOf(id);
    if (i > -1) stack.splice(i, 1);
    restack();
  }
  targets.forEach(function (t) {
    known[t.panel] = t;
    var container = document.querySelector("[data-gfc-panel='" + CSS.escape(t.panel) + "']");
    var panel = document.getElementById(t.panel);
    if (!container || !panel) return;
    var button = t.button && container.querySelector("." + CSS.escape(t.button));
    if (button) button.addEventListener("click", function () { open(t.panel); });
    var closeBtn = t.close && panel.querySelector("." + CSS.escape(t.close));
    if (closeBtn) closeBtn.addEventListener("click", function () { close(t.panel); });
    if (t.open && stack.indexOf(t.panel) < 0) stack.push(t.panel);
  });
  restack();
  if (window.gfcEscListenerAttached) return;
  window.gfcEscListenerAttached = true;
  document.addEventListener("keydown", function (e) {
    if (e.key !== "Escape" || stack.length === 0) return;
    var id = stack[stack.length - 1];
    var t = known[id];
    var panel = document.getElementById(id);
    if (!t || !t.close || !panel) return;
    var closeBtn = panel.querySelector("." + CSS.escape(t.close));
    if (!closeBtn) return;
    closeBtn.dispatchEvent(new MouseEvent("click", { bubbles: true, cancelable: true, view: window }));
    if (document.activeElement) document.activeElement.blur();
  });
})(%TARGETS%);
`

// EscapeScript returns the page script that wires float buttons, close
// buttons and the single Escape listener for the given panels.
func EscapeScript(targets []EscapeTarget) (string, error) {
	if targets == nil {
		targets = []EscapeTarget{}
	}
	data, err := json.Marshal(targets)
	if err != nil {
		return "", err
	}
	return strings.Replace(escapeScript, "%TARGETS%", string(data), 1), nil
}
