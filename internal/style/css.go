package style

// Stacking levels used by the default stylesheet and the terminal renderer.
const (
	FloatButtonZ = 20001
	PanelBaseZ   = 20002
	FixedZ       = 99999
)

// DefaultCSS styles the built-in class names. Custom-mode widgets ship their
// own stylesheet.
const DefaultCSS = `.gfc-container {
  position: relative;
}
.gfc-fixed {
  position: fixed !important;
  z-index: 99999 !important;
}
.gfc-float-btn {
  position: absolute;
  bottom: 10px;
  right: 12px;
  z-index: 20001;
  width: 28px;
  height: 28px;
  padding: 0;
  font-size: 14px;
  line-height: 1;
  border-radius: 50%;
}
.gfc-panel {
  position: absolute;
  bottom: 10px;
  right: 12px;
  z-index: 20002;
  width: calc(50% - 12px);
  min-width: 200px;
  padding: 8px;
  border-radius: 6px;
  border: 1px solid #d0d7de;
  background: #ffffff;
  display: flex;
  flex-direction: column;
  gap: 8px;
}
.gfc-panel[hidden] {
  display: none;
}
.gfc-panel-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
}
.gfc-panel-title {
  flex-grow: 1;
  font-size: 14px;
  font-weight: 600;
}
.gfc-panel-close-btn {
  flex: 0 0 auto;
  width: 28px;
  height: 28px;
  padding: 0;
  border-radius: 4px;
  font-size: 16px;
  line-height: 1;
}
.gfc-panel-chat {
  overflow-y: auto;
  border: 1px solid #d0d7de;
  border-radius: 4px;
}
.gfc-panel-msg-txt {
  border: 1px solid #d0d7de;
  border-radius: 4px;
}
`
