// Package ui hosts floating chat widgets in the terminal.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Page text                                           │
//	│ ┌──────────────────────┐ ┌────────────────────────┐ │
//	│ │ anchor (local)       │ │ anchor (local)  ╭────╮ │ │
//	│ │                 [💬] │ │                 │chat│ │ │
//	│ └──────────────────────┘ └─────────────────╰────╯─┘ │
//	│                                      [💬] (global)  │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Locally anchored widgets get a box each, side by side under the page
// text; their float button and panel are pinned to its bottom-right corner.
// Globally anchored widgets are pinned to the bottom-right of the body.
//
// # Compositing
//
// A frame is drawn in layers onto an ultraviolet screen buffer: page chrome
// and anchors, then every float button, then open panels in panel stack
// order so the most recently opened panel is on top.
//
// # Styles
//
// Widget nodes carry class names, not styles. A StyleSheet maps class names
// to Lip Gloss styles; the built-in gfc-* classes follow the active Theme,
// custom classes must be registered, and unknown classes render unstyled.
//
// # Keys
//
// On the page, digits click float buttons. Tab cycles focus between the page
// and open panels, ctrl+l returns to the page. In a panel, enter sends and
// ctrl+y copies the last reply. Escape always closes the most recently
// opened panel, whatever has focus.
//
// # Streaming
//
// Replies are pulled from a chat.StreamFunc one snapshot per message, so
// the stream and the panel state are only touched from Update. Closing a
// panel cancels its stream.
package ui
