package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/zhubert/floatchat/internal/chat"
)

// Labels shown before each message in a panel.
const (
	UserLabel      = "You"
	AssistantLabel = "Bot"
	Ellipsis       = "…"
)

var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return strings.TrimRight(buf.String(), "\n")
}

// renderInline applies bold, inline code and link formatting to one line.
func renderInline(line string) string {
	var spans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		spans = append(spans, InlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00%d\x00", len(spans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return BoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return LinkStyle.Render(parts[1]) + " (" + parts[2] + ")"
	})

	for i, s := range spans {
		line = strings.Replace(line, fmt.Sprintf("\x00%d\x00", i), s, 1)
	}
	return line
}

// wrapText word-wraps text to width and hard-breaks words longer than a
// line. ANSI sequences do not count toward the width.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}

// renderMarkdownLine renders one non-code line.
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* "} {
		if content, ok := strings.CutPrefix(trimmed, marker); ok {
			wrapped := wrapText(renderInline(content), width-2)
			wrapped = strings.ReplaceAll(wrapped, "\n", "\n  ")
			return ListBulletStyle.Render("•") + " " + wrapped
		}
	}
	return wrapText(renderInline(line), width)
}

// renderMarkdown renders message content: fenced code blocks are
// highlighted, everything else is wrapped to width.
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var out []string
	var code strings.Builder
	inCode, lang := false, ""

	for _, line := range strings.Split(content, "\n") {
		if rest, ok := strings.CutPrefix(line, "```"); ok {
			if !inCode {
				inCode, lang = true, strings.TrimSpace(rest)
				code.Reset()
				continue
			}
			inCode = false
			out = append(out, highlightCode(code.String(), lang))
			continue
		}
		if inCode {
			if code.Len() > 0 {
				code.WriteString("\n")
			}
			code.WriteString(line)
			continue
		}
		out = append(out, renderMarkdownLine(line, width))
	}
	// An unterminated fence is still shown, e.g. mid-stream.
	if inCode {
		out = append(out, highlightCode(code.String(), lang))
	}
	return strings.Join(out, "\n")
}

// renderHistory renders a conversation for a chat area of the given width.
// While streaming, an empty trailing reply shows an ellipsis.
func renderHistory(history chat.History, width int, streaming bool) string {
	if len(history) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, m := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		label := ChatAssistantStyle.Render(AssistantLabel + ":")
		if m.Role == chat.RoleUser {
			label = ChatUserStyle.Render(UserLabel + ":")
		}
		sb.WriteString(label)
		sb.WriteString("\n")

		text := m.Text()
		if text == "" && streaming && i == len(history)-1 {
			sb.WriteString(StatusStreamingStyle.Render(Ellipsis))
			continue
		}
		sb.WriteString(ChatMessageStyle.Render(renderMarkdown(text, width)))
	}
	return sb.String()
}

// truncate shortens s to width display cells, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, Ellipsis)
}
