package bot

import (
	"fmt"
	"strings"

	"todo-planner/internal/model"
)

// formatLines wraps command output in a preformatted block so tree
// indentation survives Telegram's rendering.
func formatLines(lines []string) string {
	var b strings.Builder
	b.WriteString("<pre>")
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(escape(line))
	}
	b.WriteString("</pre>")
	return b.String()
}

func formatHistory(entries []model.JournalEntry) string {
	var b strings.Builder
	b.WriteString("🕘 <b>Session history</b>\n")
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("\n<code>%s</code> %s", entry.CreatedAt.Format("15:04"), escape(entry.Command)))
		if entry.Output == "" {
			continue
		}
		first, _, more := strings.Cut(entry.Output, "\n")
		b.WriteString("\n   → " + escape(first))
		if more {
			b.WriteString(" …")
		}
	}
	return b.String()
}

func helpText() string {
	return "ℹ️ <b>Commands</b>\n" +
		"• /add &lt;name&gt; [HI|MD|LO] [yyyy-mm-dd]: new task\n" +
		"• /addlist &lt;Name&gt;: new list\n" +
		"• /assign &lt;task&gt; &lt;parent&gt;: move a task below a task or list\n" +
		"• /tag &lt;id&gt; #tag: tag a task or list\n" +
		"• /toggle &lt;id&gt;: flip completion\n" +
		"• /changedate &lt;id&gt; &lt;yyyy-mm-dd&gt;: set deadline\n" +
		"• /changepriority &lt;id&gt; [HI|MD|LO]: set or clear priority\n" +
		"• /delete, /restore &lt;id&gt;: soft delete with subtasks\n" +
		"• /show &lt;id&gt;: print a subtree\n" +
		"• /todo, /find &lt;text&gt;, /taggedwith #tag: reports\n" +
		"• /upcoming, /before &lt;date&gt;, /between &lt;start&gt; &lt;end&gt;: deadline reports\n" +
		"• /duplicate: find duplicate tasks\n" +
		"• /history: commands of this session\n" +
		"• /digest [on|off]: deadline digest now, or toggle the scheduled one\n" +
		"• /new: start an empty session"
}
