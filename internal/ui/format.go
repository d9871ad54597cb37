// ABOUTME: Terminal UI formatting for tempmail output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/tempmail/internal/models"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// ParseHexColor parses "#rgb" or "#rrggbb".
func ParseHexColor(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

// TagBadge renders a tag name in its catalog color.
func TagBadge(t models.Tag) string {
	r, g, b, ok := ParseHexColor(t.Color)
	if !ok {
		return cyan(t.Name)
	}
	return color.RGB(r, g, b).Sprint(t.Name)
}

func FormatTagBadges(tags []models.Tag) string {
	badges := make([]string, len(tags))
	for i, t := range tags {
		badges[i] = TagBadge(t)
	}
	return strings.Join(badges, " ")
}

func FormatTagList(tags []models.Tag) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			TagBadge(t),
			faint(t.Color)))
	}

	return sb.String()
}

// FormatAliasCard renders one active alias the way the dashboard grid does.
func FormatAliasCard(a *models.Alias) string {
	var sb strings.Builder

	pin := "  "
	if a.Pinned {
		pin = green("📌")
	}
	sb.WriteString(fmt.Sprintf("%s %s  %s\n", pin, faint(shortID(a.ID)), bold(a.Email)))
	sb.WriteString(fmt.Sprintf("         %s %s\n", faint("To:"), a.Destination))
	if len(a.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n", faint("Tags:"), FormatTagBadges(a.Tags)))
	}
	sb.WriteString(fmt.Sprintf("         %s %s\n",
		faint("Created:"),
		faint(a.CreatedAt.Local().Format("2006-01-02 15:04"))))

	return sb.String()
}

// FormatHistoryRow renders one history entry on a single line.
func FormatHistoryRow(a *models.Alias) string {
	label := fmt.Sprintf("%-7s", a.Status())
	status := faint(label)
	if a.Active {
		status = green(label)
	}
	line := fmt.Sprintf("  %s %s  %s %s  %s",
		status,
		bold(a.Email),
		faint("→"),
		a.Destination,
		faint(a.CreatedAt.Local().Format("2006-01-02 15:04")))
	if len(a.Tags) > 0 {
		line += "  " + FormatTagBadges(a.Tags)
	}
	return line + "\n"
}

func FormatDestination(d models.Destination) string {
	state := green("verified")
	if !d.IsVerified() {
		state = yellow("pending")
	}
	return fmt.Sprintf("  %s  %s %s\n", faint(shortID(d.Tag)), d.Email, faint("("+state+")"))
}

func FormatServerConfig(cfg *models.ServerConfig) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Domain:"), bold(cfg.Domain)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Zone:"), cfg.ZoneID))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Token:"), cfg.CFToken))
	return sb.String()
}

// FormatMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func FormatMarkdown(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return content, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		// Fallback to raw content if rendering fails
		return content, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

const keysHelp = `# Tag editor keys

| Key | Effect |
|-----|--------|
| Enter, Tab, Space | Commit the typed text as a tag |
| Backspace (empty input) | First press marks the last tag, second press removes it |
| Any other key | Cancels a marked delete |
| Click a suggestion | Commits that tag |
| Click a tag's ✕ | Removes that tag |

Tags are lowercased, commas are stripped and duplicates are ignored.
`

// FormatHelp renders the tag editor key reference.
func FormatHelp() string {
	out, _ := FormatMarkdown(keysHelp)
	return out
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func Warning(msg string) string {
	return color.New(color.FgYellow).Sprint("! ") + msg
}

func FormatActiveHeader(count int) string {
	return fmt.Sprintf("\n%s %s\n", "📬", bold(fmt.Sprintf("Active (%d)", count)))
}

func FormatEmptyDashboard() string {
	return faint("No active aliases. Create one with 'tempmail create'.") + "\n"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
