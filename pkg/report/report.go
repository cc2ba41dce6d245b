// Package report renders a validation run as a plain or styled text log.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-raceway/pkg/consistency"
	"github.com/dd0wney/cluso-raceway/pkg/routing"
	"github.com/dd0wney/cluso-raceway/pkg/trace"
)

// NoErrors is written in place of an empty finding list.
const NoErrors = "No errors found."

// OffNetworkNote follows failed routes of tray-routed or unrouted cables.
const OffNetworkNote = "(tray-routed or unrouted)"

var auditTitles = map[consistency.Audit]string{
	consistency.AuditCableRaceway:    "Cable / raceway",
	consistency.AuditRacewayDuctbank: "Raceway / ductbank",
	consistency.AuditCableTray:       "Cable / tray",
}

// Writer renders results to an io.Writer
type Writer struct {
	out io.Writer

	titleStyle lipgloss.Style
	headStyle  lipgloss.Style
	okStyle    lipgloss.Style
	badStyle   lipgloss.Style
	dimStyle   lipgloss.Style
}

// NewWriter creates a report writer. With color set, styles follow the
// terminal capabilities detected on out; otherwise output is plain text.
func NewWriter(out io.Writer, color bool) *Writer {
	w := &Writer{out: out}
	if !color {
		plain := lipgloss.NewStyle()
		w.titleStyle, w.headStyle, w.okStyle, w.badStyle, w.dimStyle = plain, plain, plain, plain, plain
		return w
	}

	r := lipgloss.NewRenderer(out)
	w.titleStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))
	w.headStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	w.okStyle = r.NewStyle().Foreground(lipgloss.Color("#00FF00"))
	w.badStyle = r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF0000"))
	w.dimStyle = r.NewStyle().Foreground(lipgloss.Color("#666666"))
	return w
}

// Write renders the whole run: graph summary, every route result, every
// sizing label and the three audits.
func (w *Writer) Write(res *trace.Result) error {
	var b strings.Builder

	fmt.Fprintln(&b, w.titleStyle.Render("Raceway check "+res.RunID))
	fmt.Fprintln(&b, w.dimStyle.Render(fmt.Sprintf("Graph: %d nodes, %d edges, %d components, %d raceways skipped",
		res.Graph.NodeCount, res.Graph.EdgeCount, len(res.Components), res.Graph.SkippedCount)))

	w.section(&b, "Cable routes")
	for _, route := range res.Routes {
		fmt.Fprintln(&b, w.routeLine(route))
	}

	w.section(&b, "Raceway sizing")
	for _, s := range res.Sizing {
		if !s.OK() {
			fmt.Fprintln(&b, w.badStyle.Render(fmt.Sprintf("%s: %s", s.RacewayID, s.Label)))
			continue
		}
		fmt.Fprintf(&b, "%s: %s %s\n", s.RacewayID, w.okStyle.Render(s.Label),
			w.dimStyle.Render(fmt.Sprintf("(%d cables, fill %.4f sq in, %.1f%% of %.0f%% limit)",
				s.CableCount, s.FillArea, s.Ratio*100, s.Limit*100)))
	}

	for _, audit := range res.Audits() {
		w.audit(&b, audit)
	}

	_, err := io.WriteString(w.out, b.String())
	return err
}

// audit renders one audit's messages, or NoErrors when it is empty.
func (w *Writer) audit(b *strings.Builder, audit *consistency.Report) {
	title, ok := auditTitles[audit.Audit]
	if !ok {
		title = string(audit.Audit)
	}
	w.section(b, title)

	if audit.Empty() {
		fmt.Fprintln(b, w.okStyle.Render(NoErrors))
		return
	}
	for _, msg := range audit.Messages() {
		fmt.Fprintln(b, w.badStyle.Render(msg))
	}
}

func (w *Writer) section(b *strings.Builder, title string) {
	fmt.Fprintln(b)
	fmt.Fprintln(b, w.headStyle.Render("== "+title+" =="))
}

func (w *Writer) routeLine(r routing.RouteCheckResult) string {
	status := w.okStyle.Render(r.Status.String())
	if !r.OK() {
		status = w.badStyle.Render(r.Status.String())
	}
	line := fmt.Sprintf("%s [%s] %s", r.CableID, status, r.Message)
	if !r.OK() && r.OffNetwork {
		line += " " + w.dimStyle.Render(OffNetworkNote)
	}
	return line
}
