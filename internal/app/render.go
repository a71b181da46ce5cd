package app

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/specialistvlad/fgviewer/internal/fginfo"
	"github.com/specialistvlad/fgviewer/internal/graphviz"
	"github.com/specialistvlad/fgviewer/internal/hclcapture"
	"github.com/specialistvlad/fgviewer/internal/viewer"
	"github.com/specialistvlad/fgviewer/internal/wire"
)

// render writes every entry to w in the given format.
func render(w io.Writer, format string, entries []viewer.Entry) error {
	switch format {
	case FormatNone:
		return nil
	case FormatHCL:
		infos := make([]*fginfo.FrameGraphInfo, 0, len(entries))
		for _, e := range entries {
			infos = append(infos, e.Info)
		}
		_, err := w.Write(hclcapture.Write(infos...))
		return err
	}

	for i, e := range entries {
		if i > 0 && format == FormatYAML {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}

		var err error
		switch format {
		case FormatJSON:
			err = wire.EncodeJSON(w, e.Info)
		case FormatYAML:
			err = wire.EncodeYAML(w, e.Info)
		case FormatDOT:
			text := e.Info.GraphvizData()
			if text == "" {
				text = graphviz.Export(e.Info)
			}
			_, err = io.WriteString(w, text)
		default:
			err = renderText(w, e)
		}
		if err != nil {
			return fmt.Errorf("failed to render view %q: %w", e.View, err)
		}
	}
	return nil
}

// renderText prints a human readable summary of one entry.
func renderText(w io.Writer, e viewer.Entry) error {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()
	titleFmt := color.New(color.FgCyan, color.Bold).SprintfFunc()

	info := e.Info
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s (revision %s)\n", titleFmt("View %s", info.ViewName()), e.Revision)
	fmt.Fprintf(&buf, "%d resources, %d passes\n\n", len(info.Resources()), len(info.Passes()))

	resources := info.Resources()
	ids := make([]fginfo.ResourceID, 0, len(resources))
	for id := range resources {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	resTbl := table.New("ID", "Resource", "Properties").WithWriter(&buf)
	resTbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	for _, id := range ids {
		r := resources[id]
		resTbl.AddRow(id, r.Name(), formatProperties(r.Properties()))
	}
	resTbl.Print()
	buf.WriteString("\n")

	passTbl := table.New("#", "Pass", "Reads", "Writes").WithWriter(&buf)
	passTbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
	for i, p := range info.Passes() {
		passTbl.AddRow(i, p.Name(), formatIDs(p.Reads()), formatIDs(p.Writes()))
	}
	passTbl.Print()

	if issues := fginfo.Inspect(info); len(issues) > 0 {
		buf.WriteString("\n")
		warnFmt := color.New(color.FgRed).SprintfFunc()
		for _, issue := range issues {
			fmt.Fprintln(&buf, warnFmt("! %s", issue))
		}
	}
	buf.WriteString("\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func formatProperties(props []fginfo.Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Name+"="+p.Value)
	}
	return strings.Join(parts, ", ")
}

func formatIDs(ids []fginfo.ResourceID) string {
	if len(ids) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, fmt.Sprint(id))
	}
	return strings.Join(parts, ", ")
}
