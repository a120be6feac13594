package pdf

import (
	"fmt"
	"strings"

	"github.com/inkwell-reports/inkwell/pkg/layout"
)

// RenderPage translates one page's draw-command batch into a PDF content
// stream. Commands are rendered in order inside a saved graphics state, so
// later commands paint over earlier ones.
func RenderPage(cmds []layout.Command) string {
	var sb strings.Builder
	sb.WriteString("q\n")
	for _, c := range cmds {
		switch v := c.(type) {
		case layout.FillRect:
			writeFillRect(&sb, v)
		case layout.StrokeLine:
			writeStrokeLine(&sb, v)
		case layout.Text:
			writeText(&sb, v)
		}
	}
	sb.WriteString("Q\n")
	return sb.String()
}

func colorString(c layout.Color) string {
	return fmt.Sprintf("%.3f %.3f %.3f", c.R, c.G, c.B)
}

func writeFillRect(sb *strings.Builder, r layout.FillRect) {
	sb.WriteString(fmt.Sprintf("%s rg\n", colorString(r.Color)))
	sb.WriteString(fmt.Sprintf("%.2f %.2f %.2f %.2f re f\n", r.X, r.Y, r.Width, r.Height))
}

func writeStrokeLine(sb *strings.Builder, l layout.StrokeLine) {
	sb.WriteString(fmt.Sprintf("%s RG\n", colorString(l.Color)))
	sb.WriteString(fmt.Sprintf("%.2f w\n", l.Width))
	sb.WriteString(fmt.Sprintf("%.2f %.2f m %.2f %.2f l S\n", l.X1, l.Y1, l.X2, l.Y2))
}

func writeText(sb *strings.Builder, t layout.Text) {
	font := "/F1"
	if t.Bold {
		font = "/F2"
	}
	sb.WriteString("BT\n")
	sb.WriteString(fmt.Sprintf("%s %.2f Tf\n", font, t.Size))
	sb.WriteString(fmt.Sprintf("%s rg\n", colorString(t.Color)))
	sb.WriteString(fmt.Sprintf("%.2f %.2f Td\n", t.X, t.Y))
	sb.WriteString(fmt.Sprintf("(%s) Tj\n", EscapeString(t.Value)))
	sb.WriteString("ET\n")
}
