package main

import (
	"fmt"
	"html/template"
	"io"

	"github.com/katalvlaran/patclust/cluster"
)

// reportTemplate renders a color caption, one entry per cluster, and every
// pattern word prefixed with its index in its cluster's color.
var reportTemplate = template.Must(template.New("report").Parse(`<html><body>
<p>{{range $i, $c := .Clusters}}{{if $i}}&nbsp;{{end}}<font style="color:{{$c.Color}}">Cluster {{$c.Rep}} ({{$c.Size}})</font>{{end}}</p>
<pre>{{range .Rows}}<font style="color:{{.Color}}">{{printf "%3d" .Index}}</font>: {{.Word}}
{{end}}</pre>
</body></html>
`))

type reportCluster struct {
	Rep   int
	Size  int
	Color template.CSS
}

type reportRow struct {
	Index int
	Word  string
	Color template.CSS
}

type report struct {
	Clusters []reportCluster
	Rows     []reportRow
}

// clusterColors spreads one HSL hue per representative around the wheel.
func clusterColors(reps []int) map[int]template.CSS {
	colors := make(map[int]template.CSS, len(reps))
	for i, rep := range reps {
		hue := 360 * i / len(reps)
		colors[rep] = template.CSS(fmt.Sprintf("hsl(%d, 80%%, 40%%)", hue))
	}

	return colors
}

// writeHTMLReport renders the clustering of words as an HTML page.
func writeHTMLReport(w io.Writer, words []string, assignment []int) error {
	groups := cluster.Groups(assignment)
	reps := cluster.Representatives(assignment)
	colors := clusterColors(reps)

	r := report{
		Clusters: make([]reportCluster, 0, len(reps)),
		Rows:     make([]reportRow, 0, len(words)),
	}
	for _, rep := range reps {
		r.Clusters = append(r.Clusters, reportCluster{Rep: rep, Size: len(groups[rep]), Color: colors[rep]})
	}
	for i, word := range words {
		r.Rows = append(r.Rows, reportRow{Index: i, Word: word, Color: colors[assignment[i]]})
	}

	if err := reportTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("rendering html report: %w", err)
	}

	return nil
}
